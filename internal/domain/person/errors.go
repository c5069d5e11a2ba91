package person

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid person input")
	ErrPersonNotFound = errors.New("person not found")
	ErrShelterUnknown = errors.New("shelter not found")
)
