package shelter

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid shelter input")
	ErrShelterNotFound  = errors.New("shelter not found")
	ErrShelterCodeTaken = errors.New("shelter code already taken")
)
