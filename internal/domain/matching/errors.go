package matching

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid matching input")
	ErrMatchAlreadyConfirmed = errors.New("match already confirmed for this pair")
)
