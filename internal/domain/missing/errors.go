package missing

import "errors"

var (
	ErrInvalidInput             = errors.New("invalid report input")
	ErrReportNotFound           = errors.New("missing report not found")
	ErrNotReporter              = errors.New("client did not file this report")
	ErrAlreadyFound             = errors.New("report already marked found")
	ErrPosterCodeGenerationFail = errors.New("poster code generation failed")
)
