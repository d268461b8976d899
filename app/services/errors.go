package services

import "errors"

var (
	// ErrInvalid wraps validation failures (missing or malformed fields).
	ErrInvalid = errors.New("validation failed")
	// ErrForbidden is returned when the caller may not mutate a resource.
	ErrForbidden = errors.New("operation not permitted")
)
