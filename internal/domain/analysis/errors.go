package analysis

import "errors"

var (
	// ErrInvalidServiceType is returned for a service type outside the fixed set.
	ErrInvalidServiceType = errors.New("invalid service type")
	// ErrNotFound is returned when no analysis exists for an id.
	ErrNotFound = errors.New("analysis not found")
	// ErrInvalidRequest is returned for a missing or malformed request body.
	ErrInvalidRequest = errors.New("invalid request body")
	// ErrProcessing is returned when results are requested before completion.
	ErrProcessing = errors.New("analysis still processing")
)
