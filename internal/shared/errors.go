package shared

import "fmt"

var (
	// Comparison errors
	ErrInvalidEntry       = fmt.Errorf("invalid entry")
	ErrInvariantViolation = fmt.Errorf("invariant violation")
	ErrEntryNotFound      = fmt.Errorf("entry not found")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Input validation errors
	ErrInvalidInput      = fmt.Errorf("invalid input")
	ErrMissingArgument   = fmt.Errorf("missing required argument")
	ErrInvalidArgument   = fmt.Errorf("invalid argument")
	ErrInvalidFlag       = fmt.Errorf("invalid flag value")
	ErrUnsupportedFormat = fmt.Errorf("unsupported export format")
)
