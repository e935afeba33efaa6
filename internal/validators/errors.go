package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// Rule violations. The message of each is exactly what surfaces to the
	// caller when the rule is the first one violated.
	ErrInvalidEmail     = errors.New("Please enter a valid email address.")
	ErrPasswordTooShort = errors.New("Password must be at least 8 characters long.")
	ErrEmptyTitle       = errors.New("Title is required")
	ErrInvalidPriority  = errors.New("Priority must be one of LOW, MEDIUM or HIGH")
)
