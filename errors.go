package multiline

import "errors"

// Sentinel errors for template filling.
var (
	// ErrMultiplePlaceholders is returned when a single template line
	// contains more than one {} marker.
	ErrMultiplePlaceholders = errors.New("multiple placeholders on one line")

	// ErrTooFewArgs is returned when the template contains more
	// placeholders than supplied arguments.
	ErrTooFewArgs = errors.New("not enough arguments for placeholders")
)
