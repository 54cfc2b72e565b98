package tvtensors

import "errors"

// Common errors.
var (
	// ErrInvalidArgument reports malformed construction input: wrong rank,
	// wrong trailing width, an unsupported dtype for the requested format,
	// or an invalid enum alias.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedOperand reports binary arithmetic between two
	// different typed entity kinds.
	ErrUnsupportedOperand = errors.New("unsupported operand")
)
