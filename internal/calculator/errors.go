package calculator

import "errors"

var (
	// ErrInvalidAmount is returned when the requested change amount is negative.
	ErrInvalidAmount = errors.New("invalid change value - cannot be negative")
	// ErrUnrepresentable is returned when the coin table cannot make the amount exactly.
	// The built-in table contains a 1p coin, so it only surfaces if the table changes.
	ErrUnrepresentable = errors.New("cannot make exact change with the available denominations")
)
