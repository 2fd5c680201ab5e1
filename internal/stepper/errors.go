package stepper

import "fmt"

// FormatError reports draft text that does not parse as a plain decimal
// number.
type FormatError struct {
	Text string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%q is not a valid number", e.Text)
}

// RangeDirection identifies which bound a RangeError violated.
type RangeDirection int

const (
	TooSmall RangeDirection = iota
	TooLarge
)

// RangeError reports a parsed value that violates a configured bound.
type RangeError struct {
	Value     float64
	Bound     float64
	Direction RangeDirection
}

func (e *RangeError) Error() string {
	if e.Direction == TooLarge {
		return fmt.Sprintf("%s is above the maximum %s", FormatDecimal(e.Value), FormatDecimal(e.Bound))
	}
	return fmt.Sprintf("%s is below the minimum %s", FormatDecimal(e.Value), FormatDecimal(e.Bound))
}
