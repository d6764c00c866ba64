package tredeco

import (
	"errors"
	"fmt"
)

// Validation errors returned by the engine. Callers match them with errors.Is;
// the returned errors wrap them with the offending values.
var (
	// ErrInvalidArgument is returned for input that is not an integer where
	// one is required.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is returned for a day or weekday offset outside its range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidDay is returned for a day other than 1 on Nilo or Bix, or a
	// day outside 1-28 in a named month (together with ErrOutOfRange).
	ErrInvalidDay = errors.New("invalid day")

	// ErrNoBix is returned when Bix is requested for a non-leap year.
	ErrNoBix = errors.New("bix does not exist in this year")

	// ErrInvalidMonth is returned for a month selector outside 0-14.
	ErrInvalidMonth = errors.New("invalid month")

	// ErrInvariant signals an internal inconsistency during conversion.
	ErrInvariant = errors.New("calendar invariant violated")
)

// errDayOutOfRange matches both ErrInvalidDay and ErrOutOfRange: a day
// outside 1-28 is invalid for the month and out of the month's range.
var errDayOutOfRange = fmt.Errorf("%w (%w)", ErrInvalidDay, ErrOutOfRange)
