package model

import "errors"

var (
	// ErrMalformedInput is returned when a recognition result lacks a level of
	// the expected page structure, or a glyph lacks one of its four corners.
	// No rows can be produced from such input.
	ErrMalformedInput = errors.New("malformed recognition result")

	// ErrInvalidDateTime is returned when extracted month, day, hour or minute
	// values do not form a real calendar date and time of day.
	ErrInvalidDateTime = errors.New("invalid date or time")
)
