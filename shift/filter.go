package shift

import "unicode/utf8"

// DefaultMinRowLength is the shortest row that can hold a date, a weekday
// glyph and two hour/minute groups with their labels.
const DefaultMinRowLength = 16

// Filter drops rows too short to be shift entries. Headers, page furniture
// and partial recognitions fall below the threshold.
type Filter struct {
	// MinLength is the minimum row length in characters (code points)
	MinLength int
}

// NewFilter creates a filter with DefaultMinRowLength
func NewFilter() Filter {
	return Filter{MinLength: DefaultMinRowLength}
}

// Keep reports whether a row is long enough to be parsed
func (f Filter) Keep(row string) bool {
	return utf8.RuneCountInString(row) >= f.MinLength
}

// Apply returns the rows that pass Keep, in order
func (f Filter) Apply(rows []string) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		if f.Keep(r) {
			out = append(out, r)
		}
	}
	return out
}
