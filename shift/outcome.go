package shift

import "github.com/tsawler/shiftcal/model"

// Reason records why a row did or did not produce a shift
type Reason int

const (
	// Kept means the row produced a shift
	Kept Reason = iota
	// TooShort means the row failed the length filter
	TooShort
	// NoMatch means the row did not contain a date and two times
	NoMatch
	// InvalidDateTime means the extracted fields are not a real date or time
	InvalidDateTime
)

// String returns a string representation of the reason
func (r Reason) String() string {
	switch r {
	case Kept:
		return "kept"
	case TooShort:
		return "too short"
	case NoMatch:
		return "no match"
	case InvalidDateTime:
		return "invalid date/time"
	default:
		return "unknown"
	}
}

// Outcome is the result of running one row through the parser. Exactly one
// of two things holds: Reason is Kept and Shift is set, or the row was
// discarded and Shift is the zero value.
type Outcome struct {
	// Row is the row text as reconstructed by layout
	Row string

	// Cleaned is the row after glyph cleaning; empty when the row was
	// discarded by the filter
	Cleaned string

	Reason Reason

	// Shift is valid only when Reason is Kept
	Shift model.Shift

	// Err carries the builder error for InvalidDateTime
	Err error

	// EndNotAfterStart marks kept shifts whose end time is not later than
	// their start time, typically a shift that crosses midnight. The end is
	// still anchored to the start date.
	EndNotAfterStart bool
}

// Discarded reports whether the row produced no shift
func (o Outcome) Discarded() bool {
	return o.Reason != Kept
}

// Parser runs reconstructed rows through filter, cleaner, extractor and
// builder. A Parser holds no state between rows.
type Parser struct {
	Filter  Filter
	Cleaner Cleaner
	Builder *Builder
}

// NewParser creates a parser with default filter and cleaner, reading the
// year from clock
func NewParser(clock Clock) *Parser {
	return &Parser{
		Filter:  NewFilter(),
		Cleaner: NewCleaner(),
		Builder: NewBuilder(clock),
	}
}

// ParseRow turns one row into an outcome
func (p *Parser) ParseRow(row string) Outcome {
	out := Outcome{Row: row}

	if !p.Filter.Keep(row) {
		out.Reason = TooShort
		return out
	}

	out.Cleaned = p.Cleaner.Clean(row)
	cand, ok := Extract(out.Cleaned)
	if !ok {
		out.Reason = NoMatch
		return out
	}

	s, err := p.Builder.Build(cand)
	if err != nil {
		out.Reason = InvalidDateTime
		out.Err = err
		return out
	}

	out.Shift = s
	// Both strings share date, layout and offset, so lexical order is
	// chronological order.
	out.EndNotAfterStart = s.EndDateTime <= s.StartDateTime
	return out
}

// Parse turns rows into outcomes, one per row, in order
func (p *Parser) Parse(rows []string) []Outcome {
	out := make([]Outcome, len(rows))
	for i, r := range rows {
		out[i] = p.ParseRow(r)
	}
	return out
}

// Shifts returns the shifts of all kept outcomes, in order
func Shifts(outcomes []Outcome) []model.Shift {
	shifts := make([]model.Shift, 0, len(outcomes))
	for _, o := range outcomes {
		if !o.Discarded() {
			shifts = append(shifts, o.Shift)
		}
	}
	return shifts
}
