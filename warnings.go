package shiftcal

import (
	"fmt"
	"strings"

	"github.com/tsawler/shiftcal/shift"
)

// WarningKind classifies a non-fatal issue found during extraction
type WarningKind int

const (
	// RowDiscarded means a row produced no shift
	RowDiscarded WarningKind = iota

	// EndNotAfterStart means a shift was emitted whose end time is not later
	// than its start time on the same date, usually a shift crossing
	// midnight
	EndNotAfterStart
)

// String returns a string representation of the kind
func (k WarningKind) String() string {
	switch k {
	case RowDiscarded:
		return "row discarded"
	case EndNotAfterStart:
		return "end not after start"
	default:
		return "unknown"
	}
}

// Warning describes a non-fatal issue. Extraction still succeeded, but the
// affected row is either missing from the result or may be wrong.
type Warning struct {
	Kind WarningKind

	// Row is the index of the row, top to bottom, among all detected rows
	Row int

	// Text is the row as reconstructed from the OCR tokens
	Text string

	// Reason is set for RowDiscarded
	Reason shift.Reason

	Message string
}

// String formats the warning on one line
func (w Warning) String() string {
	return fmt.Sprintf("row %d (%q): %s", w.Row, w.Text, w.Message)
}

// FormatWarnings joins warnings into a multi-line string
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

// Discarded counts RowDiscarded warnings
func Discarded(warnings []Warning) int {
	n := 0
	for _, w := range warnings {
		if w.Kind == RowDiscarded {
			n++
		}
	}
	return n
}

// outcomeWarnings derives warnings from parse outcomes
func outcomeWarnings(outcomes []shift.Outcome) []Warning {
	var warnings []Warning
	for i, o := range outcomes {
		switch {
		case o.Discarded():
			msg := o.Reason.String()
			if o.Err != nil {
				msg = fmt.Sprintf("%s: %v", msg, o.Err)
			}
			warnings = append(warnings, Warning{
				Kind:    RowDiscarded,
				Row:     i,
				Text:    o.Row,
				Reason:  o.Reason,
				Message: msg,
			})
		case o.EndNotAfterStart:
			warnings = append(warnings, Warning{
				Kind: EndNotAfterStart,
				Row:  i,
				Text: o.Row,
				Message: fmt.Sprintf("end %s is not after start %s; kept on the same date",
					o.Shift.EndTime(), o.Shift.StartTime()),
			})
		}
	}
	return warnings
}
