package shift

import (
	"regexp"
	"strings"
)

// rowPattern matches "<month>/<day><weekday><hour>時<minute>分<hour>時<minute>分".
// Hours allow a third digit because stray strokes before the hour are
// often read as digits.
var rowPattern = regexp.MustCompile(`(\d{1,2}/\d{1,2}).(\d{2,3})時(\d{2})分(\d{2,3})時(\d{2})分`)

// Candidate holds the raw fields extracted from one row
type Candidate struct {
	Date  string // "M/D"
	Start string // "HH:MM"
	End   string // "HH:MM"
}

// Extract finds the shift fields in a cleaned row. It reports false when the
// row does not contain a shift entry.
func Extract(row string) (Candidate, bool) {
	m := rowPattern.FindStringSubmatchIndex(row)
	if m == nil {
		return Candidate{}, false
	}

	normalized := rowPattern.ExpandString(nil, "$1,$2:$3,$4:$5", row, m)
	parts := strings.Split(string(normalized), ",")
	return Candidate{Date: parts[0], Start: parts[1], End: parts[2]}, true
}

// MonthDay splits the candidate date into month and day strings
func (c Candidate) MonthDay() (month, day string) {
	month, day, _ = strings.Cut(c.Date, "/")
	return month, day
}

// StartClock splits the start time into hour and minute strings
func (c Candidate) StartClock() (hour, minute string) {
	hour, minute, _ = strings.Cut(c.Start, ":")
	return hour, minute
}

// EndClock splits the end time into hour and minute strings
func (c Candidate) EndClock() (hour, minute string) {
	hour, minute, _ = strings.Cut(c.End, ":")
	return hour, minute
}
