package model

import "strings"

// Shift is a single work period ready for calendar submission.
//
// StartDateTime and EndDateTime are ISO-8601 local date-times followed by the
// configured UTC offset literal, e.g. "2025-08-01T17:00:00+09:00:00".
type Shift struct {
	Summary       string `json:"summary"`
	StartDateTime string `json:"start_datetime"`
	EndDateTime   string `json:"end_datetime"`
	TimeZone      string `json:"timezone"`
}

// Fields returns the shift as the string mapping used for calendar event
// fields.
func (s Shift) Fields() map[string]string {
	return map[string]string{
		"summary":        s.Summary,
		"start_datetime": s.StartDateTime,
		"end_datetime":   s.EndDateTime,
		"timezone":       s.TimeZone,
	}
}

// StartDate returns the "YYYY-MM-DD" part of StartDateTime.
func (s Shift) StartDate() string { return datePart(s.StartDateTime) }

// StartTime returns the "HH:MM" part of StartDateTime.
func (s Shift) StartTime() string { return clockPart(s.StartDateTime) }

// EndDate returns the "YYYY-MM-DD" part of EndDateTime.
func (s Shift) EndDate() string { return datePart(s.EndDateTime) }

// EndTime returns the "HH:MM" part of EndDateTime.
func (s Shift) EndTime() string { return clockPart(s.EndDateTime) }

func datePart(dt string) string {
	if i := strings.IndexByte(dt, 'T'); i >= 0 {
		return dt[:i]
	}
	return dt
}

func clockPart(dt string) string {
	i := strings.IndexByte(dt, 'T')
	if i < 0 || len(dt) < i+6 {
		return ""
	}
	return dt[i+1 : i+6]
}
