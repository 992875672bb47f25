// Package calendar converts shifts into Google Calendar event bodies.
//
// Events carry an iCalUID derived from the shift's content, so submitting
// the same schedule twice (for example when a photo is posted again)
// updates the existing events instead of creating duplicates.
package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tsawler/shiftcal/model"
)

// ErrIncompleteShift is returned when a shift lacks a field the calendar
// requires
var ErrIncompleteShift = errors.New("incomplete shift")

// Namespace is the UUID namespace iCalUIDs are derived in
var Namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/tsawler/shiftcal"))

// UIDDomain is appended to every generated iCalUID
const UIDDomain = "shiftcal"

const localLayout = "2006-01-02T15:04:05"

// EventDateTime is the start or end of an event
type EventDateTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone,omitempty"`
}

// Event is the request body of an events.insert or events.import call
type Event struct {
	Summary string        `json:"summary"`
	Start   EventDateTime `json:"start"`
	End     EventDateTime `json:"end"`
	ICalUID string        `json:"iCalUID"`
}

// FromShift builds the event for a shift. Date-times are rewritten to
// RFC 3339, so an offset of "+09:00:00" becomes "+09:00".
func FromShift(s model.Shift) (Event, error) {
	if s.Summary == "" {
		return Event{}, fmt.Errorf("calendar: missing summary: %w", ErrIncompleteShift)
	}

	start, err := rfc3339(s.StartDateTime)
	if err != nil {
		return Event{}, fmt.Errorf("calendar: start: %w", err)
	}
	end, err := rfc3339(s.EndDateTime)
	if err != nil {
		return Event{}, fmt.Errorf("calendar: end: %w", err)
	}

	return Event{
		Summary: s.Summary,
		Start:   EventDateTime{DateTime: start, TimeZone: s.TimeZone},
		End:     EventDateTime{DateTime: end, TimeZone: s.TimeZone},
		ICalUID: UID(s),
	}, nil
}

// FromShifts builds one event per shift, in order. It stops at the first
// shift that cannot be converted.
func FromShifts(shifts []model.Shift) ([]Event, error) {
	events := make([]Event, 0, len(shifts))
	for i, s := range shifts {
		ev, err := FromShift(s)
		if err != nil {
			return nil, fmt.Errorf("shift %d: %w", i, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// UID returns the iCalUID for a shift. Equal shifts get equal UIDs.
func UID(s model.Shift) string {
	name := strings.Join([]string{s.Summary, s.StartDateTime, s.EndDateTime, s.TimeZone}, "\x00")
	return uuid.NewSHA1(Namespace, []byte(name)).String() + "@" + UIDDomain
}

// rfc3339 validates a shift date-time and returns it with the offset
// trimmed to hours and minutes
func rfc3339(dt string) (string, error) {
	if len(dt) < len(localLayout) {
		return "", fmt.Errorf("date-time %q: %w", dt, ErrIncompleteShift)
	}
	local, offset := dt[:len(localLayout)], dt[len(localLayout):]
	if _, err := time.Parse(localLayout, local); err != nil {
		return "", fmt.Errorf("date-time %q: %w", dt, model.ErrInvalidDateTime)
	}

	offset, err := normalizeOffset(offset)
	if err != nil {
		return "", fmt.Errorf("date-time %q: %w", dt, err)
	}
	return local + offset, nil
}

// normalizeOffset accepts "", "Z", "±HH:MM" and "±HH:MM:00"
func normalizeOffset(offset string) (string, error) {
	switch {
	case offset == "" || offset == "Z":
		return offset, nil
	case len(offset) == 9 && strings.HasSuffix(offset, ":00"):
		offset = offset[:6]
	}

	if len(offset) != 6 || (offset[0] != '+' && offset[0] != '-') || offset[3] != ':' {
		return "", fmt.Errorf("offset %q: %w", offset, model.ErrInvalidDateTime)
	}
	hh, herr := strconv.Atoi(offset[1:3])
	mm, merr := strconv.Atoi(offset[4:6])
	if herr != nil || merr != nil || hh < 0 || hh > 14 || mm < 0 || mm > 59 {
		return "", fmt.Errorf("offset %q: %w", offset, model.ErrInvalidDateTime)
	}
	return offset, nil
}
