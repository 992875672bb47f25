package calendar

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/tsawler/shiftcal/model"
)

func sampleShift() model.Shift {
	return model.Shift{
		Summary:       "バイト",
		StartDateTime: "2025-08-01T17:00:00+09:00:00",
		EndDateTime:   "2025-08-01T21:30:00+09:00:00",
		TimeZone:      "Asia/Tokyo",
	}
}

func TestFromShift(t *testing.T) {
	s := sampleShift()
	ev, err := FromShift(s)
	if err != nil {
		t.Fatalf("FromShift() error: %v", err)
	}

	want := Event{
		Summary: "バイト",
		Start:   EventDateTime{DateTime: "2025-08-01T17:00:00+09:00", TimeZone: "Asia/Tokyo"},
		End:     EventDateTime{DateTime: "2025-08-01T21:30:00+09:00", TimeZone: "Asia/Tokyo"},
		ICalUID: UID(s),
	}
	if diff := cmp.Diff(want, ev); diff != "" {
		t.Errorf("FromShift() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromShift_JSONShape(t *testing.T) {
	ev, err := FromShift(sampleShift())
	if err != nil {
		t.Fatalf("FromShift() error: %v", err)
	}
	b, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	for _, key := range []string{`"summary"`, `"start":{"dateTime"`, `"timeZone":"Asia/Tokyo"`, `"iCalUID"`} {
		if !strings.Contains(string(b), key) {
			t.Errorf("JSON %s missing %s", b, key)
		}
	}
}

func TestFromShift_Offsets(t *testing.T) {
	tests := []struct {
		offset string
		want   string
		ok     bool
	}{
		{"+09:00:00", "+09:00", true},
		{"+09:00", "+09:00", true},
		{"-05:30:00", "-05:30", true},
		{"Z", "Z", true},
		{"", "", true},
		{"+09:00:30", "", false},
		{"0900", "", false},
		{"+25:00", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.offset, func(t *testing.T) {
			s := sampleShift()
			s.StartDateTime = "2025-08-01T17:00:00" + tt.offset
			s.EndDateTime = "2025-08-01T21:30:00" + tt.offset

			ev, err := FromShift(s)
			if !tt.ok {
				if !errors.Is(err, model.ErrInvalidDateTime) {
					t.Errorf("error = %v, want ErrInvalidDateTime", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromShift() error: %v", err)
			}
			if ev.Start.DateTime != "2025-08-01T17:00:00"+tt.want {
				t.Errorf("start = %q", ev.Start.DateTime)
			}
		})
	}
}

func TestFromShift_Incomplete(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*model.Shift)
		want   error
	}{
		{"no summary", func(s *model.Shift) { s.Summary = "" }, ErrIncompleteShift},
		{"no start", func(s *model.Shift) { s.StartDateTime = "" }, ErrIncompleteShift},
		{"truncated end", func(s *model.Shift) { s.EndDateTime = "2025-08-01" }, ErrIncompleteShift},
		{"bad date", func(s *model.Shift) { s.StartDateTime = "2025-02-30T17:00:00+09:00:00" }, model.ErrInvalidDateTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sampleShift()
			tt.modify(&s)
			if _, err := FromShift(s); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUID(t *testing.T) {
	a := sampleShift()
	b := sampleShift()
	if UID(a) != UID(b) {
		t.Error("equal shifts should share a UID")
	}

	b.EndDateTime = "2025-08-01T22:00:00+09:00:00"
	if UID(a) == UID(b) {
		t.Error("different shifts should not share a UID")
	}

	uid := UID(a)
	if !strings.HasSuffix(uid, "@"+UIDDomain) {
		t.Fatalf("UID %q lacks domain", uid)
	}
	parsed, err := uuid.Parse(strings.TrimSuffix(uid, "@"+UIDDomain))
	if err != nil {
		t.Fatalf("UID %q is not a UUID: %v", uid, err)
	}
	if parsed.Version() != 5 {
		t.Errorf("UUID version = %d, want 5", parsed.Version())
	}
}

func TestFromShifts(t *testing.T) {
	second := sampleShift()
	second.StartDateTime = "2025-08-02T10:00:00+09:00:00"
	second.EndDateTime = "2025-08-02T15:00:00+09:00:00"

	events, err := FromShifts([]model.Shift{sampleShift(), second})
	if err != nil {
		t.Fatalf("FromShifts() error: %v", err)
	}
	if len(events) != 2 || events[1].Start.DateTime != "2025-08-02T10:00:00+09:00" {
		t.Errorf("unexpected events %+v", events)
	}

	bad := sampleShift()
	bad.Summary = ""
	_, err = FromShifts([]model.Shift{sampleShift(), bad})
	if err == nil || !strings.Contains(err.Error(), "shift 1") {
		t.Errorf("expected error naming shift 1, got %v", err)
	}

	if events, err := FromShifts(nil); err != nil || len(events) != 0 {
		t.Errorf("FromShifts(nil) = %v, %v", events, err)
	}
}
