package shift

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tsawler/shiftcal/model"
)

const (
	// DefaultSummary is the event title given to every shift
	DefaultSummary = "バイト"

	// DefaultTimeZone is the IANA zone attached to every shift
	DefaultTimeZone = "Asia/Tokyo"

	// DefaultOffset is appended verbatim to every formatted date-time
	DefaultOffset = "+09:00:00"

	localLayout = "2006-01-02T15:04:05"
)

// Clock supplies the current time. The builder only reads the year.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface
type ClockFunc func() time.Time

// Now calls f
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock
var SystemClock Clock = ClockFunc(time.Now)

// FixedYear returns a clock that always reports January 1st of year
func FixedYear(year int) Clock {
	return ClockFunc(func() time.Time {
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	})
}

// Builder turns candidates into shifts
type Builder struct {
	Summary  string
	TimeZone string
	Offset   string

	year int
}

// NewBuilder creates a builder for one run. The year is read from clock
// once, here, and used for every candidate.
func NewBuilder(clock Clock) *Builder {
	if clock == nil {
		clock = SystemClock
	}
	return &Builder{
		Summary:  DefaultSummary,
		TimeZone: DefaultTimeZone,
		Offset:   DefaultOffset,
		year:     clock.Now().Year(),
	}
}

// Year returns the year shifts are placed in
func (b *Builder) Year() int {
	return b.year
}

// Build converts a candidate into a shift. The end time is placed on the
// start date even when it is earlier than the start time; shifts crossing
// midnight are not representable.
func (b *Builder) Build(c Candidate) (model.Shift, error) {
	month, day := c.MonthDay()
	sh, sm := c.StartClock()
	eh, em := c.EndClock()

	start, err := b.instant(month, day, sh, sm)
	if err != nil {
		return model.Shift{}, fmt.Errorf("start of %q: %w", c.Date, err)
	}
	end, err := b.instant(month, day, eh, em)
	if err != nil {
		return model.Shift{}, fmt.Errorf("end of %q: %w", c.Date, err)
	}

	return model.Shift{
		Summary:       b.Summary,
		StartDateTime: start.Format(localLayout) + b.Offset,
		EndDateTime:   end.Format(localLayout) + b.Offset,
		TimeZone:      b.TimeZone,
	}, nil
}

// instant validates each field before constructing the time, because
// time.Date silently normalizes out-of-range values.
func (b *Builder) instant(month, day, hour, minute string) (time.Time, error) {
	mo, err := field("month", month, 1, 12)
	if err != nil {
		return time.Time{}, err
	}
	last := time.Date(b.year, time.Month(mo)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	d, err := field("day", day, 1, last)
	if err != nil {
		return time.Time{}, err
	}
	h, err := field("hour", hour, 0, 23)
	if err != nil {
		return time.Time{}, err
	}
	mi, err := field("minute", minute, 0, 59)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(b.year, time.Month(mo), d, h, mi, 0, 0, time.UTC), nil
}

func field(name, raw string, lo, hi int) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, raw, model.ErrInvalidDateTime)
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("%s %d out of range %d-%d: %w", name, v, lo, hi, model.ErrInvalidDateTime)
	}
	return v, nil
}
