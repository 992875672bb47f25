package model

import (
	"errors"
	"fmt"
	"testing"
)

// ============================================================================
// BBox Tests
// ============================================================================

func TestNewBBoxFromCorners(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
		want           BBox
	}{
		{"normal", 10, 20, 50, 70, BBox{10, 20, 40, 50}},
		{"reversed", 50, 70, 10, 20, BBox{10, 20, 40, 50}},
		{"degenerate", 10, 10, 10, 10, BBox{10, 10, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewBBoxFromCorners(tt.x0, tt.y0, tt.x1, tt.y1)
			if got != tt.want {
				t.Errorf("NewBBoxFromCorners() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBBoxEdges(t *testing.T) {
	b := NewBBox(10, 20, 100, 50)

	if b.Left() != 10 || b.Right() != 110 {
		t.Errorf("horizontal edges = %v, %v", b.Left(), b.Right())
	}
	if b.Top() != 20 || b.Bottom() != 70 {
		t.Errorf("vertical edges = %v, %v", b.Top(), b.Bottom())
	}
}

func TestBBoxSplit(t *testing.T) {
	parts := NewBBox(0, 10, 30, 12).Split(3)
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts, got %d", len(parts))
	}
	for i, p := range parts {
		if p.X != float64(i*10) || p.Width != 10 || p.Y != 10 || p.Height != 12 {
			t.Errorf("part %d = %+v", i, p)
		}
	}

	if got := NewBBox(0, 0, 10, 10).Split(0); got != nil {
		t.Errorf("Split(0) = %v, want nil", got)
	}
}

func TestBBoxIsEmpty(t *testing.T) {
	if !NewBBox(0, 0, 0, 10).IsEmpty() {
		t.Error("zero width box should be empty")
	}
	if NewBBox(0, 0, 1, 1).IsEmpty() {
		t.Error("unit box should not be empty")
	}
}

// ============================================================================
// Quad Tests
// ============================================================================

func TestQuadCentroid(t *testing.T) {
	tests := []struct {
		name string
		quad Quad
		want Point
	}{
		{
			name: "axis aligned",
			quad: Quad{{10, 100}, {20, 100}, {20, 110}, {10, 110}},
			want: Point{15, 105},
		},
		{
			name: "skewed",
			quad: Quad{{0, 0}, {8, 2}, {10, 12}, {2, 10}},
			want: Point{5, 6},
		},
		{
			name: "zero",
			quad: Quad{},
			want: Point{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.quad.Centroid(); got != tt.want {
				t.Errorf("Centroid() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestQuadBoundsRoundTrip(t *testing.T) {
	b := NewBBox(5, 7, 20, 30)
	if got := b.Quad().Bounds(); got != b {
		t.Errorf("Quad().Bounds() = %+v, want %+v", got, b)
	}
	if got, want := b.Quad().Centroid(), (Point{X: 15, Y: 22}); got != want {
		t.Errorf("Quad().Centroid() = %+v, want %+v", got, want)
	}
}

func TestPosition(t *testing.T) {
	tok := Token{Text: "8", Quad: NewBBox(0, 90, 10, 20).Quad()}
	pt := Position(tok, 3)

	if pt.Text != "8" || pt.Seq != 3 {
		t.Errorf("Position() = %+v", pt)
	}
	if pt.Point != (Point{5, 100}) {
		t.Errorf("Position().Point = %+v, want {5 100}", pt.Point)
	}
}

// ============================================================================
// Shift Tests
// ============================================================================

func TestShiftFields(t *testing.T) {
	s := Shift{
		Summary:       "バイト",
		StartDateTime: "2025-08-01T17:00:00+09:00:00",
		EndDateTime:   "2025-08-01T21:30:00+09:00:00",
		TimeZone:      "Asia/Tokyo",
	}

	fields := s.Fields()
	if len(fields) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(fields))
	}
	if fields["summary"] != "バイト" || fields["timezone"] != "Asia/Tokyo" {
		t.Errorf("unexpected fields: %v", fields)
	}
	if fields["start_datetime"] != s.StartDateTime || fields["end_datetime"] != s.EndDateTime {
		t.Errorf("unexpected datetime fields: %v", fields)
	}

	if s.StartDate() != "2025-08-01" || s.StartTime() != "17:00" {
		t.Errorf("start parts = %q %q", s.StartDate(), s.StartTime())
	}
	if s.EndDate() != "2025-08-01" || s.EndTime() != "21:30" {
		t.Errorf("end parts = %q %q", s.EndDate(), s.EndTime())
	}
}

func TestShiftPartsOfMalformedDateTime(t *testing.T) {
	s := Shift{StartDateTime: "2025-08-01"}
	if s.StartDate() != "2025-08-01" {
		t.Errorf("StartDate() = %q", s.StartDate())
	}
	if s.StartTime() != "" {
		t.Errorf("StartTime() = %q, want empty", s.StartTime())
	}
}

func TestSentinelErrorsWrap(t *testing.T) {
	err := fmt.Errorf("vision: %w", ErrMalformedInput)
	if !errors.Is(err, ErrMalformedInput) {
		t.Error("wrapped ErrMalformedInput not detected")
	}
	if errors.Is(err, ErrInvalidDateTime) {
		t.Error("ErrMalformedInput should not match ErrInvalidDateTime")
	}
}
