package layout

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tsawler/shiftcal/model"
)

// makeToken creates a positioned test token
func makeToken(txt string, x, y float64, seq int) model.PositionedToken {
	return model.PositionedToken{Text: txt, Point: model.Point{X: x, Y: y}, Seq: seq}
}

// spell lays out each rune of s left to right on the given Y
func spell(s string, x0, y float64, seq int) []model.PositionedToken {
	var out []model.PositionedToken
	x := x0
	for _, r := range s {
		out = append(out, makeToken(string(r), x, y, seq))
		x += 12
		seq++
	}
	return out
}

func TestRowDetector_EmptyTokens(t *testing.T) {
	detector := NewRowDetector()
	layout := detector.Detect(nil)

	if layout == nil {
		t.Fatal("Expected non-nil layout")
	}
	if layout.RowCount() != 0 {
		t.Errorf("Expected 0 rows, got %d", layout.RowCount())
	}
	if layout.TokenCount() != 0 {
		t.Errorf("Expected 0 tokens, got %d", layout.TokenCount())
	}
}

func TestRowDetector_SingleToken(t *testing.T) {
	layout := NewRowDetector().Detect([]model.PositionedToken{makeToken("8", 10, 100, 0)})

	if layout.RowCount() != 1 {
		t.Fatalf("Expected 1 row, got %d", layout.RowCount())
	}
	if row := layout.GetRow(0); row.Text() != "8" || row.Index != 0 {
		t.Errorf("unexpected row %+v", row)
	}
}

func TestRowDetector_ThresholdBoundary(t *testing.T) {
	tests := []struct {
		name     string
		y1, y2   float64
		wantRows int
	}{
		{"gap 8 joins", 100, 108, 1},
		{"gap 12 splits", 100, 112, 2},
		{"gap exactly threshold splits", 100, 110, 2},
		{"gap just under threshold joins", 100, 109.99, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := []model.PositionedToken{
				makeToken("a", 10, tt.y1, 0),
				makeToken("b", 20, tt.y2, 1),
			}
			layout := NewRowDetector().Detect(tokens)
			if layout.RowCount() != tt.wantRows {
				t.Errorf("Expected %d rows, got %d", tt.wantRows, layout.RowCount())
			}
		})
	}
}

func TestRowDetector_ChainDrift(t *testing.T) {
	// Each step is 6px; the last token is 24px below the first but still
	// chained to its neighbour.
	tokens := []model.PositionedToken{
		makeToken("a", 10, 100, 0),
		makeToken("b", 20, 106, 1),
		makeToken("c", 30, 112, 2),
		makeToken("d", 40, 118, 3),
		makeToken("e", 50, 124, 4),
	}

	chain := NewRowDetector().Detect(tokens)
	if chain.RowCount() != 1 {
		t.Fatalf("chain: expected 1 row, got %d", chain.RowCount())
	}
	if chain.GetRow(0).Text() != "abcde" {
		t.Errorf("chain: got %q", chain.GetRow(0).Text())
	}

	centroid := NewRowDetectorWithConfig(RowConfig{Threshold: 10, Mode: ClusterCentroid}).Detect(tokens)
	if centroid.RowCount() < 2 {
		t.Errorf("centroid: expected drift to split rows, got %d row(s)", centroid.RowCount())
	}
}

func TestRowDetector_ChainBridgesRows(t *testing.T) {
	// Two visual rows 20px apart, bridged by glyphs in between.
	tokens := append(spell("ABC", 10, 100, 0), spell("DEF", 10, 120, 3)...)
	tokens = append(tokens, makeToken("x", 200, 107, 6), makeToken("y", 210, 114, 7))

	layout := NewRowDetector().Detect(tokens)
	if layout.RowCount() != 1 {
		t.Errorf("Expected bridged rows to merge, got %d rows: %v", layout.RowCount(), layout.Texts())
	}

	withoutBridge := NewRowDetector().Detect(tokens[:6])
	if withoutBridge.RowCount() != 2 {
		t.Errorf("Expected 2 rows without bridge, got %d", withoutBridge.RowCount())
	}
}

func TestRowDetector_OrdersLeftToRight(t *testing.T) {
	// Emitted out of reading order, as an OCR engine walking columns would.
	tokens := []model.PositionedToken{
		makeToken("時", 60, 101, 0),
		makeToken("8", 10, 100, 1),
		makeToken("1", 30, 102, 2),
		makeToken("/", 20, 99, 3),
		makeToken("7", 50, 100, 4),
		makeToken("金", 40, 100, 5),
	}

	layout := NewRowDetector().Detect(tokens)
	if layout.RowCount() != 1 {
		t.Fatalf("Expected 1 row, got %d", layout.RowCount())
	}
	if got := layout.GetRow(0).Text(); got != "8/1金7時" {
		t.Errorf("Expected '8/1金7時', got %q", got)
	}
}

func TestRowDetector_StableTies(t *testing.T) {
	tokens := []model.PositionedToken{
		makeToken("a", 10, 100, 0),
		makeToken("b", 10, 100, 1),
		makeToken("c", 10, 100, 2),
	}

	layout := NewRowDetector().Detect(tokens)
	if got := layout.GetRow(0).Text(); got != "abc" {
		t.Errorf("Expected input order on ties, got %q", got)
	}
}

func TestRowDetector_RowsTopToBottom(t *testing.T) {
	tokens := append(spell("second", 10, 200, 0), spell("first", 10, 100, 6)...)

	layout := NewRowDetector().Detect(tokens)
	want := []string{"first", "second"}
	if diff := cmp.Diff(want, layout.Texts()); diff != "" {
		t.Errorf("Texts() mismatch (-want +got):\n%s", diff)
	}
	if layout.GetRow(1).Index != 1 {
		t.Errorf("Expected index 1, got %d", layout.GetRow(1).Index)
	}
	if layout.GetRow(2) != nil || layout.GetRow(-1) != nil {
		t.Error("Expected nil for out-of-range rows")
	}
}

func TestRowDetector_DoesNotModifyInput(t *testing.T) {
	tokens := []model.PositionedToken{
		makeToken("b", 20, 200, 0),
		makeToken("a", 10, 100, 1),
	}
	before := append([]model.PositionedToken(nil), tokens...)

	NewRowDetector().Detect(tokens)

	if diff := cmp.Diff(before, tokens); diff != "" {
		t.Errorf("input modified (-before +after):\n%s", diff)
	}
}

func TestRowDetector_PartitionAndOrderingLaw(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(80)
		tokens := make([]model.PositionedToken, n)
		for i := range tokens {
			tokens[i] = makeToken("x", float64(rng.Intn(400)), float64(rng.Intn(300)), i)
		}

		for _, mode := range []ClusterMode{ClusterChain, ClusterCentroid} {
			layout := NewRowDetectorWithConfig(RowConfig{Threshold: 10, Mode: mode}).Detect(tokens)

			if layout.TokenCount() != n {
				t.Fatalf("trial %d %s: token count %d, want %d", trial, mode, layout.TokenCount(), n)
			}

			var seqs []int
			for _, row := range layout.Rows {
				for i, tok := range row.Tokens {
					seqs = append(seqs, tok.Seq)
					if i == 0 {
						continue
					}
					prev := row.Tokens[i-1]
					if prev.Point.X > tok.Point.X {
						t.Fatalf("trial %d %s: row %d not ordered by X", trial, mode, row.Index)
					}
				}
			}

			sort.Ints(seqs)
			for i, s := range seqs {
				if s != i {
					t.Fatalf("trial %d %s: token %d lost or duplicated", trial, mode, i)
				}
			}
		}
	}
}

func TestRowDetector_Deterministic(t *testing.T) {
	tokens := append(spell("8/1金17時00分21時30分", 10, 100, 0), spell("シフト表", 10, 40, 100)...)

	first := NewRowDetector().Detect(tokens)
	for i := 0; i < 10; i++ {
		again := NewRowDetector().Detect(tokens)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("run %d differs:\n%s", i, diff)
		}
	}
}

func TestReduce(t *testing.T) {
	tokens := []model.Token{
		{Text: "8", Quad: model.Quad{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 20}, {X: 0, Y: 20}}},
		{Text: "/", Quad: model.Quad{{X: 12, Y: 2}, {X: 18, Y: 2}, {X: 18, Y: 22}, {X: 12, Y: 22}}},
	}

	got := Reduce(tokens)
	want := []model.PositionedToken{
		{Text: "8", Point: model.Point{X: 5, Y: 10}, Seq: 0},
		{Text: "/", Point: model.Point{X: 15, Y: 12}, Seq: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Reduce() mismatch (-want +got):\n%s", diff)
	}

	if len(Reduce(nil)) != 0 {
		t.Error("Expected empty result for nil input")
	}
}

func TestParseClusterMode(t *testing.T) {
	tests := []struct {
		in   string
		want ClusterMode
		ok   bool
	}{
		{"", ClusterChain, true},
		{"chain", ClusterChain, true},
		{" Centroid ", ClusterCentroid, true},
		{"dbscan", ClusterChain, false},
	}

	for _, tt := range tests {
		got, ok := ParseClusterMode(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseClusterMode(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}

	if ClusterMode(9).String() != "unknown" {
		t.Error("Expected unknown for invalid mode")
	}
}
