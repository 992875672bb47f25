package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/shiftcal/model"
)

// ClusterMode selects how tokens are grouped into rows
type ClusterMode int

const (
	// ClusterChain compares each token with the previous token in Y order.
	// Gradual drift along a row is followed, and two rows can merge when
	// intermediate tokens bridge the gap between them.
	ClusterChain ClusterMode = iota

	// ClusterCentroid compares each token with the mean Y of the row being
	// built, so a row cannot drift.
	ClusterCentroid
)

// String returns a string representation of the mode
func (m ClusterMode) String() string {
	switch m {
	case ClusterChain:
		return "chain"
	case ClusterCentroid:
		return "centroid"
	default:
		return "unknown"
	}
}

// ParseClusterMode converts a configuration string into a ClusterMode.
// The empty string selects ClusterChain.
func ParseClusterMode(s string) (ClusterMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "chain":
		return ClusterChain, true
	case "centroid":
		return ClusterCentroid, true
	default:
		return ClusterChain, false
	}
}

// Row is a group of tokens judged to lie on the same visual line
type Row struct {
	// Tokens are sorted left to right once the row is built
	Tokens []model.PositionedToken

	// Index is the row's position on the page (0-based, top to bottom)
	Index int
}

// Text concatenates the row's token text in order, with no separator
func (r Row) Text() string {
	var sb strings.Builder
	for _, t := range r.Tokens {
		sb.WriteString(t.Text)
	}
	return sb.String()
}

// Order sorts the row's tokens by X. Ties keep input order.
func (r *Row) Order() {
	sort.SliceStable(r.Tokens, func(i, j int) bool {
		return r.Tokens[i].Point.X < r.Tokens[j].Point.X
	})
}

// RowConfig holds configuration for row detection
type RowConfig struct {
	// Threshold is the Y gap, in pixels, below which a token joins the
	// current row (default: 10). The comparison is strict.
	Threshold float64

	// Mode selects the clustering reference (default: ClusterChain)
	Mode ClusterMode
}

// DefaultRowConfig returns the configuration schedule photos were tuned for
func DefaultRowConfig() RowConfig {
	return RowConfig{
		Threshold: 10,
		Mode:      ClusterChain,
	}
}

// RowLayout is the detected row structure of one recognition result
type RowLayout struct {
	// Rows are sorted top to bottom
	Rows []Row

	// Config is the configuration used for detection
	Config RowConfig
}

// RowDetector groups positioned tokens into rows
type RowDetector struct {
	config RowConfig
}

// NewRowDetector creates a new row detector with default configuration
func NewRowDetector() *RowDetector {
	return &RowDetector{
		config: DefaultRowConfig(),
	}
}

// NewRowDetectorWithConfig creates a row detector with custom configuration
func NewRowDetectorWithConfig(config RowConfig) *RowDetector {
	return &RowDetector{
		config: config,
	}
}

// Detect partitions tokens into rows and orders each row left to right.
// Every token ends up in exactly one row. The input slice is not modified.
func (d *RowDetector) Detect(tokens []model.PositionedToken) *RowLayout {
	groups := d.groupIntoRows(tokens)

	rows := make([]Row, 0, len(groups))
	for i, g := range groups {
		row := Row{Tokens: g, Index: i}
		row.Order()
		rows = append(rows, row)
	}

	return &RowLayout{
		Rows:   rows,
		Config: d.config,
	}
}

// groupIntoRows sorts tokens by Y and splits them where the gap to the
// reference Y reaches the threshold
func (d *RowDetector) groupIntoRows(tokens []model.PositionedToken) [][]model.PositionedToken {
	if len(tokens) == 0 {
		return nil
	}

	sorted := make([]model.PositionedToken, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Point.Y < sorted[j].Point.Y
	})

	var rows [][]model.PositionedToken
	current := []model.PositionedToken{sorted[0]}
	refY := sorted[0].Point.Y
	sumY := sorted[0].Point.Y

	for _, tok := range sorted[1:] {
		if tok.Point.Y-refY < d.config.Threshold {
			current = append(current, tok)
			sumY += tok.Point.Y
		} else {
			rows = append(rows, current)
			current = []model.PositionedToken{tok}
			sumY = tok.Point.Y
		}

		switch d.config.Mode {
		case ClusterCentroid:
			refY = sumY / float64(len(current))
		default:
			refY = tok.Point.Y
		}
	}

	return append(rows, current)
}

// Reduce collapses every token to its centroid. Seq records the token's
// position in the input.
func Reduce(tokens []model.Token) []model.PositionedToken {
	out := make([]model.PositionedToken, len(tokens))
	for i, t := range tokens {
		out[i] = model.Position(t, i)
	}
	return out
}

// RowCount returns the number of detected rows
func (l *RowLayout) RowCount() int {
	if l == nil {
		return 0
	}
	return len(l.Rows)
}

// GetRow returns a specific row by index
func (l *RowLayout) GetRow(index int) *Row {
	if l == nil || index < 0 || index >= len(l.Rows) {
		return nil
	}
	return &l.Rows[index]
}

// Texts returns the text of every row, top to bottom
func (l *RowLayout) Texts() []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l.Rows))
	for i, r := range l.Rows {
		out[i] = r.Text()
	}
	return out
}

// TokenCount returns the total number of tokens across all rows
func (l *RowLayout) TokenCount() int {
	if l == nil {
		return 0
	}
	n := 0
	for _, r := range l.Rows {
		n += len(r.Tokens)
	}
	return n
}
