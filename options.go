package shiftcal

import (
	"github.com/tsawler/shiftcal/layout"
	"github.com/tsawler/shiftcal/ocr"
	"github.com/tsawler/shiftcal/shift"
	"go.uber.org/zap"
)

// ExtractOptions holds configuration for shift extraction. It holds no
// slices or maps, so copying the struct copies the configuration.
type ExtractOptions struct {
	// Date context
	clock shift.Clock

	// Row reconstruction
	rows layout.RowConfig

	// Row parsing
	minRowLength int
	stripGlyphs  string
	folding      shift.Folding

	// Event fields
	summary  string
	timeZone string
	offset   string

	// OCR
	language    string
	pageSegMode ocr.PageSegMode

	logger *zap.Logger
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		clock:        shift.SystemClock,
		rows:         layout.DefaultRowConfig(),
		minRowLength: shift.DefaultMinRowLength,
		stripGlyphs:  shift.DefaultStripGlyphs,
		folding:      shift.FoldDigits,
		summary:      shift.DefaultSummary,
		timeZone:     shift.DefaultTimeZone,
		offset:       shift.DefaultOffset,
		language:     ocr.DefaultLanguage,
		pageSegMode:  ocr.DefaultPageSegMode,
		logger:       zap.NewNop(),
	}
}

// parser builds a row parser for one run. The clock is read here, once.
func (o ExtractOptions) parser() *shift.Parser {
	p := shift.NewParser(o.clock)
	p.Filter.MinLength = o.minRowLength
	p.Cleaner = shift.Cleaner{Strip: o.stripGlyphs, Fold: o.folding}
	p.Builder.Summary = o.summary
	p.Builder.TimeZone = o.timeZone
	p.Builder.Offset = o.offset
	return p
}
