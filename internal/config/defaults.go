package config

import (
	"github.com/tsawler/shiftcal/layout"
	"github.com/tsawler/shiftcal/ocr"
	"github.com/tsawler/shiftcal/shift"
)

// Default returns a Config populated with the extractor's defaults.
func Default() Config {
	rows := layout.DefaultRowConfig()
	return Config{
		Layout: Layout{
			RowThreshold: rows.Threshold,
			Clustering:   rows.Mode.String(),
		},
		Parse: Parse{
			MinRowLength: shift.DefaultMinRowLength,
			StripGlyphs:  shift.DefaultStripGlyphs,
			Folding:      shift.FoldDigits.String(),
		},
		Calendar: Calendar{
			Summary:   shift.DefaultSummary,
			TimeZone:  shift.DefaultTimeZone,
			UTCOffset: shift.DefaultOffset,
		},
		OCR: OCR{
			Language:    ocr.DefaultLanguage,
			PageSegMode: ocr.DefaultPageSegMode.String(),
		},
	}
}
