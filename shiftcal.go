// Package shiftcal provides a fluent API for turning OCR results of
// photographed work-shift schedules into calendar-ready shifts.
//
// Basic usage:
//
//	shifts, warnings, err := shiftcal.Open("response.json").Shifts()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", shiftcal.FormatWarnings(warnings))
//	}
//
// With options:
//
//	shifts, _, err := shiftcal.Open("shift.hocr").
//	    Year(2025).
//	    MinRowLength(18).
//	    TimeZone("Asia/Tokyo", "+09:00:00").
//	    Shifts()
//
// Inputs may be Cloud Vision JSON, Tesseract hOCR, or (when built with
// -tags ocr) an image that is recognized with Tesseract. Lower-level stages
// live in the layout and shift packages.
package shiftcal

import (
	"fmt"
	"io"

	"github.com/tsawler/shiftcal/format"
	"github.com/tsawler/shiftcal/model"
)

// Open returns an Extractor for the file at filename. The format is taken
// from the extension and, when that is not conclusive, from the content.
// The file is read when a terminal operation runs.
//
// Example:
//
//	shifts, warnings, err := shiftcal.Open("response.json").Shifts()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		format:   format.Detect(filename),
		options:  defaultOptions(),
	}
}

// FromBytes creates an Extractor from in-memory input of the given format.
// Pass format.Unknown to detect the format from the content.
//
// Example:
//
//	shifts, _, err := shiftcal.FromBytes(body, format.VisionJSON).Shifts()
func FromBytes(data []byte, f format.Format) *Extractor {
	return &Extractor{
		data:    append([]byte(nil), data...),
		hasData: true,
		format:  f,
		options: defaultOptions(),
	}
}

// FromVision creates an Extractor over a Cloud Vision annotate response.
// The reader is consumed immediately.
func FromVision(r io.Reader) *Extractor {
	return fromReader(r, format.VisionJSON)
}

// FromHOCR creates an Extractor over Tesseract hOCR output. The reader is
// consumed immediately.
func FromHOCR(r io.Reader) *Extractor {
	return fromReader(r, format.HOCR)
}

func fromReader(r io.Reader, f format.Format) *Extractor {
	data, err := io.ReadAll(r)
	ext := &Extractor{
		data:    data,
		hasData: true,
		format:  f,
		options: defaultOptions(),
	}
	if err != nil {
		ext.err = fmt.Errorf("failed to read %s input: %w", f, err)
	}
	return ext
}

// FromTokens creates an Extractor over tokens that were already loaded,
// for instance by a caller that talks to an OCR service itself.
//
// Example:
//
//	shifts, _, err := shiftcal.FromTokens(tokens).Year(2025).Shifts()
func FromTokens(tokens []model.Token) *Extractor {
	return &Extractor{
		tokens:    append([]model.Token(nil), tokens...),
		hasTokens: true,
		options:   defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	rows := shiftcal.Must(shiftcal.Open("response.json").Rows())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustShifts is a helper that wraps a call to Shifts() and panics if the
// error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	shifts := shiftcal.MustShifts(shiftcal.Open("response.json").Shifts())
func MustShifts[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
