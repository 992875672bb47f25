package ocr

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/tsawler/shiftcal/model"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// DefaultLanguage is the Tesseract language used for schedule photos
const DefaultLanguage = "jpn"

// PageSegMode selects how Tesseract splits a page into blocks before
// recognition. Values are Tesseract's own, so they pass through to the
// engine unchanged. Only modes that read a whole schedule page are offered.
type PageSegMode int

const (
	PageSegAuto          PageSegMode = 3
	PageSegSingleColumn  PageSegMode = 4
	PageSegSingleBlock   PageSegMode = 6
	PageSegSparseText    PageSegMode = 11
	PageSegSparseTextOSD PageSegMode = 12
)

// DefaultPageSegMode is Tesseract's own default
const DefaultPageSegMode = PageSegAuto

var pageSegNames = map[PageSegMode]string{
	PageSegAuto:          "auto",
	PageSegSingleColumn:  "single_column",
	PageSegSingleBlock:   "single_block",
	PageSegSparseText:    "sparse_text",
	PageSegSparseTextOSD: "sparse_text_osd",
}

// Valid reports whether m is one of the offered modes
func (m PageSegMode) Valid() bool {
	_, ok := pageSegNames[m]
	return ok
}

func (m PageSegMode) String() string {
	if name, ok := pageSegNames[m]; ok {
		return name
	}
	return fmt.Sprintf("PageSegMode(%d)", int(m))
}

// ParsePageSegMode returns the mode with the given config name, such as
// "sparse_text". The empty string selects DefaultPageSegMode.
func ParsePageSegMode(name string) (PageSegMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultPageSegMode, nil
	}
	for m, n := range pageSegNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown page segmentation mode %q", name)
}

// rectQuad converts an engine rectangle into a quadrilateral in OCR corner
// order
func rectQuad(r image.Rectangle) model.Quad {
	return model.NewBBox(
		float64(r.Min.X), float64(r.Min.Y),
		float64(r.Dx()), float64(r.Dy()),
	).Quad()
}
