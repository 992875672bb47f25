package shift

import (
	"fmt"
	"strings"

	"golang.org/x/text/width"
)

// DefaultStripGlyphs are characters OCR commonly produces for the table's
// ruling lines and stray strokes on schedule photos.
const DefaultStripGlyphs = "I|"

// Folding selects which full-width characters are narrowed before stripping
type Folding int

const (
	// FoldNone keeps every character as recognized
	FoldNone Folding = iota

	// FoldDigits maps "０"-"９" to "0"-"9" and leaves everything else alone.
	// The row keeps its rune count.
	FoldDigits

	// FoldWidth applies Unicode width folding to the whole row. Full-width
	// ASCII is narrowed and half-width katakana is widened, which can merge
	// a voiced mark into the preceding kana.
	FoldWidth
)

var foldingNames = map[Folding]string{
	FoldNone:   "none",
	FoldDigits: "digits",
	FoldWidth:  "width",
}

func (f Folding) String() string {
	if name, ok := foldingNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Folding(%d)", int(f))
}

// ParseFolding returns the Folding named "none", "digits" or "width"
func ParseFolding(name string) (Folding, error) {
	for f, n := range foldingNames {
		if n == name {
			return f, nil
		}
	}
	return FoldNone, fmt.Errorf("unknown folding %q (want none, digits or width)", name)
}

// Cleaner removes misrecognized glyphs from a row before field extraction.
type Cleaner struct {
	// Strip lists every character to delete
	Strip string

	// Fold is applied before stripping
	Fold Folding
}

// NewCleaner creates a cleaner that folds full-width digits and strips
// DefaultStripGlyphs
func NewCleaner() Cleaner {
	return Cleaner{Strip: DefaultStripGlyphs, Fold: FoldDigits}
}

// Clean returns row with every Strip character removed. It never fails and
// is idempotent.
func (c Cleaner) Clean(row string) string {
	switch c.Fold {
	case FoldDigits:
		row = strings.Map(foldDigit, row)
	case FoldWidth:
		row = width.Fold.String(row)
	}
	if c.Strip == "" {
		return row
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(c.Strip, r) {
			return -1
		}
		return r
	}, row)
}

func foldDigit(r rune) rune {
	if r >= '０' && r <= '９' {
		return '0' + (r - '０')
	}
	return r
}
