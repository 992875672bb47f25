package shift

import (
	"testing"
	"unicode/utf8"
)

func TestCleaner_Clean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"unchanged", "8/1金17時00分21時30分", "8/1金17時00分21時30分"},
		{"pipes", "|8/1金|17時00分|21時30分|", "8/1金17時00分21時30分"},
		{"capital I", "I8/1金17時00分I21時30分", "8/1金17時00分21時30分"},
		{"full-width digits", "８/１金１７時００分２１時３０分", "8/1金17時00分21時30分"},
		{"full-width bar kept", "｜8/1金17時00分21時30分", "｜8/1金17時00分21時30分"},
		{"full-width slash kept", "8／1金17時00分21時30分", "8／1金17時00分21時30分"},
		{"half-width katakana kept", "ｶﾞ8/1", "ｶﾞ8/1"},
		{"only noise", "I|I|", ""},
		{"empty", "", ""},
		{"lowercase kept", "il", "il"},
	}

	c := NewCleaner()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleaner_DigitFoldingKeepsRuneCount(t *testing.T) {
	c := Cleaner{Fold: FoldDigits}
	for _, in := range []string{"８/１金１７時００分", "ｶﾞ８／１", "ＩＩ｜｜"} {
		got := c.Clean(in)
		if utf8.RuneCountInString(got) != utf8.RuneCountInString(in) {
			t.Errorf("Clean(%q) = %q changed the rune count", in, got)
		}
	}
}

func TestCleaner_WidthFolding(t *testing.T) {
	c := Cleaner{Strip: DefaultStripGlyphs, Fold: FoldWidth}
	tests := []struct {
		in   string
		want string
	}{
		{"｜8／1金１７時00分", "8/1金17時00分"},
		{"ｶﾞ8/1", "ガ8/1"},
	}
	for _, tt := range tests {
		if got := c.Clean(tt.in); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleaner_Idempotent(t *testing.T) {
	inputs := []string{
		"8/1金17時00分21時30分",
		"|I|8/1金１７時00分21時30分II",
		"ＩＩ｜｜",
		"ｶﾀｶﾅ I",
		"",
	}

	cleaners := []Cleaner{
		NewCleaner(),
		{Strip: DefaultStripGlyphs, Fold: FoldWidth},
		{Strip: DefaultStripGlyphs},
		{},
	}
	for _, c := range cleaners {
		for _, in := range inputs {
			once := c.Clean(in)
			if twice := c.Clean(once); twice != once {
				t.Errorf("%+v: Clean(Clean(%q)) = %q, want %q", c, in, twice, once)
			}
		}
	}
}

func TestCleaner_WithoutFolding(t *testing.T) {
	c := Cleaner{Strip: DefaultStripGlyphs}
	if got := c.Clean("１７|"); got != "１７" {
		t.Errorf("Clean() = %q, want full-width digits kept", got)
	}
}

func TestParseFolding(t *testing.T) {
	for _, f := range []Folding{FoldNone, FoldDigits, FoldWidth} {
		got, err := ParseFolding(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFolding(%q) = %v, %v", f.String(), got, err)
		}
	}
	if _, err := ParseFolding("kana"); err == nil {
		t.Error("expected error for unknown folding")
	}
}
