// Package hocr loads glyph tokens from Tesseract hOCR output.
//
// hOCR is HTML in which each recognized element carries a class naming its
// level (ocr_page, ocr_carea, ocr_par, ocr_line, ocrx_word) and a title
// attribute holding properties such as "bbox x0 y0 x1 y1". When Tesseract is
// run with hocr_char_boxes=1, every word also contains ocrx_cinfo spans with
// per-character "x_bboxes".
//
//	tokens, err := hocr.Parse(f)
//
// Character boxes are used when present. Otherwise a word's box is divided
// evenly among its characters, which is accurate enough for row clustering
// on fixed-pitch digits.
package hocr

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/tsawler/shiftcal/model"
	"golang.org/x/net/html"
)

// Class names used by Tesseract
const (
	ClassPage = "ocr_page"
	ClassWord = "ocrx_word"
	ClassChar = "ocrx_cinfo"
)

// Parse reads an hOCR document and returns one token per character, in
// document order. It fails with model.ErrMalformedInput when the document
// has no ocr_page element or a word lacks a usable bounding box.
func Parse(r io.Reader) ([]model.Token, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("hocr: parsing document: %w: %v", model.ErrMalformedInput, err)
	}

	p := &parser{}
	if err := p.walk(doc); err != nil {
		return nil, err
	}
	if p.pages == 0 {
		return nil, fmt.Errorf("hocr: no %s element: %w", ClassPage, model.ErrMalformedInput)
	}
	return p.tokens, nil
}

type parser struct {
	pages  int
	words  int
	tokens []model.Token
}

func (p *parser) walk(n *html.Node) error {
	if n.Type == html.ElementNode {
		switch {
		case hasClass(n, ClassPage):
			p.pages++
		case hasClass(n, ClassWord):
			p.words++
			return p.word(n)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := p.walk(c); err != nil {
			return err
		}
	}
	return nil
}

// word emits the tokens of one ocrx_word element
func (p *parser) word(n *html.Node) error {
	var chars []*html.Node
	collect(n, ClassChar, &chars)

	if len(chars) > 0 {
		for _, c := range chars {
			text := strings.TrimSpace(textContent(c))
			if text == "" {
				continue
			}
			box, err := titleBox(c, "x_bboxes")
			if err != nil {
				return fmt.Errorf("hocr: word %d char %q: %w", p.words, text, err)
			}
			p.tokens = append(p.tokens, model.Token{Text: text, Quad: box.Quad()})
		}
		return nil
	}

	text := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, textContent(n))
	if text == "" {
		return nil
	}

	box, err := titleBox(n, "bbox")
	if err != nil {
		return fmt.Errorf("hocr: word %d %q: %w", p.words, text, err)
	}

	runes := []rune(text)
	for i, cell := range box.Split(len(runes)) {
		p.tokens = append(p.tokens, model.Token{Text: string(runes[i]), Quad: cell.Quad()})
	}
	return nil
}

// titleBox reads a four-integer box property from the title attribute
func titleBox(n *html.Node, property string) (model.BBox, error) {
	value, ok := titleProperty(attr(n, "title"), property)
	if !ok {
		return model.BBox{}, fmt.Errorf("missing %s: %w", property, model.ErrMalformedInput)
	}

	fields := strings.Fields(value)
	if len(fields) < 4 {
		return model.BBox{}, fmt.Errorf("%s has %d of 4 coordinates: %w", property, len(fields), model.ErrMalformedInput)
	}

	var c [4]float64
	for i := range c {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return model.BBox{}, fmt.Errorf("%s coordinate %q: %w", property, fields[i], model.ErrMalformedInput)
		}
		c[i] = v
	}
	return model.NewBBoxFromCorners(c[0], c[1], c[2], c[3]), nil
}

// titleProperty finds "name value..." among the semicolon separated
// properties of an hOCR title
func titleProperty(title, name string) (string, bool) {
	for _, prop := range strings.Split(title, ";") {
		prop = strings.TrimSpace(prop)
		key, value, _ := strings.Cut(prop, " ")
		if key == name {
			return strings.TrimSpace(value), true
		}
	}
	return "", false
}

func collect(n *html.Node, class string, out *[]*html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && hasClass(c, class) {
			*out = append(*out, c)
			continue
		}
		collect(c, class, out)
	}
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
