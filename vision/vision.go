// Package vision loads glyph tokens from Google Cloud Vision
// DOCUMENT_TEXT_DETECTION results.
//
// Both JSON spellings of AnnotateImageResponse are accepted: the REST API's
// camelCase ("fullTextAnnotation", "boundingBox") and the snake_case
// produced by the client libraries' to_dict helpers ("full_text_annotation",
// "bounding_box"). A batch wrapper {"responses": [...]} is also accepted, in
// which case tokens from every response are returned in order.
//
//	resp, err := vision.Parse(f)
//	if err != nil {
//	    return err
//	}
//	tokens, err := resp.Tokens()
package vision

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tsawler/shiftcal/model"
)

// Vertex is a pixel coordinate. The REST API omits zero-valued fields, so a
// missing X or Y decodes as 0.
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BoundingPoly is a polygon given by its vertices
type BoundingPoly struct {
	Vertices []Vertex `json:"vertices"`
}

// Symbol is a single recognized character
type Symbol struct {
	Text        string        `json:"text"`
	BoundingBox *BoundingPoly `json:"boundingBox"`
	BoundingAlt *BoundingPoly `json:"bounding_box"`
}

// Word is a sequence of symbols
type Word struct {
	Symbols []Symbol `json:"symbols"`
}

// Paragraph is a sequence of words
type Paragraph struct {
	Words []Word `json:"words"`
}

// Block is a logical element on the page
type Block struct {
	Paragraphs []Paragraph `json:"paragraphs"`
}

// Page is one detected page
type Page struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Blocks []Block `json:"blocks"`
}

// TextAnnotation is the structured text of an image
type TextAnnotation struct {
	Pages []Page `json:"pages"`
	Text  string `json:"text"`
}

// Response is a single AnnotateImageResponse
type Response struct {
	FullTextAnnotation *TextAnnotation `json:"fullTextAnnotation"`
	FullTextAlt        *TextAnnotation `json:"full_text_annotation"`

	// Responses holds the entries of a batch wrapper
	Responses []Response `json:"responses"`
}

// Parse decodes a recognition result from r
func Parse(r io.Reader) (*Response, error) {
	var resp Response
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, fmt.Errorf("vision: decoding response: %w: %v", model.ErrMalformedInput, err)
	}
	return &resp, nil
}

// Annotation returns the full text annotation under either spelling, or nil
func (r *Response) Annotation() *TextAnnotation {
	if r.FullTextAnnotation != nil {
		return r.FullTextAnnotation
	}
	return r.FullTextAlt
}

// Text returns the plain text of the annotation, batch entries joined
func (r *Response) Text() string {
	if len(r.Responses) > 0 {
		text := ""
		for i := range r.Responses {
			text += r.Responses[i].Text()
		}
		return text
	}
	if a := r.Annotation(); a != nil {
		return a.Text
	}
	return ""
}

// Tokens flattens the page tree into one token per symbol, in document
// order. It fails with model.ErrMalformedInput when the annotation or its
// pages are absent, or a symbol lacks four vertices.
func (r *Response) Tokens() ([]model.Token, error) {
	if len(r.Responses) > 0 {
		var all []model.Token
		for i := range r.Responses {
			tokens, err := r.Responses[i].Tokens()
			if err != nil {
				return nil, fmt.Errorf("response %d: %w", i, err)
			}
			all = append(all, tokens...)
		}
		return all, nil
	}

	a := r.Annotation()
	if a == nil {
		return nil, fmt.Errorf("vision: no full text annotation: %w", model.ErrMalformedInput)
	}
	if a.Pages == nil {
		return nil, fmt.Errorf("vision: annotation has no pages: %w", model.ErrMalformedInput)
	}

	var tokens []model.Token
	for pi, page := range a.Pages {
		for bi, block := range page.Blocks {
			for _, para := range block.Paragraphs {
				for _, word := range para.Words {
					for _, sym := range word.Symbols {
						quad, err := sym.quad()
						if err != nil {
							return nil, fmt.Errorf("vision: page %d block %d symbol %q: %w", pi, bi, sym.Text, err)
						}
						tokens = append(tokens, model.Token{Text: sym.Text, Quad: quad})
					}
				}
			}
		}
	}
	return tokens, nil
}

// quad converts the symbol's first four vertices into a quadrilateral
func (s Symbol) quad() (model.Quad, error) {
	poly := s.BoundingBox
	if poly == nil {
		poly = s.BoundingAlt
	}
	if poly == nil || len(poly.Vertices) < 4 {
		n := 0
		if poly != nil {
			n = len(poly.Vertices)
		}
		return model.Quad{}, fmt.Errorf("bounding box has %d of 4 vertices: %w", n, model.ErrMalformedInput)
	}

	var q model.Quad
	for i := range q {
		q[i] = model.Point{X: poly.Vertices[i].X, Y: poly.Vertices[i].Y}
	}
	return q, nil
}
