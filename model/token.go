package model

// Token is a single recognized glyph and the quadrilateral the OCR engine
// reported for it.
type Token struct {
	Text string
	Quad Quad
}

// Centroid returns the representative point of the token's glyph.
func (t Token) Centroid() Point {
	return t.Quad.Centroid()
}

// PositionedToken is a token reduced to a single point.
type PositionedToken struct {
	Text  string
	Point Point

	// Seq is the token's index in the loader's output. Sorts that must be
	// stable break ties by Seq.
	Seq int
}

// Position reduces a token to its centroid.
func Position(t Token, seq int) PositionedToken {
	return PositionedToken{Text: t.Text, Point: t.Centroid(), Seq: seq}
}
