package model

import "math"

// Point represents a 2D point in image pixel space (Y grows downward)
type Point struct {
	X, Y float64
}

// BBox represents an axis-aligned bounding box in image space
type BBox struct {
	X      float64 // Left
	Y      float64 // Top (image coordinate system)
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from coordinates
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// NewBBoxFromCorners creates a bounding box from two opposite corners,
// as used by hOCR "bbox x0 y0 x1 y1" attributes.
func NewBBoxFromCorners(x0, y0, x1, y1 float64) BBox {
	return BBox{
		X:      math.Min(x0, x1),
		Y:      math.Min(y0, y1),
		Width:  math.Abs(x1 - x0),
		Height: math.Abs(y1 - y0),
	}
}

// Left returns the left edge X coordinate
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Top returns the top edge Y coordinate
func (b BBox) Top() float64 {
	return b.Y
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() float64 {
	return b.Y + b.Height
}

// Quad returns the four corners of the box in OCR order
func (b BBox) Quad() Quad {
	return Quad{
		{X: b.Left(), Y: b.Top()},
		{X: b.Right(), Y: b.Top()},
		{X: b.Right(), Y: b.Bottom()},
		{X: b.Left(), Y: b.Bottom()},
	}
}

// Split divides the box horizontally into n equal-width boxes, left to right.
func (b BBox) Split(n int) []BBox {
	if n <= 0 {
		return nil
	}
	w := b.Width / float64(n)
	out := make([]BBox, n)
	for i := range out {
		out[i] = BBox{X: b.X + float64(i)*w, Y: b.Y, Width: w, Height: b.Height}
	}
	return out
}

// IsEmpty returns true if the bounding box has zero area
func (b BBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Quad is a glyph's bounding quadrilateral. Corners are stored in the order
// the OCR engine reports them: top-left, top-right, bottom-right, bottom-left.
// Rotated or skewed glyphs make the quadrilateral non-rectangular.
type Quad [4]Point

// Centroid returns the arithmetic mean of the four corners.
func (q Quad) Centroid() Point {
	var sx, sy float64
	for _, p := range q {
		sx += p.X
		sy += p.Y
	}
	return Point{X: sx / 4, Y: sy / 4}
}

// Bounds returns the smallest axis-aligned box containing all four corners.
func (q Quad) Bounds() BBox {
	minX, minY := q[0].X, q[0].Y
	maxX, maxY := q[0].X, q[0].Y
	for _, p := range q[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return BBox{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
