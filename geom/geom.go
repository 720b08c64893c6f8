// Package geom provides cell-space points and axis-aligned rectangles
package geom

// Point is a position in terminal cell coordinates, origin top-left
type Point struct {
	X, Y int
}

// Rect is an axis-aligned box given by its edge coordinates
type Rect struct {
	Left, Right, Top, Bottom int
}

// NewRect builds a rect from its top-left corner and size
func NewRect(x, y, w, h int) Rect {
	return Rect{Left: x, Right: x + w - 1, Top: y, Bottom: y + h - 1}
}

// Width returns the number of columns covered, edges included
func (r Rect) Width() int {
	return r.Right - r.Left + 1
}

// Height returns the number of rows covered, edges included
func (r Rect) Height() int {
	return r.Bottom - r.Top + 1
}

// Contains reports whether p lies strictly inside r on both axes
// A point on an edge is outside
func (r Rect) Contains(p Point) bool {
	return r.Left < p.X && p.X < r.Right && r.Top < p.Y && p.Y < r.Bottom
}

// ContainsEdge reports whether p lies inside r or on its edge
func (r Rect) ContainsEdge(p Point) bool {
	return r.Left <= p.X && p.X <= r.Right && r.Top <= p.Y && p.Y <= r.Bottom
}

// Center returns the middle cell of the rect
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// HitTest checks a drop position against a target that may not be rendered yet
// An unready target never hits
func HitTest(target Rect, ready bool, p Point) bool {
	if !ready {
		return false
	}
	return target.Contains(p)
}
