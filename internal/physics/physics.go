// Package physics provides collision detection on axis-aligned rectangles.
package physics

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (x, y float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Inset returns the sub-rectangle at offset (dx, dy) relative to r's origin
// with the given size. Used to place hitboxes inside sprite rectangles.
func (r Rect) Inset(dx, dy, width, height float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: width, Height: height}
}

// Overlaps reports whether a and b intersect. Rectangles that only share an
// edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.Width &&
		a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height &&
		a.Y+a.Height > b.Y
}

// Contains reports whether the point (x, y) lies within the closed bounds
// [0, width] x [0, height].
func Contains(width, height, x, y float64) bool {
	return x >= 0 && x <= width && y >= 0 && y <= height
}
