// Package core provides the terminal-independent drawing surface for the
// playfield: a colored cell buffer, rectangles and the mapping from world
// coordinates to cells. It has no Bubble Tea dependency.
package core

// Rect is an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by n cells on every side.
// The result never has negative dimensions.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X: r.X + n,
		Y: r.Y + n,
		W: max(0, r.W-2*n),
		H: max(0, r.H-2*n),
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ProjectX maps a horizontal position given as a percentage of the field
// width to the column where a label of labelW cells should start so that it
// is centered on that position. The label is kept inside the field.
func ProjectX(pct float64, field Rect, labelW int) int {
	center := field.X + int(ClampF(pct, 0, 100)/100*float64(field.W))
	x := center - labelW/2
	return Clamp(x, field.X, max(field.X, field.Right()-labelW))
}

// ProjectY maps a world y in [0, floor] to a row of the field. Positions
// above zero map to ok=false since they are not visible yet.
func ProjectY(y, floor float64, field Rect) (row int, ok bool) {
	if y < 0 || floor <= 0 || field.H <= 0 {
		return 0, false
	}
	row = field.Y + int(y/floor*float64(field.H))
	if row >= field.Bottom() {
		row = field.Bottom() - 1
	}
	return row, true
}
