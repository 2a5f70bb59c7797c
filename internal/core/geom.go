// Package core provides fundamental types and utilities for the board.
// It contains no external dependencies (especially no Bubble Tea) so the
// drawing code stays pure and testable.
package core

// Rect represents an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inner returns the area inside a one-cell border.
func (r Rect) Inner() Rect {
	return Rect{
		X: r.X + 1,
		Y: r.Y + 1,
		W: Max(r.W-2, 0),
		H: Max(r.H-2, 0),
	}
}

// Centered returns a w x h rectangle centered in r, shrunk to fit.
func (r Rect) Centered(w, h int) Rect {
	w = Clamp(w, 0, Max(r.W, 0))
	h = Clamp(h, 0, Max(r.H, 0))
	return Rect{
		X: r.X + (r.W-w)/2,
		Y: r.Y + (r.H-h)/2,
		W: w,
		H: h,
	}
}

// SplitTop cuts at most h rows off the top of r.
func (r Rect) SplitTop(h int) (top, rest Rect) {
	h = Clamp(h, 0, Max(r.H, 0))
	top = Rect{X: r.X, Y: r.Y, W: r.W, H: h}
	rest = Rect{X: r.X, Y: r.Y + h, W: r.W, H: r.H - h}
	return top, rest
}

// SplitRows divides r vertically by percentages.
// The last row absorbs rounding so the rows always cover r exactly.
func (r Rect) SplitRows(percents ...int) []Rect {
	edges := percentEdges(r.H, percents)
	rows := make([]Rect, len(percents))
	for i := range rows {
		rows[i] = Rect{X: r.X, Y: r.Y + edges[i], W: r.W, H: edges[i+1] - edges[i]}
	}
	return rows
}

// SplitCols divides r horizontally by percentages.
func (r Rect) SplitCols(percents ...int) []Rect {
	edges := percentEdges(r.W, percents)
	cols := make([]Rect, len(percents))
	for i := range cols {
		cols[i] = Rect{X: r.X + edges[i], Y: r.Y, W: edges[i+1] - edges[i], H: r.H}
	}
	return cols
}

// SplitWidths divides r horizontally into columns of the given widths.
// Columns that would overflow r are clipped.
func (r Rect) SplitWidths(widths ...int) []Rect {
	cols := make([]Rect, len(widths))
	x := r.X
	for i, w := range widths {
		w = Clamp(w, 0, Max(r.Right()-x, 0))
		cols[i] = Rect{X: x, Y: r.Y, W: w, H: r.H}
		x += w
	}
	return cols
}

// percentEdges returns cumulative offsets for a percentage split of total.
func percentEdges(total int, percents []int) []int {
	total = Max(total, 0)
	edges := make([]int, len(percents)+1)
	sum := 0
	for i, p := range percents {
		sum += p
		edges[i+1] = Clamp(total*sum/100, 0, total)
	}
	if len(percents) > 0 {
		edges[len(percents)] = total
	}
	return edges
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
