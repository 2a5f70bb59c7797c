package core

import (
	"strings"
)

// Cell is a single character position on the screen.
type Cell struct {
	Rune rune
	Role Role
	Attr Attr
}

// blank is the content of a cleared cell.
var blank = Cell{Rune: ' '}

// Screen is a 2D cell buffer for rendering the board.
// It decouples drawing from the terminal: the board draws runes tagged
// with roles, and the platform turns roles into styles.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the whole screen as a rectangle.
func (s *Screen) Bounds() Rect {
	return Rect{W: s.width, H: s.height}
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = Max(width, 0), Max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	// Copy old content
	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with unstyled spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// Set places a rune with the default role at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r})
}

// SetCell places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawStyledText(x, y, text, RoleDefault, 0)
}

// DrawStyledText writes a string with the given role and attributes.
func (s *Screen) DrawStyledText(x, y int, text string, role Role, attr Attr) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, Cell{Rune: r, Role: role, Attr: attr})
		i++
	}
}

// DrawTextCentered draws text centered horizontally inside r on row y.
func (s *Screen) DrawTextCentered(r Rect, y int, text string, role Role, attr Attr) {
	n := len([]rune(text))
	x := r.X + Max(r.W-n, 0)/2
	s.DrawStyledText(x, y, text, role, attr)
}

// DrawRect fills a rectangular area with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune, role Role) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, Cell{Rune: fill, Role: role})
		}
	}
}

// DrawBox draws a box outline using the given border set.
// Boxes smaller than 2x2 are not drawn.
func (s *Screen) DrawBox(r Rect, b BorderSet, role Role) {
	if r.W < 2 || r.H < 2 {
		return
	}
	cell := func(ch rune) Cell { return Cell{Rune: ch, Role: role} }

	// Corners
	s.SetCell(r.X, r.Y, cell(b.TopLeft))
	s.SetCell(r.Right()-1, r.Y, cell(b.TopRight))
	s.SetCell(r.X, r.Bottom()-1, cell(b.BottomLeft))
	s.SetCell(r.Right()-1, r.Bottom()-1, cell(b.BottomRight))

	// Horizontal edges
	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetCell(x, r.Y, cell(b.Horizontal))
		s.SetCell(x, r.Bottom()-1, cell(b.Horizontal))
	}

	// Vertical edges
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetCell(r.X, y, cell(b.Vertical))
		s.SetCell(r.Right()-1, y, cell(b.Vertical))
	}
}

// DrawTitle writes a title into the top border of r, left aligned after
// the corner. The title is clipped to the border width.
func (s *Screen) DrawTitle(r Rect, title string, role Role, attr Attr) {
	room := r.W - 2
	if room <= 0 {
		return
	}
	runes := []rune(title)
	if len(runes) > room {
		runes = runes[:room]
	}
	s.DrawStyledText(r.X+1, r.Y, string(runes), role, attr)
}

// String converts the screen buffer to plain text without styling.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height) // Pre-allocate for efficiency

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a plain string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}
