package core

// Role tags a screen cell with what it depicts. The platform layer maps
// roles to concrete colors through the active theme.
type Role uint8

// Logical roles for board elements.
const (
	RoleDefault Role = iota
	RoleTitle
	RoleDeck
	RoleRoom
	RoleWeapon
	RoleLastEnemy
	RoleDiscard
	RoleClubs
	RoleDiamonds
	RoleHearts
	RoleSpades
	RoleCard // Card faces and borders
	RoleHint // Secondary text such as counters and hints
)

// Attr is a set of text attributes for a cell.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrItalic
)

// Has reports whether all attributes in mask are set.
func (a Attr) Has(mask Attr) bool {
	return a&mask == mask
}

// BorderSet holds the runes used to draw a box outline.
type BorderSet struct {
	TopLeft, TopRight, BottomLeft, BottomRight rune
	Horizontal, Vertical                       rune
}

// Border sets used by the board.
var (
	BorderPlain = BorderSet{
		TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
		Horizontal: '─', Vertical: '│',
	}
	BorderRounded = BorderSet{
		TopLeft: '╭', TopRight: '╮', BottomLeft: '╰', BottomRight: '╯',
		Horizontal: '─', Vertical: '│',
	}
	BorderThick = BorderSet{
		TopLeft: '┏', TopRight: '┓', BottomLeft: '┗', BottomRight: '┛',
		Horizontal: '━', Vertical: '┃',
	}
	BorderHeavyTripleDashed = BorderSet{
		TopLeft: '┏', TopRight: '┓', BottomLeft: '┗', BottomRight: '┛',
		Horizontal: '┅', Vertical: '┇',
	}
)
