package view

import "github.com/Avyukt27/Scoundrel-TUI/internal/core"

// Board geometry.
const (
	HeaderHeight = 3
	CardWidth    = 24
	CardHeight   = 14
	RoomSlots    = 4 // Room columns, drawn even when fewer cards are dealt

	// Smallest terminal that still shows the board.
	MinWidth  = 60
	MinHeight = 16

	bottomMinCol  = 20 // Weapon and last enemy columns
	discardMaxCol = 30
)

// Regions holds the screen area of each board element.
type Regions struct {
	Header    core.Rect
	Deck      core.Rect
	Room      core.Rect
	Weapon    core.Rect
	LastEnemy core.Rect
	Discard   core.Rect
}

// Layout splits area into the board regions. The header takes at most
// three rows and the rest is halved. The top half is split 20/80 between
// the deck and the room. On the bottom half the discard column gets at
// most 30 cells once the weapon and last enemy columns have their 20
// cells each, and the two of them share whatever is left.
func Layout(area core.Rect) Regions {
	var reg Regions

	var body core.Rect
	reg.Header, body = area.SplitTop(HeaderHeight)

	rows := body.SplitRows(50, 50)
	top := rows[0].SplitCols(20, 80)
	reg.Deck, reg.Room = top[0], top[1]

	w := core.Max(area.W, 0)
	discardW := core.Clamp(w-2*bottomMinCol, 0, discardMaxCol)
	rest := w - discardW
	weaponW := rest / 2
	bottom := rows[1].SplitWidths(weaponW, rest-weaponW, discardW)
	reg.Weapon, reg.LastEnemy, reg.Discard = bottom[0], bottom[1], bottom[2]

	return reg
}

// TooSmall reports whether area cannot hold the board.
func TooSmall(area core.Rect) bool {
	return area.W < MinWidth || area.H < MinHeight
}
