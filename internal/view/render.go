// Package view draws a game snapshot onto a core.Screen.
// It never touches the session; everything it shows comes from game.Snapshot.
package view

import (
	"fmt"

	"github.com/Avyukt27/Scoundrel-TUI/internal/card"
	"github.com/Avyukt27/Scoundrel-TUI/internal/core"
	"github.com/Avyukt27/Scoundrel-TUI/internal/game"
)

// Title is the banner shown in the header.
const Title = "SCOUNDREL"

// Panel titles.
const (
	deckTitle      = " Deck "
	roomTitle      = " Room "
	weaponTitle    = " Current Weapon "
	lastEnemyTitle = " Last Enemy Defeated with a Weapon "
	discardTitle   = " Discard "
)

// Render draws the whole board for snap into dst.
func Render(dst *core.Screen, snap game.Snapshot, glyphs GlyphSet) {
	dst.Clear()
	area := dst.Bounds()
	reg := Layout(area)

	renderHeader(dst, reg.Header)

	if TooSmall(area) {
		renderTooSmall(dst, area)
		return
	}

	renderDeck(dst, reg.Deck, snap.DeckCount, glyphs)
	renderRoom(dst, reg.Room, snap.Room, glyphs)

	inner := panel(dst, reg.Weapon, weaponTitle, core.RoleWeapon)
	if w, ok := snap.Weapon.Get(); ok {
		drawCard(dst, inner, w, glyphs)
	}

	inner = panel(dst, reg.LastEnemy, lastEnemyTitle, core.RoleLastEnemy)
	if e, ok := snap.LastEnemy.Get(); ok {
		drawCard(dst, inner, e, glyphs)
	}

	renderDiscard(dst, reg.Discard, snap, glyphs)
}

// renderHeader draws the title banner.
func renderHeader(dst *core.Screen, r core.Rect) {
	dst.DrawBox(r, core.BorderHeavyTripleDashed, core.RoleTitle)
	dst.DrawTextCentered(r, r.Y+r.H/2, Title, core.RoleTitle, core.AttrBold)
}

// renderTooSmall asks for a bigger terminal below the banner.
func renderTooSmall(dst *core.Screen, area core.Rect) {
	_, body := area.SplitTop(HeaderHeight)
	y := body.Y + body.H/2
	dst.DrawTextCentered(body, y, "Window too small", core.RoleHint, 0)
	hint := fmt.Sprintf("Please resize to at least %dx%d", MinWidth, MinHeight)
	dst.DrawTextCentered(body, y+1, hint, core.RoleHint, 0)
}

// panel draws a titled box and returns the area inside it.
func panel(dst *core.Screen, r core.Rect, title string, role core.Role) core.Rect {
	dst.DrawBox(r, core.BorderPlain, role)
	dst.DrawTitle(r, title, role, core.AttrBold)
	return r.Inner()
}

// renderDeck draws a card back while the deck has cards, and the count.
func renderDeck(dst *core.Screen, r core.Rect, count int, glyphs GlyphSet) {
	inner := panel(dst, r, deckTitle, core.RoleDeck)
	if inner.Empty() {
		return
	}

	label := "empty"
	if count > 0 {
		label = fmt.Sprintf("%d left", count)
		cardArea := core.NewRect(inner.X, inner.Y, inner.W, inner.H-1)
		drawCardBack(dst, cardArea, glyphs)
	}
	dst.DrawTextCentered(inner, inner.Bottom()-1, label, core.RoleHint, 0)
}

// renderRoom lays the room cards out side by side in fixed columns.
func renderRoom(dst *core.Screen, r core.Rect, room game.Slot[[]card.Card], glyphs GlyphSet) {
	inner := panel(dst, r, roomTitle, core.RoleRoom)
	cards, ok := room.Get()
	if !ok {
		return
	}

	percents := make([]int, RoomSlots)
	for i := range percents {
		percents[i] = 100 / RoomSlots
	}
	cols := inner.SplitCols(percents...)
	for i, c := range cards {
		if i >= len(cols) {
			break
		}
		drawCard(dst, cols[i], c, glyphs)
	}
}

// renderDiscard shows the top of the discard pile and the pile size.
func renderDiscard(dst *core.Screen, r core.Rect, snap game.Snapshot, glyphs GlyphSet) {
	inner := panel(dst, r, discardTitle, core.RoleDiscard)
	top, ok := snap.Discard.Get()
	if !ok || inner.Empty() {
		return
	}

	cardArea := core.NewRect(inner.X, inner.Y, inner.W, inner.H-1)
	drawCard(dst, cardArea, top, glyphs)
	label := fmt.Sprintf("%d in pile", snap.DiscardCount)
	dst.DrawTextCentered(inner, inner.Bottom()-1, label, core.RoleHint, 0)
}

// cardRect is a card-sized box centered in r, shrunk to fit.
func cardRect(r core.Rect) core.Rect {
	return r.Centered(CardWidth, CardHeight)
}

// drawCard draws a face-up card with its rank and suit in the middle.
func drawCard(dst *core.Screen, r core.Rect, c card.Card, glyphs GlyphSet) {
	box := cardRect(r)
	if box.Empty() {
		return
	}
	dst.DrawBox(box, core.BorderRounded, core.RoleCard)
	dst.DrawTextCentered(box, box.Y+box.H/2, glyphs.Label(c), SuitRole(c.Suit), core.AttrBold)
}

// drawCardBack draws a face-down card.
func drawCardBack(dst *core.Screen, r core.Rect, glyphs GlyphSet) {
	box := cardRect(r)
	if box.Empty() {
		return
	}
	dst.DrawBox(box, core.BorderRounded, core.RoleCard)
	dst.DrawRect(box.Inner(), glyphs.Back, core.RoleDeck)
}
