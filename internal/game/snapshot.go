package game

import (
	"slices"

	"github.com/Avyukt27/Scoundrel-TUI/internal/card"
)

// Snapshot is a read-only copy of the session taken once per frame.
// Renderers only ever see snapshots, never the session itself.
type Snapshot struct {
	DeckCount    int
	Room         Slot[[]card.Card]
	Weapon       Slot[card.Card]
	Discard      Slot[card.Card] // Most recently discarded card
	DiscardCount int
	LastEnemy    Slot[card.Card]
}

// Snapshot copies the current state. The room slice is cloned so the
// caller cannot reach back into the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		DeckCount:    s.deck.Len(),
		Weapon:       s.weapon,
		DiscardCount: len(s.discard),
		LastEnemy:    s.lastEnemy,
	}
	if room, ok := s.room.Get(); ok {
		snap.Room = Some(slices.Clone(room))
	}
	if n := len(s.discard); n > 0 {
		snap.Discard = Some(s.discard[n-1])
	}
	return snap
}
