package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Avyukt27/Scoundrel-TUI/internal/card"
)

func TestSlot(t *testing.T) {
	t.Parallel()

	var zero Slot[card.Card]
	assert.True(t, zero.IsNone())
	assert.False(t, zero.IsSome())

	none := None[card.Card]()
	assert.Equal(t, zero, none)

	// A slot holding the zero card is still distinguishable from an empty one.
	filled := Some(card.Card{})
	v, ok := filled.Get()
	assert.True(t, ok)
	assert.Equal(t, card.Card{}, v)
	assert.NotEqual(t, none, filled)

	room := Some([]card.Card{})
	cards, ok := room.Get()
	assert.True(t, ok)
	assert.Empty(t, cards)
}
