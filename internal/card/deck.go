package card

import (
	"math/rand"
	"time"
)

// DungeonSize is the number of cards in a fresh dungeon deck.
const DungeonSize = 44

// Deck is an ordered pile of cards. The end of the slice is the top:
// Draw takes from it and AddToEnd puts onto it.
type Deck struct {
	cards []Card
}

// FromCards creates a deck that owns the given slice verbatim.
// No deduplication or validation is done.
func FromCards(cards []Card) *Deck {
	return &Deck{cards: cards}
}

// Dungeon returns the 44-card dungeon deck in canonical order:
// suit-major (Clubs, Diamonds, Hearts, Spades), rank ascending.
// Black suits carry all thirteen ranks; red suits only Two through Ten.
func Dungeon() *Deck {
	cards := make([]Card, 0, DungeonSize)
	for _, s := range Suits() {
		for _, r := range Ranks() {
			if isRed(s) && r.Weight() > Ten.Weight() {
				continue
			}
			cards = append(cards, New(s, r))
		}
	}
	return FromCards(cards)
}

func isRed(s Suit) bool {
	return s == Diamonds || s == Hearts
}

// Draw removes and returns the top card.
// Returns false when the deck is empty.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, true
}

// AddToEnd puts a card on top of the deck.
func (d *Deck) AddToEnd(c Card) {
	d.cards = append(d.cards, c)
}

// Shuffle reorders the deck uniformly at random using rng.
// A nil rng falls back to a time-seeded generator.
func (d *Deck) Shuffle(rng *rand.Rand) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Peek returns the top card without removing it.
func (d *Deck) Peek() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	return d.cards[len(d.cards)-1], true
}

// Len returns the number of cards in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Empty reports whether the deck has no cards.
func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the deck, bottom first.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
