// Package card provides the card model and the dungeon deck.
// It has no knowledge of glyphs, colors or terminal geometry; the
// presentation layer decides how a card looks.
package card

import (
	"cmp"
	"fmt"
)

// Rank is a card rank. The zero value is not a valid rank.
type Rank uint8

const (
	Two Rank = iota + 1
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// rankWeights holds the ordering weight of each rank, Two=2 through Ace=14.
var rankWeights = map[Rank]int{
	Two:   2,
	Three: 3,
	Four:  4,
	Five:  5,
	Six:   6,
	Seven: 7,
	Eight: 8,
	Nine:  9,
	Ten:   10,
	Jack:  11,
	Queen: 12,
	King:  13,
	Ace:   14,
}

var rankLabels = map[Rank]string{
	Two:   "2",
	Three: "3",
	Four:  "4",
	Five:  "5",
	Six:   "6",
	Seven: "7",
	Eight: "8",
	Nine:  "9",
	Ten:   "10",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
}

// Weight returns the ordering weight of the rank (Two=2 ... Ace=14).
// Invalid ranks weigh 0.
func (r Rank) Weight() int {
	return rankWeights[r]
}

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	_, ok := rankWeights[r]
	return ok
}

// String returns the short display label ("2".."10", "J", "Q", "K", "A").
func (r Rank) String() string {
	if label, ok := rankLabels[r]; ok {
		return label
	}
	return fmt.Sprintf("Rank(%d)", uint8(r))
}

// Suit is a card suit. The zero value is not a valid suit.
type Suit uint8

const (
	Clubs Suit = iota + 1
	Diamonds
	Hearts
	Spades
)

// order is the fixed tie-break order: Clubs < Diamonds < Hearts < Spades.
func (s Suit) order() int {
	switch s {
	case Clubs:
		return 0
	case Diamonds:
		return 1
	case Hearts:
		return 2
	case Spades:
		return 3
	default:
		return -1
	}
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s.order() >= 0
}

// String returns the suit name.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	default:
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
}

// Ranks returns all ranks in ascending weight order.
func Ranks() []Rank {
	return []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
}

// Suits returns all suits in tie-break order.
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// Card is an immutable (suit, rank) pair. Cards are plain values and
// compare equal with == when suit and rank match.
type Card struct {
	Suit Suit
	Rank Rank
}

// New creates a card. Passing a suit or rank outside the enumeration is a
// programming error and panics.
func New(suit Suit, rank Rank) Card {
	if !suit.Valid() {
		panic(fmt.Sprintf("card: invalid suit %d", uint8(suit)))
	}
	if !rank.Valid() {
		panic(fmt.Sprintf("card: invalid rank %d", uint8(rank)))
	}
	return Card{Suit: suit, Rank: rank}
}

// Compare orders cards by rank weight, then by suit.
// It returns -1, 0 or +1 like cmp.Compare.
func Compare(a, b Card) int {
	if c := cmp.Compare(a.Rank.Weight(), b.Rank.Weight()); c != 0 {
		return c
	}
	return cmp.Compare(a.Suit.order(), b.Suit.order())
}

// Less reports whether c sorts before other.
func (c Card) Less(other Card) bool {
	return Compare(c, other) < 0
}

// String returns a readable name such as "Q of Spades".
func (c Card) String() string {
	return c.Rank.String() + " of " + c.Suit.String()
}
