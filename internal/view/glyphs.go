package view

import (
	"errors"
	"fmt"

	"github.com/Avyukt27/Scoundrel-TUI/internal/card"
	"github.com/Avyukt27/Scoundrel-TUI/internal/core"
)

// ErrUnknownGlyphs is returned when a glyph set name is not recognized.
var ErrUnknownGlyphs = errors.New("unknown glyph set")

// GlyphSet decides how suits and card backs are drawn.
type GlyphSet struct {
	Name     string
	Clubs    string
	Diamonds string
	Hearts   string
	Spades   string
	Back     rune // Fill for a face-down card
}

// Built-in glyph sets.
var (
	// NerdGlyphs needs a patched Nerd Font.
	NerdGlyphs = GlyphSet{
		Name:     "nerd",
		Clubs:    "\U000f08ce",
		Diamonds: "\U000f08cf",
		Hearts:   "\uf004",
		Spades:   "\U000f08d1",
		Back:     '▒',
	}
	UnicodeGlyphs = GlyphSet{
		Name:     "unicode",
		Clubs:    "♣",
		Diamonds: "♦",
		Hearts:   "♥",
		Spades:   "♠",
		Back:     '▒',
	}
	ASCIIGlyphs = GlyphSet{
		Name:     "ascii",
		Clubs:    "C",
		Diamonds: "D",
		Hearts:   "H",
		Spades:   "S",
		Back:     '#',
	}
)

var glyphSets = map[string]GlyphSet{
	NerdGlyphs.Name:    NerdGlyphs,
	UnicodeGlyphs.Name: UnicodeGlyphs,
	ASCIIGlyphs.Name:   ASCIIGlyphs,
}

// GlyphSetByName returns the built-in glyph set with the given name.
func GlyphSetByName(name string) (GlyphSet, error) {
	g, ok := glyphSets[name]
	if !ok {
		return GlyphSet{}, fmt.Errorf("view: %w: %q", ErrUnknownGlyphs, name)
	}
	return g, nil
}

// GlyphSetNames lists the built-in glyph set names.
func GlyphSetNames() []string {
	return []string{NerdGlyphs.Name, UnicodeGlyphs.Name, ASCIIGlyphs.Name}
}

// Suit returns the glyph for s.
func (g GlyphSet) Suit(s card.Suit) string {
	switch s {
	case card.Clubs:
		return g.Clubs
	case card.Diamonds:
		return g.Diamonds
	case card.Hearts:
		return g.Hearts
	case card.Spades:
		return g.Spades
	default:
		return "?"
	}
}

// Label is the text printed on a card face, e.g. "Q ♠".
func (g GlyphSet) Label(c card.Card) string {
	return c.Rank.String() + " " + g.Suit(c.Suit)
}

// SuitRole maps a suit to its styling role.
func SuitRole(s card.Suit) core.Role {
	switch s {
	case card.Clubs:
		return core.RoleClubs
	case card.Diamonds:
		return core.RoleDiamonds
	case card.Hearts:
		return core.RoleHearts
	case card.Spades:
		return core.RoleSpades
	default:
		return core.RoleCard
	}
}
