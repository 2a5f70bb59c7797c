// Package config provides YAML-based configuration loading and validation
// for Scoundrel.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Room size bounds.
const (
	MinRoomSize = 1
	MaxRoomSize = 4
)

// GlyphSets lists the accepted values for Config.Glyphs.
var GlyphSets = []string{"nerd", "unicode", "ascii"}

// Config is the full Scoundrel configuration.
type Config struct {
	Theme  ThemeConfig `yaml:"theme"`
	Glyphs string      `yaml:"glyphs"`
	Game   GameConfig  `yaml:"game"`
}

// ThemeConfig defines the board colors.
type ThemeConfig struct {
	Name string     `yaml:"name"`
	Main MainColors `yaml:"main"`
	Suit SuitColors `yaml:"suit"`
}

// MainColors colors the board panels.
type MainColors struct {
	Title     string `yaml:"title"`
	Deck      string `yaml:"deck"`
	Room      string `yaml:"room"`
	Weapon    string `yaml:"weapon"`
	LastEnemy string `yaml:"last_enemy"`
	Discard   string `yaml:"discard"`
}

// SuitColors colors card labels by suit.
type SuitColors struct {
	Clubs    string `yaml:"clubs"`
	Diamonds string `yaml:"diamonds"`
	Hearts   string `yaml:"hearts"`
	Spades   string `yaml:"spades"`
}

// GameConfig defines session parameters.
type GameConfig struct {
	RoomSize int `yaml:"room_size"`
}

// Validate checks every field and reports the first problem found.
func (c Config) Validate() error {
	colors := []struct {
		field, value string
	}{
		{"theme.main.title", c.Theme.Main.Title},
		{"theme.main.deck", c.Theme.Main.Deck},
		{"theme.main.room", c.Theme.Main.Room},
		{"theme.main.weapon", c.Theme.Main.Weapon},
		{"theme.main.last_enemy", c.Theme.Main.LastEnemy},
		{"theme.main.discard", c.Theme.Main.Discard},
		{"theme.suit.clubs", c.Theme.Suit.Clubs},
		{"theme.suit.diamonds", c.Theme.Suit.Diamonds},
		{"theme.suit.hearts", c.Theme.Suit.Hearts},
		{"theme.suit.spades", c.Theme.Suit.Spades},
	}
	for _, col := range colors {
		if !ValidColor(col.value) {
			return fmt.Errorf("%w: %s: bad color %q", ErrInvalid, col.field, col.value)
		}
	}

	if !slices.Contains(GlyphSets, c.Glyphs) {
		return fmt.Errorf("%w: glyphs: %q is not one of %s",
			ErrInvalid, c.Glyphs, strings.Join(GlyphSets, ", "))
	}

	if c.Game.RoomSize < MinRoomSize || c.Game.RoomSize > MaxRoomSize {
		return fmt.Errorf("%w: game.room_size: %d is outside %d..%d",
			ErrInvalid, c.Game.RoomSize, MinRoomSize, MaxRoomSize)
	}
	return nil
}

// ValidColor reports whether s is a "#rrggbb" hex color or an ANSI 256
// color number.
func ValidColor(s string) bool {
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 6 {
			return false
		}
		_, err := strconv.ParseUint(hex, 16, 32)
		return err == nil
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}
