package config

import (
	_ "embed"
)

//go:embed defaults/scoundrel.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in dungeon configuration.
func DefaultConfig() Config {
	return Config{
		Theme:  DungeonTheme(),
		Glyphs: "unicode",
		Game: GameConfig{
			RoomSize: MaxRoomSize,
		},
	}
}

// DungeonTheme returns the default dark dungeon palette.
func DungeonTheme() ThemeConfig {
	return ThemeConfig{
		Name: "dungeon",
		Main: MainColors{
			Title:     "#b4282d",
			Deck:      "#5c4033",
			Room:      "#46443c",
			Weapon:    "#b9a5a5",
			LastEnemy: "#a03c3c",
			Discard:   "#5f5f5a",
		},
		Suit: SuitColors{
			Clubs:    "#467850",
			Diamonds: "#b48c46",
			Hearts:   "#aa3c3c",
			Spades:   "#5a6e8c",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
