package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultConfig().Validate())
}

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	t.Parallel()

	var cfg Config
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad hex", func(c *Config) { c.Theme.Main.Title = "#zzzzzz" }, "theme.main.title"},
		{"short hex", func(c *Config) { c.Theme.Main.LastEnemy = "#fff" }, "theme.main.last_enemy"},
		{"empty color", func(c *Config) { c.Theme.Suit.Spades = "" }, "theme.suit.spades"},
		{"ansi out of range", func(c *Config) { c.Theme.Suit.Hearts = "256" }, "theme.suit.hearts"},
		{"unknown glyphs", func(c *Config) { c.Glyphs = "emoji" }, "glyphs"},
		{"room too small", func(c *Config) { c.Game.RoomSize = 0 }, "game.room_size"},
		{"room too large", func(c *Config) { c.Game.RoomSize = 5 }, "game.room_size"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestValidColor(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"#000000", "#B4282D", "0", "208", "255"} {
		assert.True(t, ValidColor(s), s)
	}
	for _, s := range []string{"", "#", "#12345", "#1234567", "red", "-1", "300", "b4282d"} {
		assert.False(t, ValidColor(s), s)
	}
}
