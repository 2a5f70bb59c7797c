package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Avyukt27/Scoundrel-TUI/internal/config"
	"github.com/Avyukt27/Scoundrel-TUI/internal/core"
)

// Fixed colors not covered by the theme file.
const (
	cardTextColor = "255" // White card borders
	hintColor     = "245" // Medium gray
)

// Theme maps screen roles to lipgloss styles.
type Theme struct {
	Name   string
	styles map[core.Role]lipgloss.Style
	Help   lipgloss.Style
}

// NewTheme builds styles from a theme config. A nil renderer uses the
// default lipgloss renderer for stdout.
func NewTheme(cfg config.ThemeConfig, r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return Theme{
		Name: cfg.Name,
		styles: map[core.Role]lipgloss.Style{
			core.RoleDefault:   r.NewStyle(),
			core.RoleTitle:     fg(cfg.Main.Title),
			core.RoleDeck:      fg(cfg.Main.Deck),
			core.RoleRoom:      fg(cfg.Main.Room),
			core.RoleWeapon:    fg(cfg.Main.Weapon),
			core.RoleLastEnemy: fg(cfg.Main.LastEnemy),
			core.RoleDiscard:   fg(cfg.Main.Discard),
			core.RoleClubs:     fg(cfg.Suit.Clubs),
			core.RoleDiamonds:  fg(cfg.Suit.Diamonds),
			core.RoleHearts:    fg(cfg.Suit.Hearts),
			core.RoleSpades:    fg(cfg.Suit.Spades),
			core.RoleCard:      fg(cardTextColor),
			core.RoleHint:      fg(hintColor),
		},
		Help: fg(hintColor),
	}
}

// DungeonTheme returns the default dark dungeon theme.
func DungeonTheme() Theme {
	return NewTheme(config.DungeonTheme(), nil)
}

// Style returns the style for a role with the given attributes applied.
// Unknown roles fall back to the default style.
func (t Theme) Style(role core.Role, attr core.Attr) lipgloss.Style {
	style, ok := t.styles[role]
	if !ok {
		style = t.styles[core.RoleDefault]
	}
	if attr.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if attr.Has(core.AttrItalic) {
		style = style.Italic(true)
	}
	return style
}
