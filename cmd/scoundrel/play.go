package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Avyukt27/Scoundrel-TUI/internal/config"
	"github.com/Avyukt27/Scoundrel-TUI/internal/core"
	"github.com/Avyukt27/Scoundrel-TUI/internal/game"
	"github.com/Avyukt27/Scoundrel-TUI/internal/logging"
	"github.com/Avyukt27/Scoundrel-TUI/internal/platform/tui"
	"github.com/Avyukt27/Scoundrel-TUI/internal/view"
)

var flagDeal bool

func init() {
	rootCmd.Flags().BoolVar(&flagDeal, "deal", false, "Deal the first room before opening the board")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := logging.Open(logging.Options{Path: flagLog, Debug: flagDebug})
	if err != nil {
		return err
	}
	defer logger.Close()
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			panic(r)
		}
	}()

	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		logger.Error("config", "error", err)
		return err
	}
	glyphs, err := view.GlyphSetByName(cfg.Glyphs)
	if err != nil {
		return err
	}

	// Get terminal size; Bubble Tea sends the real size on start too
	rc := core.DefaultConfig()
	rc.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	session := game.New(game.Options{
		Seed:     rc.Seed,
		RoomSize: cfg.Game.RoomSize,
		Logger:   logger.Logger,
	})
	if flagDeal {
		session.DrawRoom()
	}

	logger.Info("starting",
		"session", session.ID(),
		"config", src,
		"theme", cfg.Theme.Name,
		"glyphs", glyphs.Name,
		"width", rc.ScreenW,
		"height", rc.ScreenH,
	)

	runErr := tui.Run(session, tui.Options{
		Config: rc,
		Theme:  tui.NewTheme(cfg.Theme, nil),
		Glyphs: glyphs,
		Logger: logger.Logger,
	})
	if runErr != nil {
		logger.Error("terminal", "error", runErr)
		return fmt.Errorf("error running game: %w", runErr)
	}

	if err := session.CheckIntegrity(); err != nil {
		logger.Error("session", "error", err)
	}
	logger.Info("finished", "session", session.ID(), "deck", session.DeckLen())
	return nil
}
