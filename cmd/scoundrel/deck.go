package main

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Avyukt27/Scoundrel-TUI/internal/card"
	"github.com/Avyukt27/Scoundrel-TUI/internal/config"
	"github.com/Avyukt27/Scoundrel-TUI/internal/view"
)

// cardsPerLine is the number of cards printed on one line.
const cardsPerLine = 11

var flagShuffled bool

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Print the dungeon deck",
	Long: `Prints the 44 cards of the dungeon deck in draw order, top card first,
followed by a count per suit. Red face cards and red aces are not part of
the dungeon.

Examples:
  scoundrel deck
  scoundrel deck --shuffled --seed 42`,
	Args: cobra.NoArgs,
	RunE: runDeck,
}

func init() {
	deckCmd.Flags().BoolVar(&flagShuffled, "shuffled", false, "Shuffle the deck first (uses --seed)")
}

func runDeck(cmd *cobra.Command, args []string) error {
	cfg, _, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	glyphs, err := view.GlyphSetByName(cfg.Glyphs)
	if err != nil {
		return err
	}

	deck := card.Dungeon()
	if flagShuffled {
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		deck.Shuffle(rand.New(rand.NewSource(seed)))
	}

	writeDeck(cmd.OutOrStdout(), deck, glyphs)
	return nil
}

// writeDeck prints the deck top card first, then a per-suit summary.
func writeDeck(w io.Writer, deck *card.Deck, glyphs view.GlyphSet) {
	cards := deck.Cards()
	fmt.Fprintf(w, "Dungeon deck (%d cards, top first):\n\n", len(cards))

	counts := make(map[card.Suit]int)
	line := make([]string, 0, cardsPerLine)
	for i := len(cards) - 1; i >= 0; i-- {
		c := cards[i]
		counts[c.Suit]++
		line = append(line, fmt.Sprintf("%-5s", glyphs.Label(c)))
		if len(line) == cardsPerLine || i == 0 {
			fmt.Fprintf(w, "  %s\n", strings.TrimRight(strings.Join(line, " "), " "))
			line = line[:0]
		}
	}

	fmt.Fprintln(w)
	for _, s := range card.Suits() {
		fmt.Fprintf(w, "  %-9s %s  %2d\n", s, glyphs.Suit(s), counts[s])
	}
}
