// scoundrel shows the Scoundrel dungeon board in the terminal.
//
// Usage:
//
//	scoundrel                - Open the board (q to quit)
//	scoundrel deck           - Print the dungeon deck
//	scoundrel config         - Print the default configuration
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for a reproducible shuffle
//	--config <path>  - Use a specific config file
//	--log <path>     - Set debug log path (default: ~/.scoundrel/debug.log)
//	--debug          - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Avyukt27/Scoundrel-TUI/internal/logging"
)

var (
	// Global flags
	flagSeed   int64
	flagConfig string
	flagLog    string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scoundrel",
	Short: "Scoundrel - a single-player dungeon crawl with a deck of cards",
	Long: `Scoundrel is a solitaire dungeon crawler played with a 44 card deck:
clubs and spades are monsters, diamonds are weapons and hearts are potions.

Running scoundrel without a command opens the board.

Controls:
  Q/Ctrl+C   - Quit

Examples:
  scoundrel
  scoundrel --seed 42 --deal
  scoundrel --config ./my-theme.yaml
  scoundrel deck --shuffled --seed 42
  scoundrel config > ~/.scoundrel/config.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", logging.DefaultPath(), "Path to debug log (empty disables logging)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(deckCmd)
	rootCmd.AddCommand(configCmd)
}
