package main

import (
	"github.com/spf13/cobra"

	"github.com/Avyukt27/Scoundrel-TUI/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration file. Save it to
~/.scoundrel/config.yaml or ./configs/scoundrel.yaml and edit it to change
the colors, suit glyphs or room size.

Examples:
  scoundrel config > ~/.scoundrel/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
	return err
}
