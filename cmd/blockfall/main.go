// blockfall is a terminal falling-block puzzle game.
//
// Usage:
//
//	blockfall            - Play with the resolved configuration
//	blockfall config     - Print the resolved configuration as YAML
//
// Flags:
//
//	--config <path>  - Use a specific config file
//	--fps <rate>     - Override the configured tick rate
//	--seed <value>   - Set the RNG seed for a reproducible session
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagSeed   int64
)

// logger reports CLI failures; the game itself never logs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "blockfall",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Falling-block puzzle for the terminal",
	Long: `Blockfall is a terminal falling-block puzzle game. Pieces fall into a
well; completed rows disappear and score a point each. The game ends
when a new piece no longer fits.

Controls:
  Left/A, Right/D  - Move
  Up/W             - Rotate clockwise
  Z                - Rotate counter-clockwise
  Down/S           - Soft drop
  Space            - Hard drop
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Examples:
  blockfall
  blockfall --seed 42
  blockfall --config ./my-rules.yaml
  blockfall config > ~/.blockfall/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom config YAML")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(configCmd)
}
