// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall play              - Play in this terminal
//	blockfall serve             - Start SSH server for remote play
//	blockfall list              - List available games
//	blockfall catalogs [name]   - Show shape catalogs
//	blockfall config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/blockfall/internal/games/blockfall"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - falling blocks in your terminal",
	Long: `Blockfall drops shapes onto a grid one at a time. Steer and rotate
each piece before it lands; full rows vanish and gravity speeds up.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  list      - Show registered games
  catalogs  - Show shape catalogs
  config    - Print the effective configuration

Examples:
  blockfall play
  blockfall play --difficulty hard
  blockfall play --config ./my-blockfall.yaml --seed 42
  blockfall serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(catalogsCmd)
	rootCmd.AddCommand(configCmd)
}
