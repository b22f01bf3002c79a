// flappy is a terminal Flappy Bird: a fixed-tick simulation drawn by a
// terminal renderer.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy simulate          - Run the simulation headless and print the result
//	flappy renderers         - List available renderers
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.flappy/config.yaml, ./configs/flappy.yaml, built-in)
//	--seed <value>      - RNG seed for reproducible obstacles (0 = time based)
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs here while a renderer owns the terminal
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	// Import renderers to register them
	_ "github.com/vovakirdan/tui-flappy/internal/platform/tcellui"
	_ "github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `flappy is a side-scrolling reflex game for the terminal. Keep the bird
in the air and fly it through the gaps between the walls.

Available commands:
  play       - Play the game
  simulate   - Run the simulation without a screen
  renderers  - Show the available renderers
  config     - Print the effective configuration

Examples:
  flappy play
  flappy play --renderer tcell
  flappy simulate --ticks 300 --flap-every 4 --seed 7
  flappy config --config ./my-flappy.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file used while playing (default: logs are discarded)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(renderersCmd)
	rootCmd.AddCommand(configCmd)
}

// resolveSeed turns the zero seed into a time-based one.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}
