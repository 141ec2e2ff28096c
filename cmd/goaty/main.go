// goaty is Goaty Loaty, a side-scrolling runner: jump the cacti, grab the
// coins and survive thirty seconds.
//
// Usage:
//
//	goaty                  - Play in the terminal (same as goaty play)
//	goaty play             - Play in the terminal
//	goaty window           - Play in a desktop window
//	goaty config           - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: from config, 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Load a custom config YAML
//	--assets <dir>      - Load images and sounds from a directory
//	--log-file <path>   - Write logs to a file
//	--realtime          - Time rounds with the wall clock instead of ticks
//	--mute              - Disable audio
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagAssets   string
	flagLogFile  string
	flagRealtime bool
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "goaty",
	Short: "Goaty Loaty - a side-scrolling goat runner",
	Long: `Goaty Loaty is a small side-scroller. Jump over the cacti, collect
coins for points and stay alive for thirty seconds to win.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  goaty
  goaty window --assets ./assets
  goaty play --seed 42 --log-file goaty.log
  goaty config --defaults > configs/goaty.yaml`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config, default 60)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory with images/ and sounds/ (default: built-in)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagRealtime, "realtime", false, "Time rounds with the wall clock")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound and music")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
