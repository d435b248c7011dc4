// tennis is a terminal scoreboard for a single tennis set.
//
// Usage:
//
//	tennis play              - Score a set on this terminal
//	tennis serve             - Start SSH server for remote scoring
//	tennis results           - Show recently finished sets
//	tennis presets           - List rule presets
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.tennis/config.yaml, ./configs/tennis.yaml)
//	--db <path>         - Set database path (default: ~/.tennis/results.db)
//	--log-level <level> - debug, info, warn, error (default: info)
//	--log-file <path>   - Write logs to a file during play
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tennis/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
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
	Use:   "tennis",
	Short: "Tennis Score - keep score of a tennis set in your terminal",
	Long: `Tennis Score is a terminal scoreboard for a single tennis set.

Available commands:
  play     - Score a set on this terminal
  serve    - Start SSH server for remote scoring
  results  - Show recently finished sets
  presets  - List rule presets

Examples:
  tennis play
  tennis play --preset tiebreak --left Ana --right Ben
  tennis play --type doubles
  tennis serve --ssh :2222
  tennis results --team Ana`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tennis/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (play only; serve logs to stderr)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(presetsCmd)
}

// loadConfig loads the configuration or exits.
func loadConfig() config.TennisConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using info\n", err)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
