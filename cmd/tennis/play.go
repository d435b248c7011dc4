package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tennis/internal/config"
	"github.com/vovakirdan/tui-tennis/internal/platform/tui"
	"github.com/vovakirdan/tui-tennis/internal/storage"
)

var (
	flagPreset    string
	flagGameType  string
	flagAdvantage bool
	flagTiebreak  bool
	flagLeft      string
	flagRight     string
	flagHistory   int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Score a set on this terminal",
	Long: `Open the setup screen and keep score of one set.

Controls:
  Left/A     - Point to the left side
  Right/D    - Point to the right side
  U          - Undo
  G          - Reset the current game
  R          - Reset the match
  Esc/B      - Back to setup
  ?          - All keys
  Q/Ctrl+C   - Quit

Flags override the config file; the setup screen can still change
everything before the first point.

Examples:
  tennis play
  tennis play --preset no-ad
  tennis play --type doubles --tiebreak
  tennis play --left Ana --right Ben --history 100`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Rule preset (see 'tennis presets')")
	playCmd.Flags().StringVar(&flagGameType, "type", "", "Game type: singles or doubles")
	playCmd.Flags().BoolVar(&flagAdvantage, "advantage", true, "Play advantage at deuce (singles only)")
	playCmd.Flags().BoolVar(&flagTiebreak, "tiebreak", false, "Play a tiebreak at 6-6")
	playCmd.Flags().StringVar(&flagLeft, "left", "", "Left side name")
	playCmd.Flags().StringVar(&flagRight, "right", "", "Right side name")
	playCmd.Flags().IntVar(&flagHistory, "history", 0, "Undo depth")
}

// applyMatchFlags resolves the preset and explicitly set flags on top of cfg.
func applyMatchFlags(cmd *cobra.Command, cfg *config.TennisConfig) error {
	if flagPreset != "" {
		if err := config.ApplyPreset(cfg, flagPreset); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("type") {
		cfg.Match.GameType = flagGameType
	}
	if flags.Changed("advantage") {
		cfg.Rules.Advantage = flagAdvantage
	}
	if flags.Changed("tiebreak") {
		cfg.Rules.TiebreakAtSixAll = flagTiebreak
	}
	if flags.Changed("left") {
		cfg.Match.LeftName = flagLeft
	}
	if flags.Changed("right") {
		cfg.Match.RightName = flagRight
	}
	if flags.Changed("history") {
		cfg.History.Capacity = flagHistory
	}

	return cfg.Validate()
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()
	if err := applyMatchFlags(cmd, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'tennis presets' to see available presets.")
		os.Exit(1)
	}

	// The alternate screen owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	var logFile *os.File
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		logFile = f
		logOut = f
	}
	logger := newLogger(logOut, "tennis")

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - scoring still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config: cfg,
		Store:  store,
		Logger: logger,
		Width:  width,
		Height: height,
	})

	// Close store and log file before potential exit
	if store != nil {
		store.Close()
	}
	if logFile != nil {
		logFile.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", runErr)
		os.Exit(1)
	}
}
