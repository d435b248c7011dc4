package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tennis/internal/tennis"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List rule presets",
	Long: `List the rule presets defined in the configuration.

Presets are selected with 'tennis play --preset <name>'.
Add your own under the presets section of ~/.tennis/config.yaml.`,
	Args: cobra.NoArgs,
	Run:  runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	fmt.Println("Rule presets:")
	fmt.Println()

	for _, name := range cfg.PresetNames() {
		p := cfg.Presets[name]

		gameType := tennis.GameType(p.GameType)
		if p.GameType == "" {
			gameType = tennis.GameType(cfg.Match.GameType)
		}
		deuce := "advantage"
		if !p.Advantage || gameType == tennis.Doubles {
			deuce = "no-ad"
		}
		tiebreak := "no tiebreak"
		if p.TiebreakAtSixAll {
			tiebreak = "tiebreak at 6-6"
		}

		fmt.Printf("  %-12s %s\n", name, p.Description)
		fmt.Printf("  %-12s %s, %s, %s\n", "", gameType.Title(), deuce, tiebreak)
	}

	fmt.Println()
	fmt.Println("Use: tennis play --preset <name>")
}
