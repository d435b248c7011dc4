package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tennis/internal/storage"
)

var (
	flagLimit int
	flagTeam  string
	flagMatch string
	flagClear bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recently finished sets",
	Long: `Display the most recently finished sets, newest first.

Examples:
  tennis results
  tennis results --limit 5
  tennis results --team Ana
  tennis results --match 0b6c1c9e-...
  tennis results --clear`,
	Args: cobra.NoArgs,
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sets to show")
	resultsCmd.Flags().StringVar(&flagTeam, "team", "", "Also show the record of this team name")
	resultsCmd.Flags().StringVar(&flagMatch, "match", "", "Show a single set by match ID")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded sets")
}

func runResults(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}

	err = showResults(store)
	// Close store before potential exit
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showResults(store *storage.Store) error {
	switch {
	case flagClear:
		if err := store.ClearResults(); err != nil {
			return err
		}
		fmt.Println("All results cleared.")
		return nil

	case flagMatch != "":
		return printMatch(store, flagMatch)
	}

	sets, err := store.RecentSets(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving results: %w", err)
	}

	fmt.Println("Finished Sets")
	fmt.Println()

	if len(sets) == 0 {
		fmt.Println("No sets recorded yet.")
		fmt.Println()
		fmt.Println("Run 'tennis play' and finish a set to see it here!")
		return nil
	}

	fmt.Printf("  %-16s  %-8s  %-28s  %-5s  %s\n", "Date", "Type", "Players", "Score", "Winner")
	fmt.Printf("  %-16s  %-8s  %-28s  %-5s  %s\n", "----", "----", "-------", "-----", "------")
	for _, s := range sets {
		players := s.LeftName + " v " + s.RightName
		winner := s.WinnerName
		if s.TiebreakPlayed {
			winner += " (TB)"
		}
		fmt.Printf("  %-16s  %-8s  %-28s  %-5s  %s\n",
			s.CreatedAt.Format("2006-01-02 15:04"), s.GameType, players, s.Score(), winner)
	}

	if flagTeam != "" {
		rec, err := store.TeamRecord(flagTeam)
		if err != nil {
			return fmt.Errorf("retrieving record: %w", err)
		}
		fmt.Println()
		fmt.Printf("%s: %d played, %d won, %d lost (games %d-%d)\n",
			rec.Name, rec.Played, rec.Won, rec.Lost(), rec.GamesWon, rec.GamesLost)
	}
	return nil
}

func printMatch(store *storage.Store, id string) error {
	matchID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid match ID %q: %w", id, err)
	}

	s, err := store.SetByMatchID(matchID)
	if err != nil {
		return fmt.Errorf("retrieving set: %w", err)
	}
	if s == nil {
		fmt.Printf("No set recorded for match %s\n", matchID)
		return nil
	}

	deuce := "no-ad"
	if s.Advantage {
		deuce = "advantage"
	}
	tiebreak := "no tiebreak"
	if s.Tiebreak {
		tiebreak = "tiebreak at 6-6"
	}

	fmt.Printf("Match    %s\n", s.MatchID)
	fmt.Printf("Played   %s\n", s.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("Format   %s, %s, %s\n", s.GameType, deuce, tiebreak)
	fmt.Printf("Players  %s v %s\n", s.LeftName, s.RightName)
	fmt.Printf("Score    %s\n", s.Score())
	fmt.Printf("Winner   %s (%s side)\n", s.WinnerName, s.WinnerSide)
	return nil
}
