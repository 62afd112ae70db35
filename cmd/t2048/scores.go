package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a mode, or a summary of every
mode when none is given.

Examples:
  t2048 scores
  t2048 scores campaign
  t2048 scores endless --all
  t2048 scores endless --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every score of the mode instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every score of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case len(args) == 0 && (flagScoresAll || flagScoresClear):
		err = fmt.Errorf("--all and --clear need a mode")
	case len(args) == 0:
		err = printScoreSummary(store)
	case flagScoresClear:
		err = clearScores(store, args[0])
	default:
		err = printTopScores(store, args[0])
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// clearScores deletes the scores of one mode.
func clearScores(store *storage.Store, mode string) error {
	gameID, err := resolveMode(mode)
	if err != nil {
		return err
	}
	n, err := store.ClearScores(gameID)
	if err != nil {
		return err
	}
	fmt.Printf("Removed %s scores from %s.\n", humanize.Comma(n), mode)
	return nil
}

// printTopScores prints the top 10 scores of one mode, or all of them
// with --all.
func printTopScores(store *storage.Store, mode string) error {
	gameID, err := resolveMode(mode)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, storage.DefaultScoreLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 't2048 play %s' to set the first high score!\n", mode)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10s  %s\n", i+1, humanize.Comma(int64(entry.Score)), dateStr)
	}

	fmt.Println()
	fmt.Printf("Best: %s\n", humanize.Comma(int64(scores[0].Score)))
	return nil
}

// printScoreSummary prints aggregated stats for every mode.
func printScoreSummary(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Printf("  %-16s  %6s  %10s  %10s  %s\n", "Mode", "Games", "Best", "Average", "Last played")
	fmt.Printf("  %-16s  %6s  %10s  %10s  %s\n", "----", "-----", "----", "-------", "-----------")

	for _, info := range registry.List() {
		s, ok := stats[info.ID]
		if !ok {
			fmt.Printf("  %-16s  %6d  %10s  %10s  %s\n", info.Title, 0, "-", "-", "never")
			continue
		}
		fmt.Printf("  %-16s  %6d  %10s  %10s  %s\n",
			info.Title,
			s.GamesCount,
			humanize.Comma(int64(s.HighScore)),
			humanize.Comma(int64(s.AvgScore)),
			humanize.Time(s.LastPlayed),
		)
	}
	return nil
}
