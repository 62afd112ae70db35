package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List game modes and saved games",
	Long:  `Shows the registered game modes and any unfinished local games.`,
	Run:   runModes,
}

// modeAliases maps the short CLI names to registry ids.
var modeAliases = map[string]string{
	"campaign": "2048",
	"endless":  "2048_endless",
}

// resolveMode accepts a short mode name or a registry id.
func resolveMode(mode string) (string, error) {
	if id, ok := modeAliases[mode]; ok {
		return id, nil
	}
	if registry.Exists(mode) {
		return mode, nil
	}
	return "", fmt.Errorf("unknown mode %q (run 't2048 modes')", mode)
}

func runModes(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	fmt.Printf("  %-10s  %-14s  %s\n", "Name", "ID", "Title")
	fmt.Printf("  %-10s  %-14s  %s\n", "----", "--", "-----")
	for _, g := range games {
		name, ok := lo.FindKey(modeAliases, g.ID)
		if !ok {
			name = g.ID
		}
		fmt.Printf("  %-10s  %-14s  %s\n", name, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play <name>' to play a mode.")

	if cfg, source, err := config.LoadT2048WithSource(flagConfig); err == nil {
		fmt.Println()
		fmt.Printf("Config: %s (%dx%d board)\n", source, cfg.Board.Size, cfg.Board.Size)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return
	}
	defer store.Close()

	saved, err := store.SavedGames(tui.LocalPlayer)
	if err != nil || len(saved) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Saved games:")
	for _, s := range saved {
		fmt.Printf("  %-14s  level %-2d  saved %s\n", s.GameID, s.Level, humanize.Time(s.SavedAt))
	}
	fmt.Println()
	fmt.Println("Run 't2048 play <name> --resume' to continue.")
}
