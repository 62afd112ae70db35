package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagLevel  int
	flagResume bool
)

var playCmd = &cobra.Command{
	Use:   "play [campaign|endless]",
	Short: "Play 2048",
	Long: `Start playing 2048. Without a mode, a menu lets you pick the mode,
a campaign level, a saved game or the high score table.

Controls:
  Arrows/WASD/HJKL - Slide
  P/Esc            - Pause
  B/Esc            - Back to menu (while paused or after game over)
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit (an unfinished game is saved)

Difficulty options (endless mode raises the chance of a 4 as you score):
  easy   - Start at the base 4 chance, progresses to max
  normal - Start 30% of the way, progresses to max
  hard   - Start 70% of the way, progresses to max
  fixed  - No progression

Examples:
  t2048 play
  t2048 play campaign --level 4
  t2048 play endless --difficulty hard
  t2048 play endless --resume
  t2048 play --config ./my-2048.yaml --size 5`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"campaign", "endless"},
	Run:       runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign start level (1-10)")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Continue the saved game for the mode")
}

func runPlay(_ *cobra.Command, args []string) {
	cfg := runtimeConfig()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var runErr error
	if len(args) == 1 {
		runErr = playDirect(args[0], store, cfg)
	} else {
		runErr = playMenu(store, cfg)
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// playDirect starts the named mode without the menu.
func playDirect(mode string, store *storage.Store, cfg core.RuntimeConfig) error {
	gameID, err := resolveMode(mode)
	if err != nil {
		return err
	}

	sel := tui.T2048Selection{
		Mode:   tui.T2048ModeCampaign,
		Level:  flagLevel,
		Resume: flagResume,
	}
	if gameID == tui.T2048ModeEndless.GameID() {
		sel.Mode = tui.T2048ModeEndless
	}

	_, err = playSelection(sel, store, cfg)
	return err
}

// playMenu loops between the mode selector, the scoreboard and games.
func playMenu(store *storage.Store, cfg core.RuntimeConfig) error {
	for {
		var saved []storage.SavedGame
		if store != nil {
			// A listing failure only hides the Continue entries
			saved, _ = store.SavedGames(tui.LocalPlayer)
		}

		sel, updatedCfg, err := tui.RunT2048ModeSelector(cfg, saved)
		if err != nil {
			return err
		}
		cfg = updatedCfg

		// User pressed back or quit
		if sel == nil {
			return nil
		}

		if sel.Scores {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		back, err := playSelection(*sel, store, cfg)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}

// playSelection runs one game and reports whether the player went back to
// the menu.
func playSelection(sel tui.T2048Selection, store *storage.Store, cfg core.RuntimeConfig) (bool, error) {
	game, err := registry.Create(sel.Mode.GameID())
	if err != nil {
		return false, err
	}
	if g, ok := game.(*t2048.Game); ok && sel.Level > 0 {
		g.StartAtLevel(sel.Level)
	}

	return tui.Run(game, store, cfg, tui.ModelOptions{
		Player:    tui.LocalPlayer,
		Resume:    sel.Resume,
		AllowBack: true,
	})
}
