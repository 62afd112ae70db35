// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 play [campaign|endless]  - Play (mode picker when no mode is given)
//	t2048 serve                    - Start SSH server for remote play
//	t2048 scores [mode]            - Show high scores
//	t2048 modes                    - List game modes and saved games
//	t2048 sim                      - Autoplay many games and print statistics
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.t2048/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--size <n>            - Board size override
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSize       int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the board in one of four directions; equal tiles that collide merge
into their sum. Reach the level target in campaign mode, or keep going in
endless mode until the board locks up.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  scores   - View high scores
  modes    - List game modes and saved games
  sim      - Autoplay games and print statistics

Examples:
  t2048 play
  t2048 play endless --size 5
  t2048 play campaign --resume
  t2048 serve --ssh :2222
  t2048 sim --games 500 --strategy greedy`,
	SilenceUsage:      true,
	PersistentPreRunE: applyGameFlags,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = unpredictable)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.t2048/scores.db", "Path to scores and saved games database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Board size (0 = from config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(simCmd)
}

// applyGameFlags validates the game settings and hands them to the game
// package before any game is created.
func applyGameFlags(_ *cobra.Command, _ []string) error {
	if _, err := loadGameConfig(); err != nil {
		return err
	}
	t2048.SetConfigPath(flagConfig)
	t2048.SetDifficultyPreset(flagDifficulty)
	t2048.SetBoardSize(flagSize)
	return nil
}

// loadGameConfig resolves the game config the way a game does on Reset, but
// reports bad flags instead of falling back to defaults.
func loadGameConfig() (config.T2048Config, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.T2048Config{}, err
	}

	cfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		return cfg, err
	}
	if preset != "" {
		config.ApplyT2048Preset(&cfg, preset)
	}

	if flagSize != 0 {
		if flagSize < t2048.MinBoardSize {
			return cfg, fmt.Errorf("--size must be at least %d, got %d", t2048.MinBoardSize, flagSize)
		}
		cfg.Board.Size = flagSize
	}
	return cfg, nil
}
