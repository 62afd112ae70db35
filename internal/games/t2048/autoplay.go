package t2048

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Strategy picks the next direction for a board. ok is false when no
// direction changes the board.
type Strategy func(e *Engine, b Board) (dir Direction, ok bool)

// cornerOrder keeps the largest tiles in the bottom-left corner.
var cornerOrder = []Direction{DirDown, DirLeft, DirRight, DirUp}

// LegalMoves returns the directions that change the board.
func (e *Engine) LegalMoves(b Board) []Direction {
	return lo.Filter(Directions, func(d Direction, _ int) bool {
		return e.Move(b, d).Moved
	})
}

// CornerStrategy plays the first legal direction of down, left, right, up.
func CornerStrategy() Strategy {
	return func(e *Engine, b Board) (Direction, bool) {
		legal := e.LegalMoves(b)
		for _, d := range cornerOrder {
			if slices.Contains(legal, d) {
				return d, true
			}
		}
		return 0, false
	}
}

// GreedyStrategy plays the legal direction with the largest immediate score
// gain, breaking ties in corner order.
func GreedyStrategy() Strategy {
	return func(e *Engine, b Board) (Direction, bool) {
		best, bestGain, found := Direction(0), -1, false
		for _, d := range cornerOrder {
			mr := e.Move(b, d)
			if mr.Moved && mr.ScoreGain > bestGain {
				best, bestGain, found = d, mr.ScoreGain, true
			}
		}
		return best, found
	}
}

// RandomStrategy plays a uniformly chosen legal direction.
func RandomStrategy(src Source) Strategy {
	return func(e *Engine, b Board) (Direction, bool) {
		legal := e.LegalMoves(b)
		if len(legal) == 0 {
			return 0, false
		}
		return legal[src.Intn(len(legal))], true
	}
}

// StrategyNames lists the names accepted by ParseStrategy.
var StrategyNames = []string{"corner", "greedy", "random"}

// ParseStrategy returns the named strategy. src is only used by "random".
func ParseStrategy(name string, src Source) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "corner":
		return CornerStrategy(), nil
	case "greedy":
		return GreedyStrategy(), nil
	case "random":
		return RandomStrategy(src), nil
	}
	return nil, fmt.Errorf("t2048: unknown strategy %q (want one of %s)", name, strings.Join(StrategyNames, ", "))
}

// Autoplay plays a fresh game with the strategy until it ends.
// maxMoves <= 0 means no limit.
func (e *Engine) Autoplay(size int, s Strategy, maxMoves int) GameState {
	state := e.InitializeGameState(size)
	for !state.IsGameOver {
		if maxMoves > 0 && state.MoveCount >= maxMoves {
			break
		}
		dir, ok := s(e, state.Tiles)
		if !ok {
			state.IsGameOver = IsGameOver(state.Tiles)
			break
		}
		state = state.Apply(e.PlayMove(state.Tiles, dir))
	}
	return state
}

// SimSummary aggregates the outcome of many autoplayed games.
type SimSummary struct {
	Games     int
	Wins      int // games whose max tile reached WinValue
	MeanScore float64
	BestScore int
	MeanMoves float64
	MaxTiles  map[int]int // max tile value -> games that ended on it
}

// Summarize aggregates final game states.
func Summarize(states []GameState) SimSummary {
	if len(states) == 0 {
		return SimSummary{MaxTiles: map[int]int{}}
	}

	n := float64(len(states))
	// IsWon only describes the last board, so a 2048 merged away is still a win
	wins := lo.CountBy(states, func(s GameState) bool { return MaxTile(s.Tiles) >= WinValue })
	totalScore := lo.SumBy(states, func(s GameState) int { return s.Score })
	totalMoves := lo.SumBy(states, func(s GameState) int { return s.MoveCount })
	best := lo.MaxBy(states, func(a, b GameState) bool { return a.Score > b.Score })

	return SimSummary{
		Games:     len(states),
		Wins:      wins,
		MeanScore: float64(totalScore) / n,
		BestScore: best.Score,
		MeanMoves: float64(totalMoves) / n,
		MaxTiles: lo.CountValuesBy(states, func(s GameState) int {
			return MaxTile(s.Tiles)
		}),
	}
}

// SortedMaxTiles returns the max-tile values of the summary in ascending order.
func (s SimSummary) SortedMaxTiles() []int {
	keys := lo.Keys(s.MaxTiles)
	slices.Sort(keys)
	return keys
}
