package config

// DifficultyManager turns score or move progress into a difficulty level
// in [0, 1] and the four-spawn chance that goes with it.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a manager. InitialLevel is clamped to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, initialLevel: clamp01(cfg.InitialLevel)}
}

// IsEnabled reports whether the level moves with progress.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone
}

// Level interpolates from the initial level to 1 as score or moves, per the
// progression type, approach MaxAt. Disabled managers stay at the initial
// level.
func (d *DifficultyManager) Level(score, moves int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var done int
	switch d.cfg.Progression.Type {
	case ProgressionScore:
		done = score
	case ProgressionMoves:
		done = moves
	default:
		return d.initialLevel
	}

	progress := clamp01(float64(done) / float64(max(d.cfg.Progression.MaxAt, 1)))
	return d.initialLevel + progress*(1-d.initialLevel)
}

// FourProbability moves the four-spawn chance linearly from base at level 0
// to the configured maximum at level 1. It never drops below base.
func (d *DifficultyManager) FourProbability(base float64, score, moves int) float64 {
	if !d.cfg.Enabled {
		return base
	}
	top := max(base, d.cfg.Scaling.FourProbabilityMax)
	return clamp01(base + d.Level(score, moves)*(top-base))
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
