package t2048

// highlight marks a cell that changed in the last move. It expires after a
// fixed number of ticks or as soon as a different tile occupies the cell.
type highlight struct {
	pos   Position
	id    TileID
	kind  HintKind
	ticks int // remaining
	total int
}

// startHighlights replaces the active highlights with the hints of a move.
func (g *Game) startHighlights(hints []RenderHint) {
	g.highlights = g.highlights[:0]
	for _, h := range hints {
		total := g.cfg.Animation.MergeTicks
		if h.Kind == HintNew {
			total = g.cfg.Animation.SpawnTicks
		}
		if total <= 0 {
			continue
		}
		g.highlights = append(g.highlights, highlight{
			pos:   Position{Row: h.Row, Col: h.Col},
			id:    h.ID,
			kind:  h.Kind,
			ticks: total,
			total: total,
		})
	}
}

// updateHighlights advances every highlight by one tick.
func (g *Game) updateHighlights() {
	live := g.highlights[:0]
	for _, h := range g.highlights {
		h.ticks--
		if h.ticks > 0 {
			live = append(live, h)
		}
	}
	g.highlights = live
}

// highlightAt reports the active highlight for a cell, if any.
func (g *Game) highlightAt(row, col int) (highlight, bool) {
	for _, h := range g.highlights {
		if h.pos.Row != row || h.pos.Col != col {
			continue
		}
		if g.state.Tiles.At(row, col).ID != h.id {
			return highlight{}, false
		}
		return h, true
	}
	return highlight{}, false
}

// progress returns how far the highlight has run, 0.0 → 1.0.
func (h highlight) progress() float64 {
	if h.total <= 0 {
		return 1
	}
	return easeOutQuad(float64(h.total-h.ticks) / float64(h.total))
}

// spawnHints marks every tile of a freshly initialized board as new.
func spawnHints(b Board) []RenderHint {
	occupied := b.OccupiedPositions()
	hints := make([]RenderHint, 0, len(occupied))
	for _, p := range occupied {
		hints = append(hints, RenderHint{
			Row:  p.Row,
			Col:  p.Col,
			ID:   b.At(p.Row, p.Col).ID,
			Kind: HintNew,
		})
	}
	return hints
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}
