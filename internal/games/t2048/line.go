package t2048

// LineResult is the outcome of processing one row or column.
type LineResult struct {
	Line      []Tile
	ScoreGain int
	Merged    []TileID // ids of tiles created by merging
}

// Compress removes empty slots while keeping tile order, then pads with
// empty slots back to the original length.
func Compress(line []Tile) []Tile {
	out := make([]Tile, len(line))
	n := 0
	for _, t := range line {
		if t.IsEmpty() {
			continue
		}
		out[n] = t
		n++
	}
	return out
}

// Merge combines equal neighbors of a compressed line, scanning toward
// index 0. A merged tile is never merged again in the same pass and the
// consumed slot stays empty.
func (e *Engine) Merge(line []Tile) LineResult {
	res := LineResult{Line: make([]Tile, 0, len(line))}
	justMerged := make([]bool, 0, len(line))

	for _, cur := range line {
		if cur.IsEmpty() {
			res.Line = append(res.Line, Tile{})
			justMerged = append(justMerged, false)
			continue
		}

		last := len(res.Line) - 1
		if last >= 0 && !justMerged[last] && res.Line[last].Value == cur.Value {
			merged := e.tiles.NewTile(cur.Value * 2)
			res.Line[last] = merged
			justMerged[last] = true
			res.ScoreGain += merged.Value
			res.Merged = append(res.Merged, merged.ID)

			res.Line = append(res.Line, Tile{})
			justMerged = append(justMerged, false)
			continue
		}

		res.Line = append(res.Line, cur)
		justMerged = append(justMerged, false)
	}

	return res
}

// TransformLine slides a line toward index 0: compress, merge, compress.
func (e *Engine) TransformLine(line []Tile) LineResult {
	res := e.Merge(Compress(line))
	res.Line = Compress(res.Line)
	return res
}
