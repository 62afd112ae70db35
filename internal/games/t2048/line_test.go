package t2048

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompress(t *testing.T) {
	f := NewTileFactoryWithIDs(SequentialIDs("c"))
	line := lineOf(f, 0, 2, 0, 4)

	out := Compress(line)

	assert.Equal(t, []int{2, 4, 0, 0}, lineValues(out))
	assert.Equal(t, line[1].ID, out[0].ID, "identity of the first tile")
	assert.Equal(t, line[3].ID, out[1].ID, "identity of the second tile")
	assert.Equal(t, []int{0, 2, 0, 4}, lineValues(line), "input must not change")
}

func TestCompressIdempotent(t *testing.T) {
	f := NewTileFactoryWithIDs(SequentialIDs("c"))
	rng := rand.New(rand.NewSource(7))

	for range 200 {
		values := make([]int, 2+rng.Intn(6))
		for i := range values {
			if rng.Intn(2) == 0 {
				values[i] = 2 << rng.Intn(4)
			}
		}
		once := Compress(lineOf(f, values...))
		twice := Compress(once)
		require.Equal(t, once, twice, "compress(compress(%v))", values)

		empties := 0
		for _, v := range values {
			if v == 0 {
				empties++
			}
		}
		gotEmpties := 0
		for _, tile := range once {
			if tile.IsEmpty() {
				gotEmpties++
			}
		}
		require.Equal(t, empties, gotEmpties, "empty slots of %v", values)
	}
}

func TestMergeLeavesConsumedSlotEmpty(t *testing.T) {
	e := newTestEngine()
	res := e.Merge(lineOf(e.Tiles(), 2, 2, 2, 2))

	assert.Equal(t, []int{4, 0, 4, 0}, lineValues(res.Line))
	assert.Equal(t, 8, res.ScoreGain)
	assert.Len(t, res.Merged, 2)
}

func TestMergeNeverMergesTwice(t *testing.T) {
	e := newTestEngine()
	res := e.TransformLine(lineOf(e.Tiles(), 2, 2, 2, 2))

	assert.Equal(t, []int{4, 4, 0, 0}, lineValues(res.Line))
	assert.Equal(t, 8, res.ScoreGain, "not [8] with gain 16")
}

func TestMergedTilesGetFreshIDs(t *testing.T) {
	e := newTestEngine()
	line := lineOf(e.Tiles(), 4, 4, 2, 0)
	res := e.TransformLine(line)

	require.Len(t, res.Merged, 1)
	for _, in := range line {
		assert.NotEqual(t, in.ID, res.Merged[0])
	}
	assert.Equal(t, res.Merged[0], res.Line[0].ID)
	assert.Equal(t, line[2].ID, res.Line[1].ID, "unmerged tile keeps its id")
}

// Merge preserves the value sum, never adds tiles, and scores exactly the
// values of the tiles it creates.
func TestMergeAccounting(t *testing.T) {
	e := newTestEngine()
	rng := rand.New(rand.NewSource(99))

	sum := func(line []Tile) int {
		total := 0
		for _, tile := range line {
			total += tile.Value
		}
		return total
	}

	for range 500 {
		values := make([]int, 4)
		for i := range values {
			if rng.Intn(3) > 0 {
				values[i] = 2 << rng.Intn(3)
			}
		}
		in := Compress(lineOf(e.Tiles(), values...))
		res := e.Merge(in)

		require.Equal(t, sum(in), sum(res.Line), "sum for %v", values)
		require.LessOrEqual(t, TileCount(Board{size: 1, cells: res.Line}), TileCount(Board{size: 1, cells: in}))

		created := map[TileID]int{}
		for _, tile := range res.Line {
			created[tile.ID] = tile.Value
		}
		gain := 0
		for _, id := range res.Merged {
			gain += created[id]
		}
		require.Equal(t, gain, res.ScoreGain, "gain for %v", values)
	}
}
