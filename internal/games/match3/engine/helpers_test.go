package engine_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

// scriptedRand replays fixed draws, reduced modulo n.
type scriptedRand struct {
	draws []int
	next  int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.draws[r.next%len(r.draws)]
	r.next++
	return v % n
}

func newGenerator(t *testing.T, kinds int, seed int64) *engine.Generator {
	t.Helper()
	gen, err := engine.NewGenerator(engine.DefaultItemSet(kinds), rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return gen
}

// randomGrid fills cells with no regard for runs; emptyProb of them stay empty.
func randomGrid(t *testing.T, rng *rand.Rand, w, h, kinds int, emptyProb float64) *engine.Grid {
	t.Helper()
	g, err := engine.NewGrid(w, h, kinds)
	require.NoError(t, err)
	for _, c := range g.Coords() {
		if rng.Float64() < emptyProb {
			continue
		}
		item := engine.Item{Kind: engine.Kind(rng.Intn(kinds)), Value: 1}
		require.NoError(t, g.Set(c, engine.FilledCell(item)))
	}
	return g
}

func kindAt(t *testing.T, g *engine.Grid, c engine.Coord) engine.Kind {
	t.Helper()
	cell, err := g.At(c)
	require.NoError(t, err)
	require.True(t, cell.Filled, "cell %v should be filled", c)
	return cell.Item.Kind
}
