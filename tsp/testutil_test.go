package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boundsearch/matrix"
	"github.com/katalvlaran/boundsearch/tsp"
)

var inf = math.Inf(1)

// square4 has the unique optimal tour 0→1→2→3→0 of length 10; the other two
// undirected tours both cost 16.
var square4 = [][]float64{
	{0, 1, 5, 3},
	{1, 0, 2, 6},
	{5, 2, 0, 4},
	{3, 6, 4, 0},
}

// noCycle gives every vertex finite in- and out-edges, yet 1 and 2 can only
// reach 0, so no Hamiltonian cycle exists.
var noCycle = [][]float64{
	{0, 1, 1},
	{1, 0, inf},
	{1, inf, 0},
}

// sixCities is the first benchmark matrix; its optimal tour costs 76.
var sixCities = [][]float64{
	{0, 12, 29, 22, 13, 24},
	{12, 0, 19, 3, 25, 6},
	{29, 19, 0, 21, 23, 28},
	{22, 3, 21, 0, 4, 5},
	{13, 25, 23, 4, 0, 16},
	{24, 6, 28, 5, 16, 0},
}

func dense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func mustInstance(t testing.TB, rows [][]float64, opts tsp.Options) *tsp.Instance {
	t.Helper()
	inst, err := tsp.NewInstance(dense(t, rows), opts)
	require.NoError(t, err)

	return inst
}

// randomRows draws integer distances in [1, 100]. With symmetric set the
// matrix mirrors its upper triangle. Each off-diagonal edge is missing with
// probability holes.
func randomRows(rng *rand.Rand, n int, symmetric bool, holes float64) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || (symmetric && j < i) {
				continue
			}
			w := float64(1 + rng.Intn(100))
			if rng.Float64() < holes {
				w = inf
			}
			rows[i][j] = w
			if symmetric {
				rows[j][i] = w
			}
		}
	}

	return rows
}
