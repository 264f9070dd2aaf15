package casegen

import (
	"errors"
	"math"
	"math/rand"

	"github.com/samber/lo"

	"github.com/katalvlaran/boundsearch/knapsack"
	"github.com/katalvlaran/boundsearch/matrix"
)

// ErrSize is returned for a non-positive case size.
var ErrSize = errors.New("casegen: size must be positive")

const (
	maxWeight = 5.0
	minWeight = 0.1
	maxRatio  = 25.0
	maxDist   = 100.0
)

// Knapsack draws n items with IDs 1..n. Weights lie in [0.1, 5.1] and values
// in [0, 25·weight], both rounded to two decimals.
func Knapsack(n int, rng *rand.Rand) ([]knapsack.Item, error) {
	if n <= 0 {
		return nil, ErrSize
	}
	items := make([]knapsack.Item, n)
	for i := range items {
		w := round2(round2(rng.Float64()*maxWeight) + minWeight)
		items[i] = knapsack.Item{
			ID:     i + 1,
			Weight: w,
			Value:  round2(w * rng.Float64() * maxRatio),
		}
	}

	return items, nil
}

// Capacity returns fraction of the items' total weight, rounded to two
// decimals.
func Capacity(items []knapsack.Item, fraction float64) float64 {
	return round2(fraction * lo.SumBy(items, func(it knapsack.Item) float64 { return it.Weight }))
}

// SymmetricMatrix draws an n×n distance matrix with a zero diagonal and
// integer off-diagonal distances in [0, 100], mirrored across the diagonal.
func SymmetricMatrix(n int, rng *rand.Rand) (*matrix.Dense, error) {
	if n <= 0 {
		return nil, ErrSize
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := math.Round(rng.Float64() * maxDist)
			if err = m.Set(i, j, d); err != nil {
				return nil, err
			}
			if err = m.Set(j, i, d); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

func round2(x float64) float64 { return math.Round(x*100) / 100 }
