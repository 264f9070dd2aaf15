package knapsack

import (
	"errors"
	"fmt"
)

var (
	// ErrNoItems is returned when an instance is built without WithItems.
	ErrNoItems = errors.New("knapsack: item set not configured")

	// ErrNoCapacity is returned when an instance is built without WithCapacity.
	ErrNoCapacity = errors.New("knapsack: capacity not configured")

	// ErrInvalidCapacity signals a negative, NaN or infinite capacity.
	ErrInvalidCapacity = errors.New("knapsack: capacity must be finite and non-negative")

	// ErrInvalidItem signals an item with a non-positive or non-finite weight,
	// or a negative or non-finite value.
	ErrInvalidItem = errors.New("knapsack: invalid item")

	// ErrDuplicateItem signals two items sharing an ID.
	ErrDuplicateItem = errors.New("knapsack: duplicate item id")

	// ErrTooManyItems is returned by Exhaustive above MaxExhaustiveItems.
	ErrTooManyItems = errors.New("knapsack: too many items for exhaustive search")

	// ErrUnsupportedAlgorithm is returned by Solve for an unknown Algo.
	ErrUnsupportedAlgorithm = errors.New("knapsack: unsupported algorithm")
)

// MaxExhaustiveItems caps Exhaustive at 2³⁰ subsets.
const MaxExhaustiveItems = 30

// feasTol absorbs floating-point drift when summing fractional weights.
const feasTol = 1e-9

// Item is one candidate for the knapsack.
type Item struct {
	ID     int     `yaml:"id"`
	Weight float64 `yaml:"weight"`
	Value  float64 `yaml:"value"`
}

// Ratio is the value per unit of weight.
func (it Item) Ratio() float64 { return it.Value / it.Weight }

// Algo selects a solver in Solve.
type Algo int

const (
	// BranchAndBound runs the exact bnb search.
	BranchAndBound Algo = iota
	// Greedy runs the ratio-greedy heuristic.
	Greedy
	// Exhaustive enumerates every subset.
	Exhaustive
)

// String returns the algorithm name used in reports.
func (a Algo) String() string {
	switch a {
	case BranchAndBound:
		return "branch-and-bound"
	case Greedy:
		return "greedy"
	case Exhaustive:
		return "exhaustive"
	default:
		return fmt.Sprintf("Algo(%d)", int(a))
	}
}

// Solution is a selected item set.
type Solution struct {
	// Items holds the selected IDs in ascending order.
	Items []int

	// Value and Weight are the totals of the selection.
	Value  float64
	Weight float64
}
