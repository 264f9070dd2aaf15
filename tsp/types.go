package tsp

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers test them with errors.Is.
var (
	// ErrNonSquare is returned when the distance matrix is not n×n.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrDimensionMismatch is returned for nil matrices, n < 2, NaN entries,
	// unreadable cells and malformed tours.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNonZeroDiagonal is returned when some dist[i][i] is not zero.
	ErrNonZeroDiagonal = errors.New("tsp: non-zero diagonal")

	// ErrNegativeWeight is returned for a negative off-diagonal distance.
	ErrNegativeWeight = errors.New("tsp: negative edge weight")

	// ErrAsymmetry is returned when Options.Symmetric is set and
	// |dist[i][j] − dist[j][i]| exceeds the tolerance.
	ErrAsymmetry = errors.New("tsp: distance matrix is not symmetric")

	// ErrIncompleteGraph is returned when some vertex has no finite
	// outgoing or incoming edge, or a tour uses a missing edge.
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

	// ErrStartOutOfRange is returned when the start vertex is not in [0, n).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrTooManyCities is returned when an instance exceeds MaxCities or an
	// exponential solver's own limit.
	ErrTooManyCities = errors.New("tsp: too many cities")

	// ErrNoTour is returned when no Hamiltonian cycle exists.
	ErrNoTour = errors.New("tsp: no hamiltonian cycle")

	// ErrUnsupportedAlgorithm is returned by Solve for an unknown Algo.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")
)

const (
	// MaxCities bounds the instance size; visited sets are uint64 bitsets.
	MaxCities = 64

	// MaxBruteForceCities bounds SolveBruteForce ((n−1)! permutations).
	MaxBruteForceCities = 12

	// MaxHeldKarpCities bounds SolveHeldKarp (n·2ⁿ table entries).
	MaxHeldKarpCities = 20

	// symTol is the structural tolerance for symmetry and diagonal checks.
	symTol = 1e-12

	roundScale = 1e9
)

// Options configures NewInstance.
type Options struct {
	// StartVertex is the city every tour starts and ends at.
	StartVertex int

	// Symmetric requests a symmetry check of the distance matrix.
	Symmetric bool
}

// DefaultOptions returns Options{StartVertex: 0, Symmetric: false}.
func DefaultOptions() Options {
	return Options{}
}

// Algo selects a solver in Solve.
type Algo int

const (
	BranchAndBound Algo = iota
	NearestNeighbor
	BruteForce
	HeldKarp
)

// String returns the solver name used in reports.
func (a Algo) String() string {
	switch a {
	case BranchAndBound:
		return "branch-and-bound"
	case NearestNeighbor:
		return "nearest-neighbor"
	case BruteForce:
		return "brute-force"
	case HeldKarp:
		return "held-karp"
	default:
		return fmt.Sprintf("Algo(%d)", int(a))
	}
}

// TSResult holds the outcome of a TSP solver.
type TSResult struct {
	// Tour lists the cities in visiting order, closed at the start:
	// len(Tour) == n+1 and Tour[0] == Tour[n] == start.
	Tour []int

	// Cost is the total tour length rounded to 1e-9.
	Cost float64
}
