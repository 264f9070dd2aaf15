package tsp

import (
	"math"
	"sort"

	"github.com/katalvlaran/boundsearch/matrix"
)

// Instance is an immutable, validated TSP problem. It is safe to share
// across goroutines.
type Instance struct {
	n         int
	start     int
	symmetric bool

	// w is the dense weight buffer: w[u*n+v] = dist(u→v).
	w []float64

	minOut []float64 // cheapest finite edge leaving v
	minIn  []float64 // cheapest finite edge entering v

	// order[u] lists v ≠ u by ascending w[u→v], index tiebreak.
	order [][]int
}

// NewInstance validates dist and precomputes the bound tables.
//
// Errors: ErrDimensionMismatch, ErrNonSquare, ErrTooManyCities,
// ErrNonZeroDiagonal, ErrNegativeWeight, ErrAsymmetry, ErrStartOutOfRange,
// ErrIncompleteGraph.
//
// Complexity: O(n² log n).
func NewInstance(dist matrix.Matrix, opts Options) (*Instance, error) {
	n, err := validateDistMatrix(dist, opts.Symmetric, symTol)
	if err != nil {
		return nil, err
	}
	if err = validateStartVertex(n, opts.StartVertex); err != nil {
		return nil, err
	}

	inst := &Instance{
		n:         n,
		start:     opts.StartVertex,
		symmetric: opts.Symmetric,
		w:         make([]float64, n*n),
	}
	var (
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if x, err = dist.At(i, j); err != nil {
				return nil, ErrDimensionMismatch
			}
			inst.w[i*n+j] = x
		}
	}
	if err = inst.precomputeMinima(); err != nil {
		return nil, err
	}
	inst.buildNeighborOrder()

	return inst, nil
}

// at is the fast accessor into the dense weight buffer.
func (inst *Instance) at(u, v int) float64 { return inst.w[u*inst.n+v] }

// precomputeMinima fills minOut/minIn. A vertex with no
// finite edge in either direction makes every tour impossible.
func (inst *Instance) precomputeMinima() error {
	var (
		inf  = math.Inf(1)
		u, v int
		c    float64
	)
	inst.minOut = make([]float64, inst.n)
	inst.minIn = make([]float64, inst.n)
	for v = 0; v < inst.n; v++ {
		mo, mi := inf, inf
		for u = 0; u < inst.n; u++ {
			if u == v {
				continue
			}
			if c = inst.at(v, u); c < mo {
				mo = c
			}
			if c = inst.at(u, v); c < mi {
				mi = c
			}
		}
		if math.IsInf(mo, 0) || math.IsInf(mi, 0) {
			return ErrIncompleteGraph
		}
		inst.minOut[v] = mo
		inst.minIn[v] = mi
	}

	return nil
}

func (inst *Instance) buildNeighborOrder() {
	inst.order = make([][]int, inst.n)
	for u := 0; u < inst.n; u++ {
		row := make([]int, 0, inst.n-1)
		for v := 0; v < inst.n; v++ {
			if v != u {
				row = append(row, v)
			}
		}
		sort.SliceStable(row, func(a, b int) bool {
			return inst.at(u, row[a]) < inst.at(u, row[b])
		})
		inst.order[u] = row
	}
}

// Len is the number of cities.
func (inst *Instance) Len() int { return inst.n }

// Start is the tour's start vertex.
func (inst *Instance) Start() int { return inst.start }

// Symmetric reports whether the matrix was checked for symmetry.
func (inst *Instance) Symmetric() bool { return inst.symmetric }

// Distance returns dist(u→v); +Inf for a missing edge.
func (inst *Instance) Distance(u, v int) float64 { return inst.at(u, v) }

// Root returns the search root: the path holding only the start vertex.
func (inst *Instance) Root() *Node {
	return &Node{
		inst:    inst,
		city:    inst.start,
		depth:   1,
		visited: 1 << uint(inst.start),
	}
}
