package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/boundsearch/bnb"
)

// Node is a partial tour starting at the instance's start vertex. It stores
// the last city only; earlier cities are reached through parent. Branching
// costs O(1) per child beyond the neighbour scan.
type Node struct {
	inst    *Instance
	parent  *Node
	city    int    // last city on the path
	depth   int    // cities on the path, ≥ 1
	visited uint64 // bit v set when v is on the path
	cost    float64
}

var _ bnb.Node[*Node] = (*Node)(nil)

// IsSingular reports whether every city is on the path.
func (n *Node) IsSingular() bool { return n.depth == n.inst.n }

// IsFeasible is false once the path used a missing edge, or when a complete
// path cannot close back to the start.
func (n *Node) IsFeasible() bool {
	if math.IsInf(n.cost, 1) {
		return false
	}
	if n.IsSingular() {
		return !math.IsInf(n.closing(), 1)
	}

	return true
}

// Branch extends the path by each unvisited city. Children come in
// descending edge weight from the last city so the engine's LIFO stack pops
// the nearest city first.
func (n *Node) Branch() []*Node {
	var (
		order = n.inst.order[n.city]
		kids  = make([]*Node, 0, n.inst.n-n.depth)
	)
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		if n.visited&(1<<uint(v)) != 0 {
			continue
		}
		kids = append(kids, &Node{
			inst:    n.inst,
			parent:  n,
			city:    v,
			depth:   n.depth + 1,
			visited: n.visited | 1<<uint(v),
			cost:    n.cost + n.inst.at(n.city, v),
		})
	}

	return kids
}

// Bound is the negated degree-1 relaxation: the path cost plus the larger of
// the cheapest open out-edges (unvisited cities and the last city) and the
// cheapest open in-edges (unvisited cities and the start). A singular node
// is bounded by its exact objective.
//
// Complexity: O(n).
func (n *Node) Bound() float64 {
	if n.IsSingular() {
		return n.Objective()
	}
	var (
		inst   = n.inst
		sumOut = inst.minOut[n.city]
		sumIn  = inst.minIn[inst.start]
	)
	for v := 0; v < inst.n; v++ {
		if n.visited&(1<<uint(v)) != 0 {
			continue
		}
		sumOut += inst.minOut[v]
		sumIn += inst.minIn[v]
	}

	return -(n.cost + math.Max(sumOut, sumIn))
}

// Objective is the negated closed tour length of a singular node. Partial
// paths have no tour and report −Inf.
func (n *Node) Objective() float64 {
	if !n.IsSingular() {
		return math.Inf(-1)
	}

	return -(n.cost + n.closing())
}

// Cost is the length of the open path.
func (n *Node) Cost() float64 { return n.cost }

// Depth is the number of cities on the path.
func (n *Node) Depth() int { return n.depth }

// Last is the most recently added city.
func (n *Node) Last() int { return n.city }

// Path returns the cities in visiting order, start first.
//
// Complexity: O(depth).
func (n *Node) Path() []int {
	path := make([]int, n.depth)
	for cur := n; cur != nil; cur = cur.parent {
		path[cur.depth-1] = cur.city
	}

	return path
}

// Tour returns the closed tour (path plus start) of a singular node, or nil.
func (n *Node) Tour() []int {
	if !n.IsSingular() {
		return nil
	}

	return append(n.Path(), n.inst.start)
}

// String prints the path, e.g. "[0 2 1]".
func (n *Node) String() string { return fmt.Sprint(n.Path()) }

// closing is the edge from the last city back to the start.
func (n *Node) closing() float64 { return n.inst.at(n.city, n.inst.start) }
