// Package bnb_test provides small scripted nodes shared across the engine
// tests. treeNode spells out an explicit tree; pickNode is a tiny
// "choose a subset under a weight limit" problem with an admissible bound.
package bnb_test

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/boundsearch/bnb"
)

// calls counts Branch invocations per node name.
type calls map[string]int

// treeNode is a hand-written search tree node.
type treeNode struct {
	name     string
	leaf     bool
	feasible bool
	value    float64
	bound    float64
	children []*treeNode
	rec      calls
}

var _ bnb.Node[*treeNode] = (*treeNode)(nil)

func (n *treeNode) IsSingular() bool   { return n.leaf }
func (n *treeNode) IsFeasible() bool   { return n.feasible }
func (n *treeNode) Bound() float64     { return n.bound }
func (n *treeNode) Objective() float64 { return n.value }
func (n *treeNode) String() string     { return n.name }
func (n *treeNode) Branch() []*treeNode {
	n.rec[n.name]++

	return n.children
}

// tree builds nodes sharing a single call recorder.
type tree struct{ rec calls }

func newTree() *tree { return &tree{rec: calls{}} }

func (t *tree) leaf(name string, v float64) *treeNode {
	return &treeNode{name: name, leaf: true, feasible: true, value: v, bound: v, rec: t.rec}
}

func (t *tree) inner(name string, bound float64, kids ...*treeNode) *treeNode {
	return &treeNode{name: name, feasible: true, bound: bound, children: kids, rec: t.rec}
}

func (t *tree) infeasible(n *treeNode) *treeNode {
	n.feasible = false

	return n
}

// pickItem is one candidate of the pick problem.
type pickItem struct{ w, v float64 }

// pickNode decides items in index order; Branch returns [skip, take].
type pickNode struct {
	items  []pickItem
	limit  float64
	depth  int
	weight float64
	value  float64
	taken  []bool
}

var _ bnb.Node[*pickNode] = (*pickNode)(nil)

func newPick(items []pickItem, limit float64) *pickNode {
	return &pickNode{items: items, limit: limit}
}

func (n *pickNode) IsSingular() bool   { return n.depth == len(n.items) }
func (n *pickNode) IsFeasible() bool   { return n.weight <= n.limit }
func (n *pickNode) Objective() float64 { return n.value }

// Bound adds every remaining value: trivially admissible.
func (n *pickNode) Bound() float64 {
	b := n.value
	for _, it := range n.items[n.depth:] {
		b += it.v
	}

	return b
}

func (n *pickNode) Branch() []*pickNode {
	it := n.items[n.depth]
	skip := n.child(false, 0, 0)
	take := n.child(true, it.w, it.v)

	return []*pickNode{skip, take}
}

func (n *pickNode) child(take bool, w, v float64) *pickNode {
	taken := make([]bool, len(n.taken), len(n.taken)+1)
	copy(taken, n.taken)

	return &pickNode{
		items:  n.items,
		limit:  n.limit,
		depth:  n.depth + 1,
		weight: n.weight + w,
		value:  n.value + v,
		taken:  append(taken, take),
	}
}

func (n *pickNode) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, t := range n.taken {
		if i > 0 {
			sb.WriteString(", ")
		}
		if t {
			fmt.Fprintf(&sb, "%d IN", i)
		} else {
			fmt.Fprintf(&sb, "%d OUT", i)
		}
	}
	sb.WriteByte(')')

	return sb.String()
}

// bruteForcePick enumerates every subset and returns the best feasible value.
func bruteForcePick(items []pickItem, limit float64) float64 {
	var (
		best float64
		mask int
		i    int
	)
	for mask = 0; mask < 1<<len(items); mask++ {
		var w, v float64
		for i = range items {
			if mask&(1<<i) != 0 {
				w += items[i].w
				v += items[i].v
			}
		}
		if w <= limit && v > best {
			best = v
		}
	}

	return best
}

// randomPick returns n integer-valued items and a limit of half the total weight.
func randomPick(rng *rand.Rand, n int) ([]pickItem, float64) {
	items := make([]pickItem, n)
	var total float64
	for i := range items {
		items[i] = pickItem{w: float64(1 + rng.Intn(9)), v: float64(1 + rng.Intn(20))}
		total += items[i].w
	}

	return items, total / 2
}

// recordingTracer keeps every trace event in order.
type recordingTracer struct {
	visits   []string
	discards []string
}

func (r *recordingTracer) Visit(desc string) { r.visits = append(r.visits, desc) }

func (r *recordingTracer) Discard(desc string, reason bnb.DiscardReason) {
	r.discards = append(r.discards, desc+": "+reason.String())
}
