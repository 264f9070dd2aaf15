package knapsack

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/boundsearch/bnb"
)

// Node is a partial item selection. Items are decided in the instance's
// ratio order; depth counts the decided prefix. The node stores only its own
// decision and links to its parent for the rest.
type Node struct {
	inst   *Instance
	parent *Node
	depth  int
	take   bool // decision for inst.items[depth-1]

	weight float64
	value  float64
}

var _ bnb.Node[*Node] = (*Node)(nil)

// IsSingular reports whether every item has been decided.
func (n *Node) IsSingular() bool { return n.depth == len(n.inst.items) }

// IsFeasible reports whether the selected weight fits the capacity.
func (n *Node) IsFeasible() bool { return n.weight <= n.inst.capacity+feasTol }

// Objective is the selected value.
func (n *Node) Objective() float64 { return n.value }

// Branch decides the next item in ratio order and returns [out, in], so the
// engine explores "in" first.
func (n *Node) Branch() []*Node {
	it := n.inst.items[n.depth]
	out := &Node{
		inst:   n.inst,
		parent: n,
		depth:  n.depth + 1,
		take:   false,
		weight: n.weight,
		value:  n.value,
	}
	in := &Node{
		inst:   n.inst,
		parent: n,
		depth:  n.depth + 1,
		take:   true,
		weight: n.weight + it.Weight,
		value:  n.value + it.Value,
	}

	return []*Node{out, in}
}

// Bound is the LP-relaxation value: the current value plus the remaining
// items taken greedily in ratio order into the slack, the first misfit
// taken fractionally.
//
// Complexity: O(n − depth).
func (n *Node) Bound() float64 {
	var (
		b     = n.value
		slack = n.Slack()
	)
	for _, it := range n.inst.items[n.depth:] {
		if slack <= 0 {
			break
		}
		if it.Weight <= slack {
			b += it.Value
			slack -= it.Weight
			continue
		}
		b += it.Value * slack / it.Weight
		break
	}

	return b
}

// Slack is the capacity left after the selected items, including the
// feasibility tolerance so the bound covers every completion IsFeasible
// accepts.
func (n *Node) Slack() float64 { return n.inst.capacity + feasTol - n.weight }

// Weight is the total weight of the selected items.
func (n *Node) Weight() float64 { return n.weight }

// Value is the total value of the selected items.
func (n *Node) Value() float64 { return n.value }

// Depth is the number of decided items.
func (n *Node) Depth() int { return n.depth }

// decision is one fixed item.
type decision struct {
	id   int
	take bool
}

// decisions walks the parent chain and returns the fixed items by ID.
func (n *Node) decisions() []decision {
	out := make([]decision, 0, n.depth)
	for cur := n; cur != nil && cur.depth > 0; cur = cur.parent {
		out = append(out, decision{id: n.inst.items[cur.depth-1].ID, take: cur.take})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	return out
}

// Selected returns the IDs of the items put in the knapsack, ascending.
func (n *Node) Selected() []int {
	var ids []int
	for _, d := range n.decisions() {
		if d.take {
			ids = append(ids, d.id)
		}
	}

	return ids
}

// String lists decided items by ID, e.g. "(1 IN, 2 OUT)".
func (n *Node) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, d := range n.decisions() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(d.id))
		if d.take {
			sb.WriteString(" IN")
		} else {
			sb.WriteString(" OUT")
		}
	}
	sb.WriteByte(')')

	return sb.String()
}
