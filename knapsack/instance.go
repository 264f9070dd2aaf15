package knapsack

import (
	"fmt"
	"math"
	"sort"
)

// Instance is an immutable knapsack problem: an item set and a capacity.
// Items are kept in branching order (value/weight ratio descending, ID
// ascending on ties). An Instance is safe for concurrent use.
type Instance struct {
	items    []Item
	index    map[int]int // ID -> position in items
	capacity float64
}

// InstanceOption configures NewInstance.
type InstanceOption func(*instanceConfig)

type instanceConfig struct {
	items       []Item
	hasItems    bool
	capacity    float64
	hasCapacity bool
}

// WithItems sets the item set. An empty set is valid; omitting the option is not.
func WithItems(items []Item) InstanceOption {
	return func(c *instanceConfig) {
		c.items = items
		c.hasItems = true
	}
}

// WithCapacity sets the weight limit.
func WithCapacity(capacity float64) InstanceOption {
	return func(c *instanceConfig) {
		c.capacity = capacity
		c.hasCapacity = true
	}
}

// NewInstance validates the configuration and builds an Instance.
//
// Errors, in check order: ErrNoItems, ErrNoCapacity, ErrInvalidCapacity,
// ErrInvalidItem, ErrDuplicateItem.
//
// Complexity: O(n log n).
func NewInstance(opts ...InstanceOption) (*Instance, error) {
	var cfg instanceConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.hasItems {
		return nil, ErrNoItems
	}
	if !cfg.hasCapacity {
		return nil, ErrNoCapacity
	}
	if cfg.capacity < 0 || math.IsNaN(cfg.capacity) || math.IsInf(cfg.capacity, 0) {
		return nil, fmt.Errorf("capacity %v: %w", cfg.capacity, ErrInvalidCapacity)
	}

	inst := &Instance{
		items:    make([]Item, len(cfg.items)),
		index:    make(map[int]int, len(cfg.items)),
		capacity: cfg.capacity,
	}
	copy(inst.items, cfg.items)

	seen := make(map[int]struct{}, len(cfg.items))
	for _, it := range inst.items {
		if err := validateItem(it); err != nil {
			return nil, err
		}
		if _, ok := seen[it.ID]; ok {
			return nil, fmt.Errorf("item %d: %w", it.ID, ErrDuplicateItem)
		}
		seen[it.ID] = struct{}{}
	}

	sort.SliceStable(inst.items, func(i, j int) bool {
		ri, rj := inst.items[i].Ratio(), inst.items[j].Ratio()
		if ri == rj {
			return inst.items[i].ID < inst.items[j].ID
		}

		return ri > rj
	})
	for i, it := range inst.items {
		inst.index[it.ID] = i
	}

	return inst, nil
}

func validateItem(it Item) error {
	if !(it.Weight > 0) || math.IsInf(it.Weight, 0) {
		return fmt.Errorf("item %d: weight %v: %w", it.ID, it.Weight, ErrInvalidItem)
	}
	if !(it.Value >= 0) || math.IsInf(it.Value, 0) {
		return fmt.Errorf("item %d: value %v: %w", it.ID, it.Value, ErrInvalidItem)
	}

	return nil
}

// Capacity returns the weight limit.
func (inst *Instance) Capacity() float64 { return inst.capacity }

// Len returns the number of items.
func (inst *Instance) Len() int { return len(inst.items) }

// Items returns a copy of the items in branching order.
func (inst *Instance) Items() []Item {
	out := make([]Item, len(inst.items))
	copy(out, inst.items)

	return out
}

// Item returns the item with the given ID.
func (inst *Instance) Item(id int) (Item, bool) {
	i, ok := inst.index[id]
	if !ok {
		return Item{}, false
	}

	return inst.items[i], true
}

// Root returns the search root: every item undecided.
func (inst *Instance) Root() *Node {
	return &Node{inst: inst}
}
