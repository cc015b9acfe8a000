// Package rewards holds the versioned catalog of reward items and the
// weighted draw used for secondary rewards. A true cumulative-weight
// partition, so sub-1% weights are represented exactly.
package rewards

import "fmt"

// DrawFunc returns a uniform value in [0, n).
type DrawFunc func(n int64) int64

type Item struct {
	ID     int64
	Name   string
	Rarity string
	Weight int64
	Value  int64
}

// Pool is an immutable snapshot of the reward catalog.
type Pool struct {
	version string
	items   []Item
	total   int64
}

func NewPool(version string, items []Item) (*Pool, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("reward pool %q is empty", version)
	}
	p := &Pool{version: version, items: make([]Item, len(items))}
	copy(p.items, items)
	for _, it := range p.items {
		if it.Weight <= 0 {
			return nil, fmt.Errorf("reward pool %q: item %d has non-positive weight", version, it.ID)
		}
		p.total += it.Weight
	}
	return p, nil
}

func (p *Pool) Version() string { return p.version }

func (p *Pool) Items() []Item {
	out := make([]Item, len(p.items))
	copy(out, p.items)
	return out
}

// Draw picks one item by cumulative weight.
func (p *Pool) Draw(draw DrawFunc) Item {
	n := draw(p.total)
	var cum int64
	for _, it := range p.items {
		cum += it.Weight
		if n < cum {
			return it
		}
	}
	return p.items[len(p.items)-1]
}

func (p *Pool) Item(id int64) (Item, bool) {
	for _, it := range p.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
