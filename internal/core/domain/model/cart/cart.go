package cart

import (
	"digisales/internal/core/domain/model/kernel"
	"digisales/internal/core/domain/model/menu"
)

// Line is one row of the aggregated cart view: a menu item together with
// the number of raw occurrences of its stock code in the cart.
type Line struct {
	Item  menu.Item
	Count int
}

// Total returns the line total, count times unit price.
func (l Line) Total() kernel.Money {
	return l.Item.Price().MulInt(l.Count)
}

// Cart is an ordered multiset of menu items: the user's currently-unsent,
// in-progress selection. Adding the same item twice keeps two raw entries;
// quantity only exists in the aggregated view.
//
// Invariants:
//   - Aggregate() quantity for any stock code equals adds minus removes for
//     that code and is never negative.
//   - Total() over raw occurrences equals the sum of count times price over
//     the aggregated view, regardless of insertion order.
//
// Cart is owned by a single logical actor (the register view); it is not
// safe for concurrent mutation.
type Cart struct {
	items []menu.Item
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add appends one occurrence of the item to the cart.
func (c *Cart) Add(item menu.Item) {
	c.items = append(c.items, item)
}

// RemoveOneOccurrence removes exactly one entry with the given stock code,
// the first match in insertion order. Removing from an empty cart or a
// missing code is a no-op; the return value reports whether an entry was
// removed.
func (c *Cart) RemoveOneOccurrence(stockID string) bool {
	for i, item := range c.items {
		if item.StockID() == stockID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Len returns the number of raw occurrences in the cart.
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns a copy of the raw cart entries in insertion order.
// The copy doubles as the cart's serialization snapshot.
func (c *Cart) Items() []menu.Item {
	copied := make([]menu.Item, len(c.items))
	copy(copied, c.items)
	return copied
}

// RestoreSnapshot replaces the cart contents with the given raw entries.
// Used when resuming a held order: one entry per unit of quantity, so that
// RemoveOneOccurrence keeps working after the restore.
func (c *Cart) RestoreSnapshot(items []menu.Item) {
	c.items = make([]menu.Item, len(items))
	copy(c.items, items)
}

// Aggregate collapses the raw entries into one line per distinct stock code,
// in first-seen order. The view is recomputed on every call in a single pass
// with no side effects on the cart.
func (c *Cart) Aggregate() []Line {
	return AggregateItems(c.items)
}

// Total sums the unit prices of all raw occurrences.
// By construction this equals the sum of count times price over Aggregate().
func (c *Cart) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range c.items {
		total = total.Add(item.Price())
	}
	return total
}

// AggregateItems collapses raw item occurrences into quantity-bearing lines,
// keyed by stock code in first-seen order. Aggregation is commutative: any
// permutation of the input yields the same counts and totals.
func AggregateItems(items []menu.Item) []Line {
	index := make(map[string]int, len(items))
	lines := make([]Line, 0, len(items))
	for _, item := range items {
		if i, ok := index[item.StockID()]; ok {
			lines[i].Count++
			continue
		}
		index[item.StockID()] = len(lines)
		lines = append(lines, Line{Item: item, Count: 1})
	}
	return lines
}
