package menu

import "strings"

// Category is a (id, name) pair derived from catalog items.
type Category struct {
	ID   string
	Name string
}

// Catalog is an immutable snapshot of the orderable menu, fetched once per
// view from the backend. Lookups and searches never mutate the snapshot;
// a stale catalog is replaced wholesale by a fresh fetch.
type Catalog struct {
	items []Item
}

// NewCatalog creates a catalog snapshot from fetched items.
// The item order of the fetch is preserved.
func NewCatalog(items []Item) Catalog {
	copied := make([]Item, len(items))
	copy(copied, items)
	return Catalog{items: copied}
}

// Items returns a copy of all catalog items.
func (c Catalog) Items() []Item {
	copied := make([]Item, len(c.items))
	copy(copied, c.items)
	return copied
}

// Len returns the number of items in the catalog.
func (c Catalog) Len() int {
	return len(c.items)
}

// ItemByStockID finds an item by its stock code.
func (c Catalog) ItemByStockID(stockID string) (Item, bool) {
	for _, item := range c.items {
		if item.stockID == stockID {
			return item, true
		}
	}
	return Item{}, false
}

// ItemsInCategory returns all items with the given category id,
// in catalog order.
func (c Catalog) ItemsInCategory(categoryID string) []Item {
	var result []Item
	for _, item := range c.items {
		if item.categoryID == categoryID {
			result = append(result, item)
		}
	}
	return result
}

// Categories returns the distinct categories of the catalog in first-seen
// order.
func (c Catalog) Categories() []Category {
	seen := make(map[string]bool, len(c.items))
	var result []Category
	for _, item := range c.items {
		if seen[item.categoryID] {
			continue
		}
		seen[item.categoryID] = true
		result = append(result, Category{ID: item.categoryID, Name: item.categoryName})
	}
	return result
}

// SearchByDescription returns items whose description contains the query,
// case-insensitively. An empty query matches nothing.
func (c Catalog) SearchByDescription(query string) []Item {
	if query == "" {
		return nil
	}
	needle := strings.ToLower(query)
	var result []Item
	for _, item := range c.items {
		if strings.Contains(strings.ToLower(item.description), needle) {
			result = append(result, item)
		}
	}
	return result
}
