package menu

import (
	"errors"

	"digisales/internal/core/domain/model/kernel"
	"digisales/internal/pkg/errs"
)

// Item is an immutable menu entry as served by the backend catalog.
// Identity is the stock code; two items with the same stock code are the
// same orderable product. Items are never mutated after the catalog fetch,
// so they are safe to copy into carts and held orders.
type Item struct {
	stockID      string
	name         string
	description  string
	price        kernel.Money
	units        string
	categoryID   string
	categoryName string
}

// NewItem creates a menu item.
// The stock code and description are required; the price must be positive.
func NewItem(
	stockID, name, description string,
	price kernel.Money,
	units, categoryID, categoryName string,
) (Item, error) {
	var joined error
	if stockID == "" {
		joined = errors.Join(joined, errs.NewValueIsRequiredError("stockID"))
	}
	if description == "" {
		joined = errors.Join(joined, errs.NewValueIsRequiredError("description"))
	}
	if !price.IsPositive() {
		joined = errors.Join(joined, errs.NewValueIsInvalidError("price must be greater than 0"))
	}
	if joined != nil {
		return Item{}, joined
	}

	return Item{
		stockID:      stockID,
		name:         name,
		description:  description,
		price:        price,
		units:        units,
		categoryID:   categoryID,
		categoryName: categoryName,
	}, nil
}

// StockID returns the unique stock code of the item.
func (i Item) StockID() string {
	return i.stockID
}

// Name returns the short item name.
func (i Item) Name() string {
	return i.name
}

// Description returns the display description of the item.
func (i Item) Description() string {
	return i.description
}

// Price returns the unit price.
func (i Item) Price() kernel.Money {
	return i.price
}

// Units returns the unit of measure, e.g. "plate" or "glass".
func (i Item) Units() string {
	return i.units
}

// CategoryID returns the identifier of the item's category.
func (i Item) CategoryID() string {
	return i.categoryID
}

// CategoryName returns the display name of the item's category.
func (i Item) CategoryName() string {
	return i.categoryName
}

// IsSame reports whether two items refer to the same stock code.
func (i Item) IsSame(other Item) bool {
	return i.stockID == other.stockID
}
