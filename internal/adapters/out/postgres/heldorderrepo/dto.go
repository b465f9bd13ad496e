// Package heldorderrepo provides data transfer objects and mapping functions
// for held-order persistence. A held order is stored as a header row plus one
// line row per raw item occurrence; restoring reads the lines back in their
// original cart position.
package heldorderrepo

import (
	"time"

	"digisales/internal/core/domain/model/heldorder"
	"digisales/internal/core/domain/model/kernel"
	"digisales/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HeldOrderDTO represents the database structure for held-order headers.
// The unique index on order_name is what enforces name uniqueness; the
// domain layer never pre-checks.
type HeldOrderDTO struct {
	ID        uuid.UUID          `gorm:"type:uuid;primaryKey"`
	OrderName string             `gorm:"uniqueIndex;not null"`
	Status    string             `gorm:"not null"`
	CreatedAt time.Time          `gorm:"not null"`
	Lines     []HeldOrderLineDTO `gorm:"foreignKey:HeldOrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "held_orders".
func (HeldOrderDTO) TableName() string {
	return "held_orders"
}

// HeldOrderLineDTO is one raw item occurrence of a held cart snapshot.
// Position preserves the cart order so a restore reproduces the exact
// occurrence sequence.
type HeldOrderLineDTO struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	HeldOrderID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Position     int       `gorm:"not null"`
	StockID      string    `gorm:"not null"`
	Name         string
	Description  string          `gorm:"not null"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Units        string
	CategoryID   string
	CategoryName string
}

// TableName overrides GORM's default naming to use "held_order_lines".
func (HeldOrderLineDTO) TableName() string {
	return "held_order_lines"
}

func fromDomain(hold *heldorder.HeldOrder) HeldOrderDTO {
	items := hold.Items()
	lines := make([]HeldOrderLineDTO, 0, len(items))
	for i, item := range items {
		lines = append(lines, HeldOrderLineDTO{
			HeldOrderID:  hold.ID().Bytes(),
			Position:     i,
			StockID:      item.StockID(),
			Name:         item.Name(),
			Description:  item.Description(),
			Price:        item.Price().Decimal(),
			Units:        item.Units(),
			CategoryID:   item.CategoryID(),
			CategoryName: item.CategoryName(),
		})
	}

	return HeldOrderDTO{
		ID:        hold.ID().Bytes(),
		OrderName: hold.OrderName(),
		Status:    hold.Status().String(),
		CreatedAt: hold.CreatedAt(),
		Lines:     lines,
	}
}

func toDomain(dto HeldOrderDTO) (*heldorder.HeldOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := heldorder.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]menu.Item, 0, len(dto.Lines))
	for _, line := range dto.Lines {
		price, priceErr := kernel.NewMoney(line.Price)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := menu.NewItem(
			line.StockID,
			line.Name,
			line.Description,
			price,
			line.Units,
			line.CategoryID,
			line.CategoryName,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return heldorder.RestoreHeldOrder(id, dto.OrderName, items, dto.CreatedAt, status)
}
