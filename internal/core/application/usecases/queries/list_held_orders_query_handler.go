package queries

import (
	"context"
	"time"

	"digisales/internal/core/domain/model/heldorder"
	"digisales/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListHeldOrdersQueryHandler reads held orders straight from the database,
// bypassing the aggregate. Lines are stored one row per unit of quantity;
// the handler folds them into (item, quantity) lines in first-seen order,
// which matches how the cart itself aggregates.
type ListHeldOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListHeldOrdersQueryHandler creates a handler for held-order listings.
func NewListHeldOrdersQueryHandler(db *gorm.DB) ListHeldOrdersQueryHandler {
	return ListHeldOrdersQueryHandler{db: db}
}

// Handle returns held orders newest first, each with its aggregated lines
// and a grand total.
func (h ListHeldOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListHeldOrdersQuery,
) ([]ListHeldOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			ho.id,
			ho.order_name,
			ho.status,
			ho.created_at,
			l.stock_id,
			l.description,
			l.price
		FROM held_orders ho
		JOIN held_order_lines l ON l.held_order_id = ho.id
	`
	args := make([]any, 0, 1)
	if status, ok := query.Status(); ok {
		sql += " WHERE ho.status = ?"
		args = append(args, status.String())
	}
	sql += " ORDER BY ho.created_at DESC, ho.id, l.position"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]ListHeldOrdersQueryResponse, 0)
	lineIdx := make(map[string]int)

	for rows.Next() {
		var (
			id          uuid.UUID
			orderName   string
			statusStr   string
			createdAt   time.Time
			stockID     string
			description string
			price       decimal.Decimal
		)
		if err = rows.Scan(&id, &orderName, &statusStr, &createdAt, &stockID, &description, &price); err != nil {
			return nil, err
		}

		unitPrice, priceErr := kernel.NewMoney(price)
		if priceErr != nil {
			return nil, priceErr
		}

		cur := len(responses) - 1
		if cur < 0 || responses[cur].OrderName != orderName {
			holdID, idErr := kernel.UUIDFromBytes(id[:])
			if idErr != nil {
				return nil, idErr
			}
			status, stErr := heldorder.StatusFromString(statusStr)
			if stErr != nil {
				return nil, stErr
			}
			responses = append(responses, ListHeldOrdersQueryResponse{
				ID:        holdID,
				OrderName: orderName,
				Status:    status,
				CreatedAt: createdAt,
				Total:     kernel.ZeroMoney(),
			})
			cur = len(responses) - 1
			lineIdx = make(map[string]int)
		}

		resp := &responses[cur]
		if idx, seen := lineIdx[stockID]; seen {
			resp.Lines[idx].Quantity++
			resp.Lines[idx].LineTotal = resp.Lines[idx].UnitPrice.MulInt(resp.Lines[idx].Quantity)
		} else {
			lineIdx[stockID] = len(resp.Lines)
			resp.Lines = append(resp.Lines, HeldOrderLineResponse{
				ItemCode:    stockID,
				Description: description,
				Quantity:    1,
				UnitPrice:   unitPrice,
				LineTotal:   unitPrice,
			})
		}
		resp.Total = resp.Total.Add(unitPrice)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
