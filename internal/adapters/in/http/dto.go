package http

import (
	"time"

	"digisales/internal/core/application/usecases/queries"
	"digisales/internal/core/domain/model/cart"
	"digisales/internal/core/domain/model/heldorder"
	"digisales/internal/core/domain/model/kernel"
	"digisales/internal/core/domain/model/menu"
)

const (
	statusSuccess = "SUCCESS"
	statusError   = "ERROR"
)

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// selectedItemDTO mirrors the shape carts submit: one entry per unit of
// quantity, repeated entries meaning quantity.
type selectedItemDTO struct {
	StockID      string `json:"stock_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        string `json:"price"`
	Units        string `json:"units"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
}

type createHeldOrderRequest struct {
	OrderName     string            `json:"orderName"`
	SelectedItems []selectedItemDTO `json:"selectedItems"`
}

func (r createHeldOrderRequest) toItems() ([]menu.Item, error) {
	items := make([]menu.Item, 0, len(r.SelectedItems))
	for _, dto := range r.SelectedItems {
		price, err := kernel.NewMoneyFromString(dto.Price)
		if err != nil {
			return nil, err
		}
		item, err := menu.NewItem(
			dto.StockID,
			dto.Name,
			dto.Description,
			price,
			dto.Units,
			dto.CategoryID,
			dto.CategoryName,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

type heldOrderLineDTO struct {
	StockID     string `json:"stock_id"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
}

type heldOrderDTO struct {
	OrderName string             `json:"orderName"`
	Status    string             `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
	Items     []heldOrderLineDTO `json:"items"`
	Total     string             `json:"total"`
}

type createHeldOrderResponse struct {
	Status string       `json:"status"`
	Order  heldOrderDTO `json:"order"`
}

type listHeldOrdersResponse struct {
	Status string         `json:"status"`
	Orders []heldOrderDTO `json:"orders"`
}

type restoreHeldOrderResponse struct {
	Status string            `json:"status"`
	Items  []selectedItemDTO `json:"items"`
}

func heldOrderFromDomain(hold *heldorder.HeldOrder) heldOrderDTO {
	lines := cart.AggregateItems(hold.Items())
	dtoLines := make([]heldOrderLineDTO, 0, len(lines))
	total := kernel.ZeroMoney()
	for _, line := range lines {
		lineTotal := line.Total()
		dtoLines = append(dtoLines, heldOrderLineDTO{
			StockID:     line.Item.StockID(),
			Description: line.Item.Description(),
			Quantity:    line.Count,
			UnitPrice:   line.Item.Price().String(),
			LineTotal:   lineTotal.String(),
		})
		total = total.Add(lineTotal)
	}

	return heldOrderDTO{
		OrderName: hold.OrderName(),
		Status:    hold.Status().String(),
		CreatedAt: hold.CreatedAt(),
		Items:     dtoLines,
		Total:     total.String(),
	}
}

func heldOrderListFromQuery(orders []queries.ListHeldOrdersQueryResponse) []heldOrderDTO {
	result := make([]heldOrderDTO, 0, len(orders))
	for _, order := range orders {
		lines := make([]heldOrderLineDTO, 0, len(order.Lines))
		for _, line := range order.Lines {
			lines = append(lines, heldOrderLineDTO{
				StockID:     line.ItemCode,
				Description: line.Description,
				Quantity:    line.Quantity,
				UnitPrice:   line.UnitPrice.String(),
				LineTotal:   line.LineTotal.String(),
			})
		}
		result = append(result, heldOrderDTO{
			OrderName: order.OrderName,
			Status:    order.Status.String(),
			CreatedAt: order.CreatedAt,
			Items:     lines,
			Total:     order.Total.String(),
		})
	}
	return result
}

func itemsToDTO(items []menu.Item) []selectedItemDTO {
	result := make([]selectedItemDTO, 0, len(items))
	for _, item := range items {
		result = append(result, selectedItemDTO{
			StockID:      item.StockID(),
			Name:         item.Name(),
			Description:  item.Description(),
			Price:        item.Price().String(),
			Units:        item.Units(),
			CategoryID:   item.CategoryID(),
			CategoryName: item.CategoryName(),
		})
	}
	return result
}
