package posgateway

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"digisales/internal/core/domain/model/kernel"
	"digisales/internal/core/domain/model/menu"
	"digisales/internal/core/domain/model/orderline"
	"digisales/internal/core/domain/model/session"

	"github.com/shopspring/decimal"
)

// wireStatus is the backend's envelope status field. Newer endpoints return
// the string "SUCCESS" or "ERROR", older ones a bare HTTP-style number;
// both forms must parse and both success spellings must be accepted.
type wireStatus struct {
	raw string
}

func (s *wireStatus) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		s.raw = asString
		return nil
	}

	var asNumber json.Number
	if err := json.Unmarshal(data, &asNumber); err == nil {
		s.raw = asNumber.String()
		return nil
	}

	return fmt.Errorf("unsupported status form: %s", string(data))
}

// IsSuccess reports whether the status means success: the literal "SUCCESS"
// or any 2xx number.
func (s wireStatus) IsSuccess() bool {
	if s.raw == "SUCCESS" {
		return true
	}
	if code, err := strconv.Atoi(s.raw); err == nil {
		return code >= 200 && code < 300
	}
	return false
}

func (s wireStatus) String() string {
	return s.raw
}

// looseInt tolerates numbers that arrive quoted.
type looseInt int

func (i *looseInt) UnmarshalJSON(data []byte) error {
	trimmed := strings.Trim(string(data), `"`)
	if trimmed == "" || trimmed == "null" {
		*i = 0
		return nil
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil {
		return fmt.Errorf("not an integer: %s", string(data))
	}
	*i = looseInt(parsed)
	return nil
}

type envelope struct {
	Status  wireStatus `json:"status"`
	Message string     `json:"message"`
}

type loginResponse struct {
	envelope
	Token string   `json:"token"`
	User  staffDTO `json:"user"`
}

type menuResponse struct {
	envelope
	MenuItems []menuItemDTO `json:"menu_items"`
}

type tablesResponse struct {
	envelope
	Tables []tableDTO `json:"tables"`
}

type createSessionResponse struct {
	envelope
	SessionID string `json:"session_id"`
}

type sessionsResponse struct {
	envelope
	Sessions []sessionDTO `json:"sessions"`
}

type sessionOrdersResponse struct {
	envelope
	Orders []orderLineDTO `json:"orders"`
}

type staffResponse struct {
	envelope
	Staff []staffDTO `json:"staff"`
}

type menuItemDTO struct {
	StockID      string          `json:"stock_id"`
	ItemName     string          `json:"item_name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Units        string          `json:"units"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
}

func (dto menuItemDTO) toDomain() (menu.Item, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return menu.Item{}, err
	}
	return menu.NewItem(
		dto.StockID,
		dto.ItemName,
		dto.Description,
		price,
		dto.Units,
		dto.CategoryID,
		dto.CategoryName,
	)
}

type tableDTO struct {
	TableID     string   `json:"table_id"`
	TableName   string   `json:"table_name"`
	TableNumber string   `json:"table_number"`
	Capacity    looseInt `json:"capacity"`
	Status      string   `json:"status"`
}

func (dto tableDTO) toDomain() session.Table {
	return session.Table{
		TableID:     dto.TableID,
		TableName:   dto.TableName,
		TableNumber: dto.TableNumber,
		Capacity:    int(dto.Capacity),
		Status:      dto.Status,
	}
}

type sessionDTO struct {
	SessionID   string   `json:"session_id"`
	TableID     string   `json:"table_id"`
	TableName   string   `json:"table_name"`
	TableNumber string   `json:"table_number"`
	GuestCount  looseInt `json:"guest_count"`
	SessionType string   `json:"session_type"`
	Notes       string   `json:"notes"`
	Status      string   `json:"status"`
	StartTime   string   `json:"start_time"`
	SessionDate string   `json:"session_date"`
}

func (dto sessionDTO) toDomain() session.Session {
	return session.Session{
		SessionID:   dto.SessionID,
		TableID:     dto.TableID,
		TableName:   dto.TableName,
		TableNumber: dto.TableNumber,
		GuestCount:  int(dto.GuestCount),
		SessionType: dto.SessionType,
		Notes:       dto.Notes,
		Status:      dto.Status,
		StartTime:   dto.StartTime,
		SessionDate: dto.SessionDate,
	}
}

type orderLineDTO struct {
	ID              string          `json:"id"`
	SessionID       string          `json:"session_id"`
	ItemCode        string          `json:"item_code"`
	ItemDescription string          `json:"item_description"`
	Quantity        looseInt        `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	LineTotal       decimal.Decimal `json:"line_total"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes"`
}

func (dto orderLineDTO) toDomain() (orderline.OrderLine, error) {
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return orderline.OrderLine{}, err
	}
	lineTotal, err := kernel.NewMoney(dto.LineTotal)
	if err != nil {
		return orderline.OrderLine{}, err
	}
	status, err := orderline.ParseStatus(dto.Status)
	if err != nil {
		return orderline.OrderLine{}, err
	}

	return orderline.OrderLine{
		ID:              dto.ID,
		SessionID:       dto.SessionID,
		ItemCode:        dto.ItemCode,
		ItemDescription: dto.ItemDescription,
		Quantity:        int(dto.Quantity),
		UnitPrice:       unitPrice,
		LineTotal:       lineTotal,
		Status:          status,
		Notes:           dto.Notes,
	}, nil
}

type staffDTO struct {
	StaffID  string `json:"staff_id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Username string `json:"username"`
}

func (dto staffDTO) toDomain() session.Staff {
	return session.Staff{
		StaffID:  dto.StaffID,
		Name:     dto.Name,
		Role:     dto.Role,
		Username: dto.Username,
	}
}
