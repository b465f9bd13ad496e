package ports

import (
	"context"

	"digisales/internal/core/domain/model/menu"
	"digisales/internal/core/domain/model/orderline"
	"digisales/internal/core/domain/model/session"
)

// CreateSessionRequest carries the fields of a new dining session.
type CreateSessionRequest struct {
	TableID     string
	GuestCount  int
	SessionType string
	Notes       string
}

// CreateOrderLineRequest carries one aggregated cart line for submission
// against an active session.
type CreateOrderLineRequest struct {
	SessionID  string
	ItemCode   string
	Quantity   int
	ClientName string
	Notes      string
}

// LoginResult is the outcome of a successful gateway login.
type LoginResult struct {
	Token string
	Users []session.Staff
}

// PosGateway is the port to the backend order-processing gateway: a single
// transaction-style RPC endpoint selected by a transaction-type field.
// The gateway is a black box; implementations translate its inconsistent
// response envelope into domain values and errors.
//
// All methods take a context and return wrapped transport errors when the
// backend is unreachable or responds with a malformed body.
type PosGateway interface {
	// Login authenticates a cashier and returns the session token and the
	// staff roster bundled with the response.
	Login(ctx context.Context, username, password string) (LoginResult, error)

	// FetchMenu retrieves the complete orderable item catalog.
	FetchMenu(ctx context.Context) ([]menu.Item, error)

	// FetchTables retrieves all tables with status and capacity.
	FetchTables(ctx context.Context) ([]session.Table, error)

	// CreateSession starts a new dining session and returns its id.
	CreateSession(ctx context.Context, req CreateSessionRequest) (string, error)

	// CreateOrderLine commits one aggregated cart line to a session.
	CreateOrderLine(ctx context.Context, req CreateOrderLineRequest) error

	// FetchActiveSessions lists all currently open sessions.
	FetchActiveSessions(ctx context.Context) ([]session.Session, error)

	// FetchSessionOrders retrieves the order lines of one session.
	FetchSessionOrders(ctx context.Context, sessionID string) ([]orderline.OrderLine, error)

	// UpdateOrderStatus sets the kitchen status of an order line.
	// Transition legality is checked by the caller before the call.
	UpdateOrderStatus(ctx context.Context, orderID string, status orderline.Status) error

	// CloseSession ends a dining session.
	CloseSession(ctx context.Context, sessionID string) error

	// FetchStaff retrieves the staff roster.
	FetchStaff(ctx context.Context) ([]session.Staff, error)
}
