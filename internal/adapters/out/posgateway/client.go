// Package posgateway implements the PosGateway port against the legacy
// backend: one POST endpoint, form-encoded requests dispatched by a
// transaction-type field, JSON responses with an inconsistent envelope.
//
// Every request carries two control fields: tp selects the backend
// transaction and cp is the company prefix, fixed at "0_".
package posgateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"digisales/internal/core/domain/model/menu"
	"digisales/internal/core/domain/model/orderline"
	"digisales/internal/core/domain/model/session"
	"digisales/internal/core/ports"
	"digisales/internal/pkg/errs"
)

const defaultControlPrefix = "0_"

// Sentinel errors for classifying gateway failures.
var (
	// ErrUnavailable marks transport failures and malformed responses.
	ErrUnavailable = errors.New("gateway unavailable")
	// ErrRejected marks requests the backend answered with an error status.
	ErrRejected = errors.New("gateway rejected request")
)

// UnavailableError wraps a transport or decoding failure for one operation.
type UnavailableError struct {
	Op    string
	Cause error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrUnavailable, e.Op, e.Cause)
}

func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// RejectedError carries the backend's error status and optional message.
type RejectedError struct {
	Op      string
	Status  string
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s: status %s: %s", ErrRejected, e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s: status %s", ErrRejected, e.Op, e.Status)
}

func (e *RejectedError) Unwrap() error {
	return ErrRejected
}

// Client talks to the backend gateway endpoint. Safe for concurrent use;
// order submission fans out multiple requests over one Client.
type Client struct {
	baseURL       string
	controlPrefix string
	httpClient    *http.Client
}

// NewClient creates a gateway client for the given endpoint URL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		baseURL:       baseURL,
		controlPrefix: defaultControlPrefix,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// call posts one form-encoded transaction and decodes the JSON response
// into out. The envelope status is checked by the caller; call only fails
// on transport and decoding problems.
func (c *Client) call(ctx context.Context, tp string, fields url.Values, out any) error {
	form := url.Values{}
	form.Set("tp", tp)
	form.Set("cp", c.controlPrefix)
	for key, values := range fields {
		for _, value := range values {
			form.Add(key, value)
		}
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()),
	)
	if err != nil {
		return &UnavailableError{Op: tp, Cause: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UnavailableError{Op: tp, Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &UnavailableError{Op: tp, Cause: err}
	}

	if err = json.Unmarshal(body, out); err != nil {
		return &UnavailableError{Op: tp, Cause: err}
	}

	return nil
}

func (c *Client) checkEnvelope(tp string, env envelope) error {
	if env.Status.IsSuccess() {
		return nil
	}
	return &RejectedError{Op: tp, Status: env.Status.String(), Message: env.Message}
}

// Login authenticates a cashier and returns the session token together with
// the staff record bundled into the response.
func (c *Client) Login(ctx context.Context, username, password string) (ports.LoginResult, error) {
	const tp = "pos_login"

	fields := url.Values{}
	fields.Set("username", username)
	fields.Set("password", password)

	var resp loginResponse
	if err := c.call(ctx, tp, fields, &resp); err != nil {
		return ports.LoginResult{}, err
	}
	if err := c.checkEnvelope(tp, resp.envelope); err != nil {
		return ports.LoginResult{}, err
	}

	return ports.LoginResult{
		Token: resp.Token,
		Users: []session.Staff{resp.User.toDomain()},
	}, nil
}

// FetchMenu retrieves the complete orderable item catalog.
func (c *Client) FetchMenu(ctx context.Context) ([]menu.Item, error) {
	const tp = "get_menu"

	var resp menuResponse
	if err := c.call(ctx, tp, nil, &resp); err != nil {
		return nil, err
	}
	if err := c.checkEnvelope(tp, resp.envelope); err != nil {
		return nil, err
	}

	items := make([]menu.Item, 0, len(resp.MenuItems))
	for _, dto := range resp.MenuItems {
		item, err := dto.toDomain()
		if err != nil {
			return nil, &UnavailableError{Op: tp, Cause: err}
		}
		items = append(items, item)
	}

	return items, nil
}

// FetchTables retrieves all tables with status and capacity.
func (c *Client) FetchTables(ctx context.Context) ([]session.Table, error) {
	const tp = "get_tables"

	var resp tablesResponse
	if err := c.call(ctx, tp, nil, &resp); err != nil {
		return nil, err
	}
	if err := c.checkEnvelope(tp, resp.envelope); err != nil {
		return nil, err
	}

	tables := make([]session.Table, 0, len(resp.Tables))
	for _, dto := range resp.Tables {
		tables = append(tables, dto.toDomain())
	}

	return tables, nil
}

// CreateSession starts a new dining session and returns its id.
// Optional fields are omitted from the form when empty.
func (c *Client) CreateSession(ctx context.Context, req ports.CreateSessionRequest) (string, error) {
	const tp = "create_session"

	fields := url.Values{}
	fields.Set("table_id", req.TableID)
	fields.Set("guest_count", strconv.Itoa(req.GuestCount))
	if req.SessionType != "" {
		fields.Set("session_type", req.SessionType)
	}
	if req.Notes != "" {
		fields.Set("notes", req.Notes)
	}

	var resp createSessionResponse
	if err := c.call(ctx, tp, fields, &resp); err != nil {
		return "", err
	}
	if err := c.checkEnvelope(tp, resp.envelope); err != nil {
		return "", err
	}

	return resp.SessionID, nil
}

// CreateOrderLine commits one aggregated cart line to a session.
// client_name and notes are always present in the form, empty when unset.
func (c *Client) CreateOrderLine(ctx context.Context, req ports.CreateOrderLineRequest) error {
	const tp = "create_order"

	fields := url.Values{}
	fields.Set("session_id", req.SessionID)
	fields.Set("item_code", req.ItemCode)
	fields.Set("quantity", strconv.Itoa(req.Quantity))
	fields.Set("client_name", req.ClientName)
	fields.Set("notes", req.Notes)

	var resp envelope
	if err := c.call(ctx, tp, fields, &resp); err != nil {
		return err
	}
	return c.checkEnvelope(tp, resp)
}

// FetchActiveSessions lists all currently open sessions.
func (c *Client) FetchActiveSessions(ctx context.Context) ([]session.Session, error) {
	const tp = "get_sessions"

	var resp sessionsResponse
	if err := c.call(ctx, tp, nil, &resp); err != nil {
		return nil, err
	}
	if err := c.checkEnvelope(tp, resp.envelope); err != nil {
		return nil, err
	}

	sessions := make([]session.Session, 0, len(resp.Sessions))
	for _, dto := range resp.Sessions {
		sessions = append(sessions, dto.toDomain())
	}

	return sessions, nil
}

// FetchSessionOrders retrieves the order lines of one session.
func (c *Client) FetchSessionOrders(ctx context.Context, sessionID string) ([]orderline.OrderLine, error) {
	const tp = "get_session_orders"

	fields := url.Values{}
	fields.Set("session_id", sessionID)

	var resp sessionOrdersResponse
	if err := c.call(ctx, tp, fields, &resp); err != nil {
		return nil, err
	}
	if err := c.checkEnvelope(tp, resp.envelope); err != nil {
		return nil, err
	}

	lines := make([]orderline.OrderLine, 0, len(resp.Orders))
	for _, dto := range resp.Orders {
		line, err := dto.toDomain()
		if err != nil {
			return nil, &UnavailableError{Op: tp, Cause: err}
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// UpdateOrderStatus sets the kitchen status of an order line.
// The caller has already checked transition legality; the backend applies
// the new status blindly.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status orderline.Status) error {
	const tp = "update_order_status"

	fields := url.Values{}
	fields.Set("order_id", orderID)
	fields.Set("status", status.String())

	var resp envelope
	if err := c.call(ctx, tp, fields, &resp); err != nil {
		return err
	}
	return c.checkEnvelope(tp, resp)
}

// CloseSession ends a dining session.
func (c *Client) CloseSession(ctx context.Context, sessionID string) error {
	const tp = "close_session"

	fields := url.Values{}
	fields.Set("session_id", sessionID)

	var resp envelope
	if err := c.call(ctx, tp, fields, &resp); err != nil {
		return err
	}
	return c.checkEnvelope(tp, resp)
}

// FetchStaff retrieves the staff roster.
func (c *Client) FetchStaff(ctx context.Context) ([]session.Staff, error) {
	const tp = "get_staff"

	var resp staffResponse
	if err := c.call(ctx, tp, nil, &resp); err != nil {
		return nil, err
	}
	if err := c.checkEnvelope(tp, resp.envelope); err != nil {
		return nil, err
	}

	staff := make([]session.Staff, 0, len(resp.Staff))
	for _, dto := range resp.Staff {
		staff = append(staff, dto.toDomain())
	}

	return staff, nil
}
