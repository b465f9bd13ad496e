package posgateway

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"digisales/internal/core/domain/model/orderline"
	"digisales/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL)
	require.NoError(t, err)
	return client
}

func TestClient_FetchMenu_StringStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "get_menu", r.PostFormValue("tp"))
		assert.Equal(t, "0_", r.PostFormValue("cp"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "SUCCESS",
			"menu_items": [
				{
					"stock_id": "STK-1",
					"description": "Nasi Lemak",
					"price": 12.50,
					"units": "plate",
					"category_id": "c1",
					"category_name": "Mains"
				}
			]
		}`))
	})

	items, err := client.FetchMenu(t.Context())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "STK-1", items[0].StockID())
	assert.Equal(t, "12.5", items[0].Price().String())
}

func TestClient_FetchMenu_NumericStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": 200, "menu_items": []}`))
	})

	items, err := client.FetchMenu(t.Context())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClient_FetchMenu_ErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ERROR", "message": "db offline"}`))
	})

	_, err := client.FetchMenu(t.Context())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "db offline")
}

func TestClient_FetchMenu_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway timeout</html>`))
	})

	_, err := client.FetchMenu(t.Context())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_Login(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "pos_login", r.PostFormValue("tp"))
		assert.Equal(t, "mary", r.PostFormValue("username"))
		assert.Equal(t, "secret", r.PostFormValue("password"))

		_, _ = w.Write([]byte(`{
			"status": "SUCCESS",
			"token": "tok-123",
			"user": {"staff_id": "st-1", "name": "Mary", "role": "cashier", "username": "mary"}
		}`))
	})

	result, err := client.Login(t.Context(), "mary", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", result.Token)
	require.Len(t, result.Users, 1)
	assert.Equal(t, "cashier", result.Users[0].Role)
}

func TestClient_CreateSession(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "create_session", r.PostFormValue("tp"))
		assert.Equal(t, "tbl-7", r.PostFormValue("table_id"))
		assert.Equal(t, "4", r.PostFormValue("guest_count"))
		assert.Equal(t, "dine_in", r.PostFormValue("session_type"))
		assert.False(t, r.PostForm.Has("notes"))

		_, _ = w.Write([]byte(`{"status": "SUCCESS", "session_id": "sess-9"}`))
	})

	sessionID, err := client.CreateSession(t.Context(), ports.CreateSessionRequest{
		TableID:     "tbl-7",
		GuestCount:  4,
		SessionType: "dine_in",
	})
	require.NoError(t, err)
	assert.Equal(t, "sess-9", sessionID)
}

func TestClient_CreateOrderLine_SendsEmptyOptionalFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "create_order", r.PostFormValue("tp"))
		assert.Equal(t, "sess-9", r.PostFormValue("session_id"))
		assert.Equal(t, "STK-1", r.PostFormValue("item_code"))
		assert.Equal(t, "2", r.PostFormValue("quantity"))
		assert.True(t, r.PostForm.Has("client_name"))
		assert.True(t, r.PostForm.Has("notes"))

		_, _ = w.Write([]byte(`{"status": "SUCCESS"}`))
	})

	err := client.CreateOrderLine(t.Context(), ports.CreateOrderLineRequest{
		SessionID: "sess-9",
		ItemCode:  "STK-1",
		Quantity:  2,
	})
	require.NoError(t, err)
}

func TestClient_FetchSessionOrders_QuotedNumbers(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "sess-9", r.PostFormValue("session_id"))

		_, _ = w.Write([]byte(`{
			"status": "SUCCESS",
			"orders": [
				{
					"id": "ord-1",
					"session_id": "sess-9",
					"item_code": "STK-1",
					"item_description": "Nasi Lemak",
					"quantity": "2",
					"unit_price": "12.50",
					"line_total": "25.00",
					"status": "preparing",
					"notes": ""
				}
			]
		}`))
	})

	lines, err := client.FetchSessionOrders(t.Context(), "sess-9")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, orderline.StatusPreparing, lines[0].Status)
	assert.Equal(t, "25", lines[0].LineTotal.String())
}

func TestClient_UpdateOrderStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "update_order_status", r.PostFormValue("tp"))
		assert.Equal(t, "ord-1", r.PostFormValue("order_id"))
		assert.Equal(t, "ready", r.PostFormValue("status"))

		_, _ = w.Write([]byte(`{"status": "SUCCESS"}`))
	})

	err := client.UpdateOrderStatus(t.Context(), "ord-1", orderline.StatusReady)
	require.NoError(t, err)
}

func TestClient_CloseSession_Rejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ERROR", "message": "session has unpaid orders"}`))
	})

	err := client.CloseSession(t.Context(), "sess-9")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRejected)
}

func TestClient_FetchActiveSessions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"status": "SUCCESS",
			"sessions": [
				{
					"session_id": "s1",
					"table_id": "t1",
					"table_name": "Patio 1",
					"table_number": "P1",
					"guest_count": 3,
					"status": "active",
					"session_date": "2026-08-31"
				}
			]
		}`))
	})

	sessions, err := client.FetchActiveSessions(t.Context())
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.True(t, sessions[0].IsActive())
	assert.Equal(t, 3, sessions[0].GuestCount)
}

func TestNewClient_EmptyURL(t *testing.T) {
	_, err := NewClient("")
	require.Error(t, err)
}
