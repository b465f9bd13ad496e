package queries_test

import (
	"context"
	"testing"

	"digisales/internal/core/domain/model/kernel"
	"digisales/internal/core/domain/model/menu"
	"digisales/internal/core/domain/model/orderline"
	"digisales/internal/core/domain/model/session"
	"digisales/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPosGateway struct{ mock.Mock }

func (m *MockPosGateway) Login(ctx context.Context, username, password string) (ports.LoginResult, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(ports.LoginResult), args.Error(1)
}

func (m *MockPosGateway) FetchMenu(ctx context.Context) ([]menu.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]menu.Item), args.Error(1)
}

func (m *MockPosGateway) FetchTables(ctx context.Context) ([]session.Table, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]session.Table), args.Error(1)
}

func (m *MockPosGateway) CreateSession(ctx context.Context, req ports.CreateSessionRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockPosGateway) CreateOrderLine(ctx context.Context, req ports.CreateOrderLineRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockPosGateway) FetchActiveSessions(ctx context.Context) ([]session.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]session.Session), args.Error(1)
}

func (m *MockPosGateway) FetchSessionOrders(ctx context.Context, sessionID string) ([]orderline.OrderLine, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]orderline.OrderLine), args.Error(1)
}

func (m *MockPosGateway) UpdateOrderStatus(ctx context.Context, orderID string, status orderline.Status) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *MockPosGateway) CloseSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockPosGateway) FetchStaff(ctx context.Context) ([]session.Staff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]session.Staff), args.Error(1)
}

func mustItem(t *testing.T, stockID, description, price string) menu.Item {
	t.Helper()
	p, err := kernel.NewMoneyFromString(price)
	require.NoError(t, err)
	item, err := menu.NewItem(stockID, description, description, p, "plate", "cat-1", "Mains")
	require.NoError(t, err)
	return item
}
