// Package monitor owns the live view of active sessions and the selected
// session's order lines, kept fresh by two polling loops.
//
// All shared state sits behind one mutex with last-write-wins semantics.
// Every selection change bumps a generation counter; fetch results carry
// the generation they were issued under and are discarded when it is stale
// on arrival, so a slow response for a previously selected session can
// never be attributed to the current one.
package monitor

import (
	"context"
	"log/slog"
	"sync"

	"digisales/internal/core/application/usecases/commands"
	"digisales/internal/core/domain/model/orderline"
	"digisales/internal/core/domain/model/session"
	"digisales/internal/core/domain/services"
	"digisales/internal/core/ports"
	"digisales/internal/pkg/errs"
)

// Monitor tracks active sessions and the orders of the selected session.
type Monitor struct {
	gateway       ports.PosGateway
	updateHandler commands.UpdateOrderStatusCommandHandler
	filter        services.SessionFilter
	logger        *slog.Logger

	mu         sync.Mutex
	sessions   []session.Session
	selectedID string
	generation uint64
	orders     []orderline.OrderLine
}

// NewMonitor creates a monitor over the gateway.
func NewMonitor(gateway ports.PosGateway, logger *slog.Logger) *Monitor {
	return &Monitor{
		gateway:       gateway,
		updateHandler: commands.NewUpdateOrderStatusCommandHandler(gateway),
		filter:        services.NewSessionFilter(),
		logger:        logger.With("component", "monitor"),
	}
}

// RefreshSessions fetches the active-session list and replaces the
// snapshot. On error the previous snapshot stays displayed.
func (m *Monitor) RefreshSessions(ctx context.Context) error {
	sessions, err := m.gateway.FetchActiveSessions(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.sessions = sessions
	m.mu.Unlock()
	return nil
}

// Select switches the monitor to a session and fetches its orders
// immediately. The switch invalidates all in-flight order fetches for the
// previous selection and clears displayed orders before the new ones load.
//
// Unlike the polling path, a fetch failure here is returned to the caller;
// the selection itself stays in place and the next poll retries.
func (m *Monitor) Select(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionID")
	}

	m.mu.Lock()
	m.selectedID = sessionID
	m.generation++
	m.orders = nil
	gen := m.generation
	m.mu.Unlock()

	return m.fetchOrders(ctx, sessionID, gen)
}

// Deselect clears the selection and displayed orders and invalidates any
// in-flight order fetch.
func (m *Monitor) Deselect() {
	m.mu.Lock()
	m.selectedID = ""
	m.generation++
	m.orders = nil
	m.mu.Unlock()
}

// RefreshOrders re-fetches the selected session's orders. No-op without a
// selection. On error the displayed orders stay as they are.
func (m *Monitor) RefreshOrders(ctx context.Context) error {
	m.mu.Lock()
	sessionID := m.selectedID
	gen := m.generation
	m.mu.Unlock()

	if sessionID == "" {
		return nil
	}

	return m.fetchOrders(ctx, sessionID, gen)
}

// fetchOrders retrieves order lines and applies them only if the selection
// generation is still current when the response arrives.
func (m *Monitor) fetchOrders(ctx context.Context, sessionID string, gen uint64) error {
	lines, err := m.gateway.FetchSessionOrders(ctx, sessionID)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.generation {
		m.logger.DebugContext(ctx, "discarding stale order fetch",
			"session_id", sessionID, "generation", gen, "current", m.generation)
		return nil
	}
	m.orders = lines
	return nil
}

// Sessions returns a copy of the latest session snapshot.
func (m *Monitor) Sessions() []session.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make([]session.Session, len(m.sessions))
	copy(copied, m.sessions)
	return copied
}

// FilteredSessions returns the snapshot narrowed and sorted by the given
// criteria. The snapshot itself is never mutated.
func (m *Monitor) FilteredSessions(criteria services.SessionCriteria) []session.Session {
	return m.filter.Apply(m.Sessions(), criteria)
}

// SelectedSession returns the id of the currently selected session, empty
// when none is selected.
func (m *Monitor) SelectedSession() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selectedID
}

// Orders returns a copy of the selected session's displayed order lines.
func (m *Monitor) Orders() []orderline.OrderLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make([]orderline.OrderLine, len(m.orders))
	copy(copied, m.orders)
	return copied
}

// UpdateStatus moves a displayed order line to a new kitchen status.
// The transition is checked against the line's last polled status before
// the gateway is touched; updates on lines the monitor does not display
// fail with an ObjectNotFoundError.
func (m *Monitor) UpdateStatus(ctx context.Context, orderID string, next orderline.Status) error {
	m.mu.Lock()
	var current *orderline.OrderLine
	idx := -1
	for i := range m.orders {
		if m.orders[i].ID == orderID {
			current = &m.orders[i]
			idx = i
			break
		}
	}
	if current == nil {
		m.mu.Unlock()
		return errs.NewObjectNotFoundError("order", orderID)
	}
	currentStatus := current.Status
	gen := m.generation
	m.mu.Unlock()

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, currentStatus, next)
	if err != nil {
		return err
	}

	if err = m.updateHandler.Handle(ctx, cmd); err != nil {
		return err
	}

	// reflect the accepted status locally so repeat updates validate
	// against it before the next poll lands
	m.mu.Lock()
	if gen == m.generation && idx < len(m.orders) && m.orders[idx].ID == orderID {
		m.orders[idx].Status = next
	}
	m.mu.Unlock()
	return nil
}
