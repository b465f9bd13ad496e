// Package session models dining sessions and the table/staff reference data
// that surrounds them. A session binds a table, a guest count, and a time
// window; it is created through the backend and read back by polling, so
// these types are read models with exported fields.
package session

// Session statuses as reported by the backend.
const (
	StatusActive = "active"
	StatusClosed = "closed"
)

// Session is a dining engagement bound to a table.
// SessionDate is an ISO date ("2006-01-02"); dates in that form compare
// correctly as strings, which the filter logic relies on.
type Session struct {
	SessionID   string
	TableID     string
	TableName   string
	TableNumber string
	GuestCount  int
	SessionType string
	Notes       string
	Status      string
	StartTime   string
	SessionDate string
}

// IsActive reports whether the session is still open for orders.
func (s Session) IsActive() bool {
	return s.Status == StatusActive
}

// Table is a restaurant table as listed by the backend.
type Table struct {
	TableID     string
	TableName   string
	TableNumber string
	Capacity    int
	Status      string
}

// Staff is a staff member record from the backend roster.
type Staff struct {
	StaffID  string
	Name     string
	Role     string
	Username string
}
