package services

import (
	"slices"
	"strings"

	"digisales/internal/core/domain/model/session"
)

// SortOrder selects the direction of the session-date sort.
type SortOrder string

const (
	// SortNewestFirst orders sessions by session date descending.
	SortNewestFirst SortOrder = "desc"
	// SortOldestFirst orders sessions by session date ascending.
	SortOldestFirst SortOrder = "asc"
)

// SessionCriteria describes a client-side view over a fetched session list.
// All fields are optional; zero values mean "no constraint".
type SessionCriteria struct {
	// Search is matched case-insensitively as a substring of the table name
	// or table number.
	Search string
	// FromDate and ToDate bound the session date inclusively, as ISO dates.
	FromDate string
	ToDate   string
	// Sort defaults to newest first.
	Sort SortOrder
}

// SessionFilter is a domain service that derives a filtered, sorted view
// from the latest fetched session snapshot.
//
// The filter is pure: it never mutates the input slice, so re-applying the
// same criteria to the same snapshot always yields the same view, and the
// underlying snapshot stays intact for other consumers.
type SessionFilter struct{}

// NewSessionFilter creates a new SessionFilter instance.
func NewSessionFilter() SessionFilter {
	return SessionFilter{}
}

// Apply returns the sessions matching the criteria, sorted by session date.
func (f SessionFilter) Apply(sessions []session.Session, criteria SessionCriteria) []session.Session {
	result := make([]session.Session, 0, len(sessions))

	needle := strings.ToLower(strings.TrimSpace(criteria.Search))
	for _, s := range sessions {
		if needle != "" && !matchesSearch(s, needle) {
			continue
		}
		if criteria.FromDate != "" && s.SessionDate < criteria.FromDate {
			continue
		}
		if criteria.ToDate != "" && s.SessionDate > criteria.ToDate {
			continue
		}
		result = append(result, s)
	}

	ascending := criteria.Sort == SortOldestFirst
	slices.SortStableFunc(result, func(a, b session.Session) int {
		cmp := strings.Compare(a.SessionDate, b.SessionDate)
		if !ascending {
			cmp = -cmp
		}
		return cmp
	})

	return result
}

func matchesSearch(s session.Session, needle string) bool {
	return strings.Contains(strings.ToLower(s.TableName), needle) ||
		strings.Contains(strings.ToLower(s.TableNumber), needle)
}
