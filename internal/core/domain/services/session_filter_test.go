package services_test

import (
	"testing"

	"digisales/internal/core/domain/model/session"
	"digisales/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSessions() []session.Session {
	return []session.Session{
		{SessionID: "s1", TableName: "Garden", TableNumber: "1", SessionDate: "2026-08-29", Status: session.StatusActive},
		{SessionID: "s2", TableName: "Terrace", TableNumber: "12", SessionDate: "2026-08-31", Status: session.StatusActive},
		{SessionID: "s3", TableName: "garden view", TableNumber: "3", SessionDate: "2026-08-30", Status: session.StatusActive},
	}
}

func TestSessionFilter_Search(t *testing.T) {
	filter := services.NewSessionFilter()

	t.Run("matches_table_name_case_insensitive", func(t *testing.T) {
		got := filter.Apply(sampleSessions(), services.SessionCriteria{Search: "GARDEN"})
		require.Len(t, got, 2)
	})

	t.Run("matches_table_number_substring", func(t *testing.T) {
		got := filter.Apply(sampleSessions(), services.SessionCriteria{Search: "12"})
		require.Len(t, got, 1)
		assert.Equal(t, "s2", got[0].SessionID)
	})

	t.Run("no_criteria_returns_everything", func(t *testing.T) {
		got := filter.Apply(sampleSessions(), services.SessionCriteria{})
		assert.Len(t, got, 3)
	})
}

func TestSessionFilter_DateRange(t *testing.T) {
	filter := services.NewSessionFilter()

	t.Run("range_is_inclusive", func(t *testing.T) {
		got := filter.Apply(sampleSessions(), services.SessionCriteria{
			FromDate: "2026-08-30",
			ToDate:   "2026-08-31",
		})
		require.Len(t, got, 2)
	})

	t.Run("from_only", func(t *testing.T) {
		got := filter.Apply(sampleSessions(), services.SessionCriteria{FromDate: "2026-08-31"})
		require.Len(t, got, 1)
		assert.Equal(t, "s2", got[0].SessionID)
	})
}

func TestSessionFilter_Sort(t *testing.T) {
	filter := services.NewSessionFilter()

	t.Run("default_is_newest_first", func(t *testing.T) {
		got := filter.Apply(sampleSessions(), services.SessionCriteria{})
		require.Len(t, got, 3)
		assert.Equal(t, "s2", got[0].SessionID)
		assert.Equal(t, "s1", got[2].SessionID)
	})

	t.Run("oldest_first", func(t *testing.T) {
		got := filter.Apply(sampleSessions(), services.SessionCriteria{Sort: services.SortOldestFirst})
		assert.Equal(t, "s1", got[0].SessionID)
		assert.Equal(t, "s2", got[2].SessionID)
	})
}

func TestSessionFilter_DoesNotMutateSnapshot(t *testing.T) {
	filter := services.NewSessionFilter()
	snapshot := sampleSessions()

	_ = filter.Apply(snapshot, services.SessionCriteria{Sort: services.SortOldestFirst})

	assert.Equal(t, "s1", snapshot[0].SessionID)
	assert.Equal(t, "s2", snapshot[1].SessionID)
	assert.Equal(t, "s3", snapshot[2].SessionID)
}
