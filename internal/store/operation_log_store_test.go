package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crud_testbench/internal/models"
)

func newLogStore(t *testing.T) *OperationLogStore {
	return NewOperationLogStore(newTestDB(t), WithClock(newStepClock().Now))
}

func seedLogs(t *testing.T, s *OperationLogStore, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := s.Insert(context.Background(), models.OperationLogEntry{
			Operation: models.OpRead,
			Status:    models.OpSuccess,
			Message:   fmt.Sprintf("entry %d", i),
		})
		require.NoError(t, err)
	}
}

func TestOperationLogStore_Insert(t *testing.T) {
	s := newLogStore(t)

	row, err := s.Insert(context.Background(), models.OperationLogEntry{
		Operation: models.OpCreate,
		Status:    models.OpError,
		Message:   "Failed to create record",
		Details:   strPtr("boom"),
	})
	require.NoError(t, err)
	assert.NotZero(t, row.ID)
	assert.False(t, row.Timestamp.IsZero())
	assert.Equal(t, models.OpCreate, row.Operation)
	assert.Equal(t, models.OpError, row.Status)
	require.NotNil(t, row.Details)
	assert.Equal(t, "boom", *row.Details)
	assert.JSONEq(t, "{}", string(row.Metadata))

	logs, err := s.ListRecent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, row.ID, logs[0].ID)
	assert.JSONEq(t, "{}", string(logs[0].Metadata))
}

func TestOperationLogStore_ListRecentRespectsLimitAndOrder(t *testing.T) {
	s := newLogStore(t)
	seedLogs(t, s, 15)

	logs, err := s.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, logs, 10)
	assert.Equal(t, "entry 14", logs[0].Message)
	for i := 1; i < len(logs); i++ {
		assert.False(t, logs[i].Timestamp.After(logs[i-1].Timestamp), "entries must be newest first")
	}

	all, err := s.ListRecent(context.Background(), 100)
	require.NoError(t, err)
	assert.Len(t, all, 15)
}

func TestOperationLogStore_ListRecentRejectsNonPositiveLimit(t *testing.T) {
	s := newLogStore(t)

	for _, limit := range []int{0, -3} {
		_, err := s.ListRecent(context.Background(), limit)
		assert.ErrorIs(t, err, ErrInvalidLimit)
	}
}

func TestOperationLogStore_Prune(t *testing.T) {
	s := newLogStore(t)
	seedLogs(t, s, 8)

	removed, err := s.Prune(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), removed)

	logs, err := s.ListRecent(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "entry 7", logs[0].Message)
	assert.Equal(t, "entry 5", logs[2].Message)

	removed, err = s.Prune(context.Background(), 3)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestOperationLogStore_PruneToZero(t *testing.T) {
	s := newLogStore(t)
	seedLogs(t, s, 4)

	removed, err := s.Prune(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)

	_, err = s.Prune(context.Background(), -1)
	assert.ErrorIs(t, err, ErrInvalidLimit)
}
