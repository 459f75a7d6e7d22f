package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"crud_testbench/internal/models"
)

var errStoreDown = errors.New("connection refused")

// memRecords is an in-memory RecordStore with switchable failures.
type memRecords struct {
	mu             sync.Mutex
	rows           map[int64]models.Record
	next           int64
	failWith       error
	vanishOnDelete bool
}

func newMemRecords() *memRecords {
	return &memRecords{rows: map[int64]models.Record{}}
}

func (m *memRecords) List(_ context.Context) ([]models.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := make([]models.Record, 0, len(m.rows))
	for _, r := range m.rows {
		out = append(out, r)
	}
	return out, nil
}

func (m *memRecords) GetByID(_ context.Context, id int64) (*models.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	r, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (m *memRecords) Insert(_ context.Context, in models.RecordInput) (*models.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.next++
	now := time.Now()
	r := models.Record{ID: m.next, Name: in.Name, Email: in.Email, Role: in.Role, Status: in.Status, Notes: in.Notes, CreatedAt: now, UpdatedAt: now}
	m.rows[r.ID] = r
	return &r, nil
}

func (m *memRecords) Update(_ context.Context, id int64, patch models.RecordPatch) (*models.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	r, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		r.Name = *patch.Name
	}
	if patch.Status != nil {
		r.Status = *patch.Status
	}
	r.UpdatedAt = time.Now()
	m.rows[id] = r
	return &r, nil
}

func (m *memRecords) Delete(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return false, m.failWith
	}
	if m.vanishOnDelete {
		return false, nil
	}
	_, ok := m.rows[id]
	delete(m.rows, id)
	return ok, nil
}

// memLogs records every entry it is given.
type memLogs struct {
	mu       sync.Mutex
	entries  []models.OperationLogEntry
	failWith error
}

func (m *memLogs) Insert(_ context.Context, entry models.OperationLogEntry) (*models.OperationLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.entries = append(m.entries, entry)
	return &models.OperationLog{
		ID:        int64(len(m.entries)),
		Operation: entry.Operation,
		Status:    entry.Status,
		Message:   entry.Message,
		Details:   entry.Details,
		Metadata:  entry.Metadata,
		Timestamp: time.Now(),
	}, nil
}

func (m *memLogs) ListRecent(_ context.Context, limit int) ([]models.OperationLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	var out []models.OperationLog
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		e := m.entries[i]
		out = append(out, models.OperationLog{ID: int64(i + 1), Operation: e.Operation, Status: e.Status, Message: e.Message, Details: e.Details})
	}
	return out, nil
}

func (m *memLogs) snapshot() []models.OperationLogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.OperationLogEntry(nil), m.entries...)
}
