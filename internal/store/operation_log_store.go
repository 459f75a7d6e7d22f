package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"crud_testbench/internal/models"
)

// OperationLogStore is the append-only audit trail. Nothing in the request
// path updates or deletes its rows.
type OperationLogStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewOperationLogStore(db *gorm.DB, opts ...Option) *OperationLogStore {
	o := buildOptions(opts)
	return &OperationLogStore{db: db, now: o.now}
}

func (s *OperationLogStore) Insert(ctx context.Context, entry models.OperationLogEntry) (*models.OperationLog, error) {
	if len(entry.Metadata) == 0 {
		entry.Metadata = emptyMetadata()
	}
	row := models.OperationLog{
		Operation: entry.Operation,
		Status:    entry.Status,
		Message:   entry.Message,
		Details:   entry.Details,
		Metadata:  entry.Metadata,
		Timestamp: s.now(),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("insert operation log: %w", err)
	}
	return &row, nil
}

// ListRecent returns at most limit entries, newest first.
func (s *OperationLogStore) ListRecent(ctx context.Context, limit int) ([]models.OperationLog, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	var logs []models.OperationLog
	err := s.db.WithContext(ctx).
		Order("timestamp DESC").
		Order("id DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("list operation logs: %w", err)
	}
	return logs, nil
}

// Prune deletes everything but the keep most recent entries and returns the
// number of rows removed.
func (s *OperationLogStore) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		return 0, ErrInvalidLimit
	}
	var cutoff []int64
	err := s.db.WithContext(ctx).Model(&models.OperationLog{}).
		Order("timestamp DESC").
		Order("id DESC").
		Offset(keep).
		Limit(1).
		Pluck("id", &cutoff).Error
	if err != nil {
		return 0, fmt.Errorf("find prune cutoff: %w", err)
	}
	if len(cutoff) == 0 {
		return 0, nil
	}

	var boundary models.OperationLog
	if err := s.db.WithContext(ctx).Where("id = ?", cutoff[0]).Take(&boundary).Error; err != nil {
		return 0, fmt.Errorf("load prune cutoff: %w", err)
	}

	res := s.db.WithContext(ctx).
		Where("timestamp < ? OR (timestamp = ? AND id <= ?)", boundary.Timestamp, boundary.Timestamp, boundary.ID).
		Delete(&models.OperationLog{})
	if res.Error != nil {
		return 0, fmt.Errorf("prune operation logs: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// metadata is never stored as NULL; datatypes.JSON cannot scan it back.
func emptyMetadata() datatypes.JSON {
	return datatypes.JSON("{}")
}
