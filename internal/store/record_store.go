package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"crud_testbench/internal/models"
)

// RecordStore owns the records table.
type RecordStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewRecordStore(db *gorm.DB, opts ...Option) *RecordStore {
	o := buildOptions(opts)
	return &RecordStore{db: db, now: o.now}
}

// List returns every record, most recently created first.
func (s *RecordStore) List(ctx context.Context) ([]models.Record, error) {
	var records []models.Record
	if err := s.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

// GetByID returns nil without error when no record has the given id.
func (s *RecordStore) GetByID(ctx context.Context, id int64) (*models.Record, error) {
	return getRecord(s.db.WithContext(ctx), id)
}

func getRecord(tx *gorm.DB, id int64) (*models.Record, error) {
	var rec models.Record
	err := tx.Where("id = ?", id).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get record %d: %w", id, err)
	}
	return &rec, nil
}

func (s *RecordStore) Insert(ctx context.Context, in models.RecordInput) (*models.Record, error) {
	now := s.now()
	rec := models.Record{
		Name:      in.Name,
		Email:     in.Email,
		Role:      in.Role,
		Status:    in.Status,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if rec.Role == "" {
		rec.Role = models.RoleViewer
	}
	if rec.Status == "" {
		rec.Status = models.RecordActive
	}

	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("insert record: %w", err)
	}
	return &rec, nil
}

// Update applies the non-nil fields of patch and refreshes updatedAt. It
// returns nil without writing anything when the record does not exist.
func (s *RecordStore) Update(ctx context.Context, id int64, patch models.RecordPatch) (*models.Record, error) {
	var updated *models.Record
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := getRecord(tx, id)
		if err != nil || existing == nil {
			return err
		}

		changes := map[string]any{"updated_at": s.now()}
		if patch.Name != nil {
			changes["name"] = *patch.Name
		}
		if patch.Email != nil {
			changes["email"] = *patch.Email
		}
		if patch.Role != nil {
			changes["role"] = *patch.Role
		}
		if patch.Status != nil {
			changes["status"] = *patch.Status
		}
		if patch.Notes != nil {
			changes["notes"] = *patch.Notes
		}

		if err := tx.Model(&models.Record{}).Where("id = ?", id).Updates(changes).Error; err != nil {
			return err
		}

		updated, err = getRecord(tx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update record %d: %w", id, err)
	}
	return updated, nil
}

// Delete reports whether a row was actually removed.
func (s *RecordStore) Delete(ctx context.Context, id int64) (bool, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Record{})
	if res.Error != nil {
		return false, fmt.Errorf("delete record %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}
