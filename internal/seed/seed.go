package seed

import (
	"context"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"crud_testbench/internal/models"
)

func strPtr(s string) *string { return &s }

// FirstSetup fills an empty records table with sample records and a few
// operation log entries. It reports whether anything was written.
func FirstSetup(ctx context.Context, db *gorm.DB, now time.Time) (bool, error) {
	var existing int64
	if err := db.WithContext(ctx).Model(&models.Record{}).Count(&existing).Error; err != nil {
		return false, err
	}
	if existing > 0 {
		log.Printf("Database already contains %d records. Skipping seed.", existing)
		return false, nil
	}

	records := []models.Record{
		{
			Name:      "Jane Cooper",
			Email:     "jane.cooper@example.com",
			Role:      models.RoleAdmin,
			Status:    models.RecordActive,
			Notes:     strPtr("Manager for the sales team. Joined January 2023."),
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			Name:      "John Smith",
			Email:     "john.smith@example.com",
			Role:      models.RoleEditor,
			Status:    models.RecordActive,
			Notes:     strPtr("Content writer for marketing department."),
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			Name:      "Robert Johnson",
			Email:     "robert@example.com",
			Role:      models.RoleViewer,
			Status:    models.RecordInactive,
			Notes:     strPtr("Former consultant, account deactivated."),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	logs := []models.OperationLog{
		{
			Operation: models.OpCreate,
			Status:    models.OpSuccess,
			Message:   "CREATE operation successful",
			Details:   strPtr("Added user 'Jane Cooper' to database (ID: 1)"),
			Metadata:  datatypes.JSON("{}"),
			Timestamp: now.Add(-5 * time.Minute),
		},
		{
			Operation: models.OpRead,
			Status:    models.OpSuccess,
			Message:   "READ operation successful",
			Details:   strPtr("Retrieved 3 records from 'users' table"),
			Metadata:  datatypes.JSON("{}"),
			Timestamp: now.Add(-6 * time.Minute),
		},
		{
			Operation: models.OpUpdate,
			Status:    models.OpSuccess,
			Message:   "UPDATE operation successful",
			Details:   strPtr("Updated user 'John Smith' (ID: 2)"),
			Metadata:  datatypes.JSON("{}"),
			Timestamp: now.Add(-24 * time.Hour),
		},
		{
			Operation: models.OpDelete,
			Status:    models.OpSuccess,
			Message:   "DELETE operation successful",
			Details:   strPtr("Removed user 'Alice Brown' (ID: 4)"),
			Metadata:  datatypes.JSON("{}"),
			Timestamp: now.Add(-24*time.Hour - 30*time.Minute),
		},
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&records).Error; err != nil {
			return err
		}
		return tx.Create(&logs).Error
	})
	if err != nil {
		return false, err
	}

	log.Printf("✅ Seed OK | records=%d | operation_logs=%d", len(records), len(logs))
	return true, nil
}
