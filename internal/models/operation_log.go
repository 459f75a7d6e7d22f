package models

import (
    "time"

    "gorm.io/datatypes"
)

type Operation string

const (
    OpCreate Operation = "CREATE"
    OpRead   Operation = "READ"
    OpUpdate Operation = "UPDATE"
    OpDelete Operation = "DELETE"
)

type OperationStatus string

const (
    OpSuccess OperationStatus = "success"
    OpError   OperationStatus = "error"
)

// OperationLog is one append-only audit entry. It has no foreign key to the
// record it describes, so entries outlive deleted records.
type OperationLog struct {
    ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
    Operation Operation       `gorm:"size:16;not null" json:"operation"` // CREATE, READ, UPDATE, DELETE
    Status    OperationStatus `gorm:"size:16;not null" json:"status"`    // success, error
    Message   string          `gorm:"type:text;not null" json:"message"`
    Details   *string         `gorm:"type:text" json:"details"`
    Metadata  datatypes.JSON  `gorm:"type:json" json:"metadata,omitempty"` // request id, client ip, user agent
    Timestamp time.Time       `gorm:"not null;index" json:"timestamp"`
}

// OperationLogEntry is what the service hands to the log store; id and
// timestamp are assigned on insert.
type OperationLogEntry struct {
    Operation Operation
    Status    OperationStatus
    Message   string
    Details   *string
    Metadata  datatypes.JSON
}
