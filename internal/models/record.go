package models

import "time"

type RecordRole string

const (
    RoleAdmin  RecordRole = "admin"
    RoleEditor RecordRole = "editor"
    RoleViewer RecordRole = "viewer"
)

type RecordStatus string

const (
    RecordActive   RecordStatus = "active"
    RecordInactive RecordStatus = "inactive"
)

// Record is the entity managed by the test bench.
type Record struct {
    ID        int64        `gorm:"primaryKey;autoIncrement" json:"id"`
    Name      string       `gorm:"type:text;not null" json:"name"`
    Email     string       `gorm:"type:text;not null" json:"email"`
    Role      RecordRole   `gorm:"size:16;not null;default:viewer" json:"role"`
    Status    RecordStatus `gorm:"size:16;not null;default:active" json:"status"`
    Notes     *string      `gorm:"type:text" json:"notes"`
    CreatedAt time.Time    `gorm:"not null;index" json:"createdAt"`
    UpdatedAt time.Time    `gorm:"not null" json:"updatedAt"`
}

// RecordInput carries the caller-supplied fields of a new record.
type RecordInput struct {
    Name   string
    Email  string
    Role   RecordRole
    Status RecordStatus
    Notes  *string
}

// RecordPatch holds the fields of a partial update. Nil means "leave as is".
type RecordPatch struct {
    Name   *string
    Email  *string
    Role   *RecordRole
    Status *RecordStatus
    Notes  *string
}

// Empty reports whether the patch sets no field at all.
func (p RecordPatch) Empty() bool {
    return p.Name == nil && p.Email == nil && p.Role == nil && p.Status == nil && p.Notes == nil
}
