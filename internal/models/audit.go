package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord is a write-once snapshot of a user taken before deletion.
// It is created exactly once per deletion event and never updated.
type AuditRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"type:varchar(100);not null" json:"email"`
	Role      Role      `gorm:"type:varchar(20);not null" json:"role"`
	DeletedBy string    `gorm:"type:varchar(100);not null" json:"deleted_by"` // "self" or the admin's email
	Reason    string    `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
