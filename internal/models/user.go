package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleRep     Role = "rep"
	RoleAdmin   Role = "admin"
)

// ValidRegistrationRole reports whether a role can be chosen at registration.
// Admin accounts are only created by the seed tool, never via registration.
func ValidRegistrationRole(r Role) bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleRep:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Email        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"` // Never expose password hash in JSON
	Role         Role      `gorm:"type:varchar(20);not null;default:'student'" json:"role"`

	// Students are active immediately; rep and faculty accounts start
	// inactive until an admin approves them.
	IsActive bool `gorm:"not null;default:false" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
