package models

import (
	"time"

	"github.com/google/uuid"
)

// SavedJob is a student's bookmark on a posting.
type SavedJob struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	JobID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_job_student" json:"job_id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_job_student" json:"student_id"`
	CreatedAt time.Time `json:"created_at"`

	Posting Posting `gorm:"foreignKey:JobID" json:"-"`
}
