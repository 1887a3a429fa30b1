package models

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	AppStatusApplied   ApplicationStatus = "applied"
	AppStatusViewed    ApplicationStatus = "viewed"
	AppStatusInterview ApplicationStatus = "interview"
	AppStatusHired     ApplicationStatus = "hired"
	AppStatusRejected  ApplicationStatus = "rejected"
)

func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case AppStatusApplied, AppStatusViewed, AppStatusInterview, AppStatusHired, AppStatusRejected:
		return true
	}
	return false
}

// Application links a student to a posting. The composite unique index is
// the real guard against duplicate applications; the service-level check
// only exists to return a friendlier error before the insert.
type Application struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	JobID     uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_job_student" json:"job_id"`
	StudentID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_job_student" json:"student_id"`
	Status    ApplicationStatus `gorm:"type:varchar(20);not null;default:'applied'" json:"status"`
	AppliedAt time.Time         `json:"applied_at"`

	Posting Posting `gorm:"foreignKey:JobID" json:"-"`
}
