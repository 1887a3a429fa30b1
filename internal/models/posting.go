package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type PostingStatus string

const (
	StatusPending  PostingStatus = "pending"
	StatusActive   PostingStatus = "active"
	StatusRemoved  PostingStatus = "removed"
	StatusRejected PostingStatus = "rejected"
)

type JobType string

const (
	JobTypeInternship JobType = "Internship"
	JobTypePartTime   JobType = "Part-Time"
	JobTypeFullTime   JobType = "Full-Time"
)

func ValidJobType(jt JobType) bool {
	switch jt {
	case JobTypeInternship, JobTypePartTime, JobTypeFullTime:
		return true
	}
	return false
}

// DeadlineLayout is the calendar-date format postings use on the wire.
// Deadlines carry no time component; expiry checks compare whole days.
const DeadlineLayout = "2006-01-02"

type Posting struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string        `gorm:"type:varchar(200);not null" json:"title"`
	Company     string        `gorm:"type:varchar(100);not null" json:"company"`
	Industry    string        `gorm:"type:varchar(100)" json:"industry"`
	JobType     JobType       `gorm:"type:varchar(20);not null" json:"job_type"`
	Description string        `gorm:"type:text;not null" json:"description"`
	Skills      string        `gorm:"type:text" json:"-"` // comma-joined, see SkillList
	Deadline    time.Time     `gorm:"type:date;not null;index" json:"deadline"`
	Status      PostingStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	// Present only while Status is rejected; cleared on any transition away.
	RejectionNote *string `gorm:"type:text" json:"rejection_note,omitempty"`

	// Nullable: the posting survives its creator's deletion.
	CreatedBy *uuid.UUID `gorm:"type:uuid;index" json:"created_by,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SkillList splits the stored skills column back into its ordered form.
func (p *Posting) SkillList() []string {
	if p.Skills == "" {
		return nil
	}
	return strings.Split(p.Skills, ",")
}

// SetSkills stores an ordered skill sequence, dropping empty entries.
func (p *Posting) SetSkills(skills []string) {
	var kept []string
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s != "" {
			kept = append(kept, s)
		}
	}
	p.Skills = strings.Join(kept, ",")
}

// Expired reports whether the deadline has passed relative to the given day.
func (p *Posting) Expired(today time.Time) bool {
	return p.Deadline.Before(truncateToDay(today))
}

// OwnedBy reports whether the posting still belongs to the given user.
// A detached posting (creator deleted) is owned by nobody.
func (p *Posting) OwnedBy(userID uuid.UUID) bool {
	return p.CreatedBy != nil && *p.CreatedBy == userID
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
