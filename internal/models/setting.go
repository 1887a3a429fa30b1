package models

import (
	"time"

	"github.com/google/uuid"
)

// SettingKey is the closed set of global toggles. Anything outside this
// enumeration is rejected on write.
type SettingKey string

const (
	SettingFacultyCanPost SettingKey = "faculty_can_post_jobs"
	SettingRepCanPost     SettingKey = "rep_can_post_jobs"
)

func ValidSettingKey(k SettingKey) bool {
	switch k {
	case SettingFacultyCanPost, SettingRepCanPost:
		return true
	}
	return false
}

type AppSetting struct {
	Key       SettingKey `gorm:"type:varchar(50);primaryKey" json:"key"`
	Value     bool       `gorm:"not null" json:"value"`
	UpdatedBy uuid.UUID  `gorm:"type:uuid" json:"updated_by"`
	UpdatedAt time.Time  `json:"updated_at"`
}
