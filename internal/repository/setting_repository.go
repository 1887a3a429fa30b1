package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campushire/jobboard/internal/models"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSetting returns nil, nil when the row does not exist; the service
// layer decides what a missing row means.
func (r *SettingRepository) GetSetting(key models.SettingKey) (*models.AppSetting, error) {
	var setting models.AppSetting
	err := r.db.Where("key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (r *SettingRepository) GetAllSettings() (map[models.SettingKey]bool, error) {
	var settings []models.AppSetting
	if err := r.db.Find(&settings).Error; err != nil {
		return nil, err
	}

	out := make(map[models.SettingKey]bool, len(settings))
	for _, s := range settings {
		out[s.Key] = s.Value
	}
	return out, nil
}

// UpsertSetting writes a toggle. Concurrent writes resolve by whichever
// lands last at the store.
func (r *SettingRepository) UpsertSetting(key models.SettingKey, value bool, updatedBy uuid.UUID) error {
	setting := models.AppSetting{
		Key:       key,
		Value:     value,
		UpdatedBy: updatedBy,
		UpdatedAt: time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_by", "updated_at"}),
	}).Create(&setting).Error
}
