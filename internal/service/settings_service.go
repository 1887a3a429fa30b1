package service

import (
	"errors"

	"go.uber.org/zap"

	"github.com/campushire/jobboard/internal/models"
	"github.com/campushire/jobboard/internal/repository"
	"github.com/campushire/jobboard/pkg/logger"
)

var (
	ErrInvalidSettingKey = errors.New("unknown setting key")
	ErrSettingsForbidden = errors.New("only an active admin can change settings")
)

// failOpenDefault is what Get reports for a toggle with no stored row.
// Fail-open is deliberate: a missing row must not silently block an entire
// role from posting.
const failOpenDefault = true

// SettingsService owns the global posting toggles. It satisfies
// policy.ToggleSource, so the policy engine reads toggles through it.
type SettingsService struct {
	settingRepo *repository.SettingRepository
}

func NewSettingsService(settingRepo *repository.SettingRepository) *SettingsService {
	return &SettingsService{settingRepo: settingRepo}
}

// Get returns the stored value for a toggle, or the fail-open default when
// no row exists yet.
func (s *SettingsService) Get(key models.SettingKey) (bool, error) {
	setting, err := s.settingRepo.GetSetting(key)
	if err != nil {
		logger.Log.Error("Failed to read setting",
			zap.String("key", string(key)),
			zap.Error(err),
		)
		return false, err
	}
	if setting == nil {
		return failOpenDefault, nil
	}
	return setting.Value, nil
}

// GetAll returns both toggles with defaults filled in for missing rows.
func (s *SettingsService) GetAll() (map[models.SettingKey]bool, error) {
	stored, err := s.settingRepo.GetAllSettings()
	if err != nil {
		logger.Log.Error("Failed to read settings", zap.Error(err))
		return nil, err
	}

	out := map[models.SettingKey]bool{
		models.SettingFacultyCanPost: failOpenDefault,
		models.SettingRepCanPost:     failOpenDefault,
	}
	for k, v := range stored {
		out[k] = v
	}
	return out, nil
}

// Set writes a toggle. Denied unless the actor is an active admin; keys
// outside the closed enumeration are rejected.
func (s *SettingsService) Set(key models.SettingKey, value bool, actor *models.User) error {
	if actor == nil || actor.Role != models.RoleAdmin || !actor.IsActive {
		logger.Log.Warn("Settings change denied",
			zap.String("key", string(key)),
		)
		return ErrSettingsForbidden
	}
	if !models.ValidSettingKey(key) {
		return ErrInvalidSettingKey
	}

	if err := s.settingRepo.UpsertSetting(key, value, actor.ID); err != nil {
		logger.Log.Error("Failed to write setting",
			zap.String("key", string(key)),
			zap.Bool("value", value),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Setting updated",
		zap.String("key", string(key)),
		zap.Bool("value", value),
		zap.String("updated_by", actor.ID.String()),
	)
	return nil
}
