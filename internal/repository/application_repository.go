package repository

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campushire/jobboard/internal/models"
)

// ErrDuplicate is returned when an insert trips a uniqueness constraint.
// The constraint is the real guard against check-then-insert races.
var ErrDuplicate = errors.New("duplicate record")

// isDuplicateKey matches unique-violation errors across postgres and the
// sqlite driver used in tests.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) CreateApplication(app *models.Application) error {
	err := r.db.Create(app).Error
	if isDuplicateKey(err) {
		return ErrDuplicate
	}
	return err
}

func (r *ApplicationRepository) GetByJobAndStudent(jobID, studentID uuid.UUID) (*models.Application, error) {
	var app models.Application
	err := r.db.
		Where("job_id = ? AND student_id = ?", jobID, studentID).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByStudent(studentID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.
		Where("student_id = ?", studentID).
		Order("applied_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepository) GetByJob(jobID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.
		Where("job_id = ?", jobID).
		Order("applied_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepository) UpdateStatus(id uuid.UUID, status models.ApplicationStatus) error {
	return r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *ApplicationRepository) GetByID(id uuid.UUID) (*models.Application, error) {
	var app models.Application
	err := r.db.Where("id = ?", id).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

// DeleteByStudent removes all of a student's applications (account deletion)
func (r *ApplicationRepository) DeleteByStudent(studentID uuid.UUID) error {
	return r.db.Delete(&models.Application{}, "student_id = ?", studentID).Error
}
