package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campushire/jobboard/internal/models"
)

type SavedJobRepository struct {
	db *gorm.DB
}

func NewSavedJobRepository(db *gorm.DB) *SavedJobRepository {
	return &SavedJobRepository{db: db}
}

func (r *SavedJobRepository) CreateSavedJob(saved *models.SavedJob) error {
	err := r.db.Create(saved).Error
	if isDuplicateKey(err) {
		return ErrDuplicate
	}
	return err
}

func (r *SavedJobRepository) GetByStudent(studentID uuid.UUID) ([]models.SavedJob, error) {
	var saved []models.SavedJob
	err := r.db.
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&saved).Error
	return saved, err
}

func (r *SavedJobRepository) DeleteSavedJob(jobID, studentID uuid.UUID) error {
	return r.db.
		Where("job_id = ? AND student_id = ?", jobID, studentID).
		Delete(&models.SavedJob{}).Error
}

// DeleteByStudent removes all of a student's saved jobs (account deletion)
func (r *SavedJobRepository) DeleteByStudent(studentID uuid.UUID) error {
	return r.db.Delete(&models.SavedJob{}, "student_id = ?", studentID).Error
}
