package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campushire/jobboard/internal/models"
)

type PostingRepository struct {
	db *gorm.DB
}

func NewPostingRepository(db *gorm.DB) *PostingRepository {
	return &PostingRepository{db: db}
}

func (r *PostingRepository) CreatePosting(posting *models.Posting) error {
	return r.db.Create(posting).Error
}

func (r *PostingRepository) GetPostingByID(id uuid.UUID) (*models.Posting, error) {
	var posting models.Posting
	err := r.db.Where("id = ?", id).First(&posting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &posting, nil
}

// UpdateFields applies a partial update to a posting.
// Concurrent moderation actions resolve by last-write-wins at the store;
// there is no optimistic locking on the status column.
func (r *PostingRepository) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	return r.db.Model(&models.Posting{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// GetAll returns every posting regardless of status (admin views)
func (r *PostingRepository) GetAll() ([]models.Posting, error) {
	var postings []models.Posting
	err := r.db.Order("created_at DESC").Find(&postings).Error
	return postings, err
}

// GetByCreator returns a creator's postings regardless of status
func (r *PostingRepository) GetByCreator(creatorID uuid.UUID) ([]models.Posting, error) {
	var postings []models.Posting
	err := r.db.
		Where("created_by = ?", creatorID).
		Order("created_at DESC").
		Find(&postings).Error
	return postings, err
}

func (r *PostingRepository) GetByStatus(status models.PostingStatus) ([]models.Posting, error) {
	var postings []models.Posting
	err := r.db.
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&postings).Error
	return postings, err
}

// GetActiveNotExpired returns active postings whose deadline is today or later
func (r *PostingRepository) GetActiveNotExpired(today time.Time) ([]models.Posting, error) {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	var postings []models.Posting
	err := r.db.
		Where("status = ? AND deadline >= ?", models.StatusActive, day).
		Order("created_at DESC").
		Find(&postings).Error
	return postings, err
}

// DetachCreator nulls created_by on all of a creator's postings so the
// postings survive the creator's deletion.
func (r *PostingRepository) DetachCreator(creatorID uuid.UUID) error {
	return r.db.Model(&models.Posting{}).
		Where("created_by = ?", creatorID).
		Update("created_by", nil).Error
}

// DeletePosting removes the row. Status changes are the normal end-of-life
// path; this exists only for explicit owner/admin deletion.
func (r *PostingRepository) DeletePosting(id uuid.UUID) error {
	return r.db.Delete(&models.Posting{}, "id = ?", id).Error
}
