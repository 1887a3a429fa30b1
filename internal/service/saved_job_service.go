package service

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campushire/jobboard/internal/models"
	"github.com/campushire/jobboard/internal/repository"
	"github.com/campushire/jobboard/pkg/logger"
)

var ErrAlreadySaved = errors.New("posting already saved")

type SavedJobService struct {
	savedJobRepo *repository.SavedJobRepository
	postingRepo  *repository.PostingRepository
}

func NewSavedJobService(savedJobRepo *repository.SavedJobRepository, postingRepo *repository.PostingRepository) *SavedJobService {
	return &SavedJobService{
		savedJobRepo: savedJobRepo,
		postingRepo:  postingRepo,
	}
}

// Save bookmarks a posting for a student
func (s *SavedJobService) Save(caller *models.User, jobID uuid.UUID) (*models.SavedJob, error) {
	if caller.Role != models.RoleStudent {
		return nil, ErrNotStudent
	}

	posting, err := s.postingRepo.GetPostingByID(jobID)
	if err != nil {
		return nil, err
	}
	if posting == nil {
		return nil, ErrPostingNotFound
	}

	saved := &models.SavedJob{
		ID:        uuid.New(),
		JobID:     jobID,
		StudentID: caller.ID,
	}

	if err := s.savedJobRepo.CreateSavedJob(saved); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadySaved
		}
		logger.Log.Error("Failed to save posting",
			zap.String("job_id", jobID.String()),
			zap.String("student_id", caller.ID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	return saved, nil
}

// Unsave removes a bookmark; removing a missing bookmark is a no-op
func (s *SavedJobService) Unsave(caller *models.User, jobID uuid.UUID) error {
	return s.savedJobRepo.DeleteSavedJob(jobID, caller.ID)
}

// List returns the caller's bookmarks
func (s *SavedJobService) List(caller *models.User) ([]models.SavedJob, error) {
	return s.savedJobRepo.GetByStudent(caller.ID)
}
