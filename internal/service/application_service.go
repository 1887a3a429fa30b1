package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campushire/jobboard/internal/models"
	"github.com/campushire/jobboard/internal/repository"
	"github.com/campushire/jobboard/pkg/logger"
)

var (
	ErrAlreadyApplied       = errors.New("already applied to this posting")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrPostingClosed        = errors.New("posting is not accepting applications")
	ErrNotStudent           = errors.New("only students can apply")
	ErrInactiveAccount      = errors.New("inactive account")
	ErrNotPostingOwner      = errors.New("only the posting owner can manage its applications")
	ErrInvalidApplicationStatus = errors.New("invalid application status")
)

type ApplicationService struct {
	applicationRepo *repository.ApplicationRepository
	postingRepo     *repository.PostingRepository
	now             func() time.Time
}

func NewApplicationService(applicationRepo *repository.ApplicationRepository, postingRepo *repository.PostingRepository) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		postingRepo:     postingRepo,
		now:             time.Now,
	}
}

// WithClock overrides the service clock. Test hook.
func (s *ApplicationService) WithClock(now func() time.Time) *ApplicationService {
	s.now = now
	return s
}

// Apply records a student's application to an active, unexpired posting.
// The (job, student) uniqueness constraint at the store is the final word
// on duplicates; a second attempt always returns ErrAlreadyApplied.
func (s *ApplicationService) Apply(caller *models.User, jobID uuid.UUID) (*models.Application, error) {
	if caller.Role != models.RoleStudent {
		return nil, ErrNotStudent
	}
	if !caller.IsActive {
		return nil, ErrInactiveAccount
	}

	posting, err := s.postingRepo.GetPostingByID(jobID)
	if err != nil {
		logger.Log.Error("Failed to load posting for application",
			zap.String("job_id", jobID.String()),
			zap.Error(err),
		)
		return nil, err
	}
	if posting == nil {
		return nil, ErrPostingNotFound
	}
	if posting.Status != models.StatusActive || posting.Expired(s.now()) {
		return nil, ErrPostingClosed
	}

	// Friendlier error before the insert; the constraint still catches the
	// check-then-insert race.
	existing, err := s.applicationRepo.GetByJobAndStudent(jobID, caller.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyApplied
	}

	app := &models.Application{
		ID:        uuid.New(),
		JobID:     jobID,
		StudentID: caller.ID,
		Status:    models.AppStatusApplied,
		AppliedAt: s.now(),
	}

	if err := s.applicationRepo.CreateApplication(app); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyApplied
		}
		logger.Log.Error("Failed to create application",
			zap.String("job_id", jobID.String()),
			zap.String("student_id", caller.ID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Application submitted",
		zap.String("application_id", app.ID.String()),
		zap.String("job_id", jobID.String()),
		zap.String("student_id", caller.ID.String()),
	)

	return app, nil
}

// ListForStudent returns the caller's own applications
func (s *ApplicationService) ListForStudent(caller *models.User) ([]models.Application, error) {
	return s.applicationRepo.GetByStudent(caller.ID)
}

// ListForPosting returns a posting's applications to its owner or an admin
func (s *ApplicationService) ListForPosting(caller *models.User, jobID uuid.UUID) ([]models.Application, error) {
	posting, err := s.postingRepo.GetPostingByID(jobID)
	if err != nil {
		return nil, err
	}
	if posting == nil {
		return nil, ErrPostingNotFound
	}
	if caller.Role != models.RoleAdmin && !posting.OwnedBy(caller.ID) {
		return nil, ErrNotPostingOwner
	}

	return s.applicationRepo.GetByJob(jobID)
}

// UpdateStatus advances an application. Only the owner of the referenced
// posting may do this.
func (s *ApplicationService) UpdateStatus(caller *models.User, applicationID uuid.UUID, status models.ApplicationStatus) (*models.Application, error) {
	if !models.ValidApplicationStatus(status) {
		return nil, ErrInvalidApplicationStatus
	}

	app, err := s.applicationRepo.GetByID(applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}

	posting, err := s.postingRepo.GetPostingByID(app.JobID)
	if err != nil {
		return nil, err
	}
	if posting == nil || !posting.OwnedBy(caller.ID) {
		return nil, ErrNotPostingOwner
	}

	if err := s.applicationRepo.UpdateStatus(applicationID, status); err != nil {
		logger.Log.Error("Failed to update application status",
			zap.String("application_id", applicationID.String()),
			zap.Error(err),
		)
		return nil, err
	}
	app.Status = status

	logger.Log.Info("Application status updated",
		zap.String("application_id", applicationID.String()),
		zap.String("status", string(status)),
		zap.String("updated_by", caller.ID.String()),
	)

	return app, nil
}
