package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campushire/jobboard/internal/models"
	"github.com/campushire/jobboard/internal/policy"
	"github.com/campushire/jobboard/internal/repository"
	"github.com/campushire/jobboard/pkg/logger"
)

var (
	ErrPostingNotFound = errors.New("posting not found")
	ErrInvalidDeadline = errors.New("deadline must be a calendar date (YYYY-MM-DD)")
	ErrInvalidJobType  = errors.New("invalid job type")
	ErrMissingField    = errors.New("title, company and description are required")
	ErrDeleteForbidden = errors.New("only the owner or an admin can delete a posting")
)

// PostingInput carries the creator-editable fields of a posting.
type PostingInput struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Industry    string   `json:"industry"`
	JobType     string   `json:"job_type"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Deadline    string   `json:"deadline"` // YYYY-MM-DD
}

// PostingService routes every posting write through the policy engine and
// applies allowed decisions to the store.
type PostingService struct {
	postingRepo *repository.PostingRepository
	engine      *policy.Engine
	now         func() time.Time
}

func NewPostingService(postingRepo *repository.PostingRepository, engine *policy.Engine) *PostingService {
	return &PostingService{
		postingRepo: postingRepo,
		engine:      engine,
		now:         time.Now,
	}
}

// WithClock overrides the service clock. Test hook.
func (s *PostingService) WithClock(now func() time.Time) *PostingService {
	s.now = now
	return s
}

// Create makes a new posting. Faculty postings go live immediately; rep
// postings enter the pending moderation queue.
func (s *PostingService) Create(caller *models.User, input PostingInput) (*models.Posting, error) {
	deadline, err := s.validateInput(input)
	if err != nil {
		return nil, err
	}

	decision, err := s.engine.Decide(policy.Input{
		Action:       policy.ActionCreate,
		Role:         caller.Role,
		CallerID:     caller.ID,
		CallerActive: caller.IsActive,
	})
	if err != nil {
		logger.Log.Warn("Posting creation denied",
			zap.String("user_id", caller.ID.String()),
			zap.String("role", string(caller.Role)),
			zap.Error(err),
		)
		return nil, err
	}

	creatorID := caller.ID
	posting := &models.Posting{
		ID:          uuid.New(),
		Title:       input.Title,
		Company:     input.Company,
		Industry:    input.Industry,
		JobType:     models.JobType(input.JobType),
		Description: input.Description,
		Deadline:    deadline,
		Status:      decision.NextStatus,
		CreatedBy:   &creatorID,
	}
	posting.SetSkills(input.Skills)

	if err := s.postingRepo.CreatePosting(posting); err != nil {
		logger.Log.Error("Failed to create posting",
			zap.String("user_id", caller.ID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Posting created",
		zap.String("posting_id", posting.ID.String()),
		zap.String("created_by", caller.ID.String()),
		zap.String("status", string(posting.Status)),
	)

	return posting, nil
}

// Edit updates a posting's fields without changing its status. A rejected
// posting stays rejected until the creator resubmits it.
func (s *PostingService) Edit(caller *models.User, postingID uuid.UUID, input PostingInput) (*models.Posting, error) {
	deadline, err := s.validateInput(input)
	if err != nil {
		return nil, err
	}

	posting, err := s.loadPosting(postingID)
	if err != nil {
		return nil, err
	}

	if _, err := s.engine.Decide(policy.Input{
		Action:       policy.ActionEdit,
		Role:         caller.Role,
		CallerID:     caller.ID,
		CallerActive: caller.IsActive,
		Posting:      posting,
	}); err != nil {
		return nil, err
	}

	posting.Title = input.Title
	posting.Company = input.Company
	posting.Industry = input.Industry
	posting.JobType = models.JobType(input.JobType)
	posting.Description = input.Description
	posting.Deadline = deadline
	posting.SetSkills(input.Skills)

	fields := map[string]interface{}{
		"title":       posting.Title,
		"company":     posting.Company,
		"industry":    posting.Industry,
		"job_type":    posting.JobType,
		"description": posting.Description,
		"skills":      posting.Skills,
		"deadline":    posting.Deadline,
	}
	if err := s.postingRepo.UpdateFields(postingID, fields); err != nil {
		logger.Log.Error("Failed to update posting",
			zap.String("posting_id", postingID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Posting edited",
		zap.String("posting_id", postingID.String()),
		zap.String("edited_by", caller.ID.String()),
	)

	return posting, nil
}

// Resubmit sends a rejected posting back to the moderation queue.
func (s *PostingService) Resubmit(caller *models.User, postingID uuid.UUID) (*models.Posting, error) {
	return s.transition(caller, postingID, policy.ActionResubmit, nil, time.Time{})
}

// Approve moves a pending posting live. Admin only.
func (s *PostingService) Approve(caller *models.User, postingID uuid.UUID) (*models.Posting, error) {
	return s.transition(caller, postingID, policy.ActionApprove, nil, time.Time{})
}

// Reject declines a pending posting with an optional note. An empty note
// is stored as null.
func (s *PostingService) Reject(caller *models.User, postingID uuid.UUID, note string) (*models.Posting, error) {
	var notePtr *string
	if note != "" {
		notePtr = &note
	}
	return s.transition(caller, postingID, policy.ActionReject, notePtr, time.Time{})
}

// Remove takes an active posting down. Admin only.
func (s *PostingService) Remove(caller *models.User, postingID uuid.UUID) (*models.Posting, error) {
	return s.transition(caller, postingID, policy.ActionRemove, nil, time.Time{})
}

// Reactivate brings an expired posting back with a new future deadline.
func (s *PostingService) Reactivate(caller *models.User, postingID uuid.UUID, newDeadline string) (*models.Posting, error) {
	deadline, err := parseDeadline(newDeadline)
	if err != nil {
		return nil, ErrInvalidDeadline
	}
	return s.transition(caller, postingID, policy.ActionReactivate, nil, deadline)
}

// transition runs one policy-gated status change. The rejection note is
// cleared on every transition whose target is not rejected.
func (s *PostingService) transition(caller *models.User, postingID uuid.UUID, action policy.Action, note *string, newDeadline time.Time) (*models.Posting, error) {
	posting, err := s.loadPosting(postingID)
	if err != nil {
		return nil, err
	}

	decision, err := s.engine.Decide(policy.Input{
		Action:       action,
		Role:         caller.Role,
		CallerID:     caller.ID,
		CallerActive: caller.IsActive,
		Posting:      posting,
		NewDeadline:  newDeadline,
	})
	if err != nil {
		logger.Log.Warn("Posting transition denied",
			zap.String("posting_id", postingID.String()),
			zap.String("action", string(action)),
			zap.String("user_id", caller.ID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	fields := map[string]interface{}{
		"status": decision.NextStatus,
	}
	if decision.NextStatus == models.StatusRejected {
		fields["rejection_note"] = note
	} else {
		fields["rejection_note"] = nil
	}
	if action == policy.ActionReactivate {
		fields["deadline"] = newDeadline
	}

	if err := s.postingRepo.UpdateFields(postingID, fields); err != nil {
		logger.Log.Error("Failed to apply posting transition",
			zap.String("posting_id", postingID.String()),
			zap.String("action", string(action)),
			zap.Error(err),
		)
		return nil, err
	}

	posting.Status = decision.NextStatus
	if decision.NextStatus == models.StatusRejected {
		posting.RejectionNote = note
	} else {
		posting.RejectionNote = nil
	}
	if action == policy.ActionReactivate {
		posting.Deadline = newDeadline
	}

	logger.Log.Info("Posting transition applied",
		zap.String("posting_id", postingID.String()),
		zap.String("action", string(action)),
		zap.String("new_status", string(decision.NextStatus)),
		zap.String("user_id", caller.ID.String()),
	)

	return posting, nil
}

// Delete removes the posting row entirely. Owner or admin only.
func (s *PostingService) Delete(caller *models.User, postingID uuid.UUID) error {
	posting, err := s.loadPosting(postingID)
	if err != nil {
		return err
	}

	if caller.Role != models.RoleAdmin && !posting.OwnedBy(caller.ID) {
		return ErrDeleteForbidden
	}

	if err := s.postingRepo.DeletePosting(postingID); err != nil {
		logger.Log.Error("Failed to delete posting",
			zap.String("posting_id", postingID.String()),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Posting deleted",
		zap.String("posting_id", postingID.String()),
		zap.String("deleted_by", caller.ID.String()),
	)
	return nil
}

// List returns the postings visible to the caller, ordered. Anonymous
// callers pass a nil user and see the public (student) view.
func (s *PostingService) List(caller *models.User, order policy.Order) ([]models.Posting, error) {
	postings, err := s.postingRepo.GetAll()
	if err != nil {
		logger.Log.Error("Failed to list postings", zap.Error(err))
		return nil, err
	}

	role := models.RoleStudent
	callerID := uuid.Nil
	if caller != nil {
		role = caller.Role
		callerID = caller.ID
	}

	return policy.Visible(postings, role, callerID, s.now(), order), nil
}

// ListByStatus returns the admin moderation queue for one status
func (s *PostingService) ListByStatus(status models.PostingStatus) ([]models.Posting, error) {
	return s.postingRepo.GetByStatus(status)
}

// MyPostings returns the caller's own postings regardless of status
func (s *PostingService) MyPostings(caller *models.User) ([]models.Posting, error) {
	return s.postingRepo.GetByCreator(caller.ID)
}

// GetPosting loads one posting, applying the visibility rules for the caller
func (s *PostingService) GetPosting(caller *models.User, postingID uuid.UUID) (*models.Posting, error) {
	posting, err := s.loadPosting(postingID)
	if err != nil {
		return nil, err
	}

	role := models.RoleStudent
	callerID := uuid.Nil
	if caller != nil {
		role = caller.Role
		callerID = caller.ID
	}

	visible := policy.Visible([]models.Posting{*posting}, role, callerID, s.now(), policy.OrderNewest)
	if len(visible) == 0 {
		// Hidden postings are indistinguishable from absent ones
		return nil, ErrPostingNotFound
	}
	return posting, nil
}

func (s *PostingService) loadPosting(postingID uuid.UUID) (*models.Posting, error) {
	posting, err := s.postingRepo.GetPostingByID(postingID)
	if err != nil {
		logger.Log.Error("Failed to load posting",
			zap.String("posting_id", postingID.String()),
			zap.Error(err),
		)
		return nil, err
	}
	if posting == nil {
		return nil, ErrPostingNotFound
	}
	return posting, nil
}

func (s *PostingService) validateInput(input PostingInput) (time.Time, error) {
	if input.Title == "" || input.Company == "" || input.Description == "" {
		return time.Time{}, ErrMissingField
	}
	if !models.ValidJobType(models.JobType(input.JobType)) {
		return time.Time{}, ErrInvalidJobType
	}
	deadline, err := parseDeadline(input.Deadline)
	if err != nil {
		return time.Time{}, ErrInvalidDeadline
	}
	return deadline, nil
}

// parseDeadline accepts calendar dates only; datetimes are rejected.
func parseDeadline(value string) (time.Time, error) {
	return time.Parse(models.DeadlineLayout, value)
}
