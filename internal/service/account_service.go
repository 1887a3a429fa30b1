package service

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/campushire/jobboard/internal/auditlog"
	"github.com/campushire/jobboard/internal/models"
	"github.com/campushire/jobboard/internal/repository"
	"github.com/campushire/jobboard/internal/revocation"
	"github.com/campushire/jobboard/pkg/logger"

	"github.com/google/uuid"
)

// Each deletion step surfaces its own error so callers can tell exactly
// how far the workflow got.
var (
	ErrAuditSnapshotFailed   = errors.New("failed to record audit snapshot")
	ErrCleanupFailed         = errors.New("failed to clean up user records")
	ErrDirectoryUpdateFailed = errors.New("failed to remove user from directory")
	ErrRevocationFailed      = errors.New("failed to revoke credentials")
	ErrDeleteNotAllowed      = errors.New("not allowed to delete this account")
)

// AccountService runs the account-deletion workflow:
//
//  1. snapshot the user into an audit record (DB row + journal entry)
//  2. role-specific cleanup (delete a student's applications and saved
//     jobs; detach a rep/faculty member's postings)
//  3. anonymize (admin-initiated) or hard-delete (self-initiated) the
//     directory row
//  4. revoke outstanding credentials
//
// Step 1 failing aborts everything. After that, completed steps are NOT
// rolled back: the cleanup is deliberately best-effort rather than
// transactional, trading atomicity for a workflow that can always be
// re-run by an admin. A failure partway leaves the audit record in place,
// which is the state we prefer to err towards.
type AccountService struct {
	userRepo        *repository.UserRepository
	postingRepo     *repository.PostingRepository
	applicationRepo *repository.ApplicationRepository
	savedJobRepo    *repository.SavedJobRepository
	auditRepo       *repository.AuditRepository
	journal         *auditlog.Journal
	revoker         revocation.Store
	revokeTTL       time.Duration
}

func NewAccountService(
	userRepo *repository.UserRepository,
	postingRepo *repository.PostingRepository,
	applicationRepo *repository.ApplicationRepository,
	savedJobRepo *repository.SavedJobRepository,
	auditRepo *repository.AuditRepository,
	journal *auditlog.Journal,
	revoker revocation.Store,
	revokeTTL time.Duration,
) *AccountService {
	return &AccountService{
		userRepo:        userRepo,
		postingRepo:     postingRepo,
		applicationRepo: applicationRepo,
		savedJobRepo:    savedJobRepo,
		auditRepo:       auditRepo,
		journal:         journal,
		revoker:         revoker,
		revokeTTL:       revokeTTL,
	}
}

// DeleteAccount removes a user. Admin-initiated deletions anonymize the
// directory row in place; self-initiated deletions hard-delete it.
func (s *AccountService) DeleteAccount(targetID uuid.UUID, initiator *models.User, reason string) error {
	target, err := s.userRepo.GetUserByID(targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	selfInitiated := initiator.ID == target.ID
	if !selfInitiated && initiator.Role != models.RoleAdmin {
		return ErrDeleteNotAllowed
	}

	deletedBy := "self"
	if !selfInitiated {
		deletedBy = initiator.Email
	}

	logger.Log.Info("Account deletion started",
		zap.String("user_id", target.ID.String()),
		zap.String("role", string(target.Role)),
		zap.String("deleted_by", deletedBy),
	)

	// Step 1: audit snapshot. Both the journal entry and the DB record
	// must land before anything is touched; failure here aborts the whole
	// deletion with nothing changed.
	if err := s.snapshot(target, deletedBy, reason); err != nil {
		logger.Log.Error("Account deletion aborted at audit snapshot",
			zap.String("user_id", target.ID.String()),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrAuditSnapshotFailed, err)
	}

	// Step 2: role-specific cleanup
	if err := s.cleanup(target); err != nil {
		logger.Log.Error("Account deletion failed at cleanup",
			zap.String("user_id", target.ID.String()),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrCleanupFailed, err)
	}

	// Step 3: directory row
	if selfInitiated {
		err = s.userRepo.HardDelete(target.ID)
	} else {
		err = s.userRepo.Anonymize(target.ID)
	}
	if err != nil {
		logger.Log.Error("Account deletion failed at directory update",
			zap.String("user_id", target.ID.String()),
			zap.Bool("self_initiated", selfInitiated),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrDirectoryUpdateFailed, err)
	}

	// Step 4: credential revocation
	if err := s.revoker.Revoke(target.ID, s.revokeTTL); err != nil {
		logger.Log.Error("Account deletion failed at credential revocation",
			zap.String("user_id", target.ID.String()),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrRevocationFailed, err)
	}

	logger.Log.Info("Account deletion completed",
		zap.String("user_id", target.ID.String()),
		zap.String("deleted_by", deletedBy),
	)

	return nil
}

func (s *AccountService) snapshot(target *models.User, deletedBy, reason string) error {
	if err := s.journal.Write(auditlog.Entry{
		UserID:    target.ID.String(),
		Email:     target.Email,
		Role:      string(target.Role),
		DeletedBy: deletedBy,
		Reason:    reason,
		Timestamp: time.Now(),
	}); err != nil {
		return err
	}

	return s.auditRepo.CreateRecord(&models.AuditRecord{
		ID:        uuid.New(),
		UserID:    target.ID,
		Name:      target.Name,
		Email:     target.Email,
		Role:      target.Role,
		DeletedBy: deletedBy,
		Reason:    reason,
	})
}

func (s *AccountService) cleanup(target *models.User) error {
	switch target.Role {
	case models.RoleStudent:
		if err := s.applicationRepo.DeleteByStudent(target.ID); err != nil {
			return err
		}
		return s.savedJobRepo.DeleteByStudent(target.ID)
	case models.RoleRep, models.RoleFaculty:
		// Postings outlive their creator; detach instead of deleting
		return s.postingRepo.DetachCreator(target.ID)
	default:
		return nil
	}
}
