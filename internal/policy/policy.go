package policy

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campushire/jobboard/internal/models"
)

// Action is a requested posting transition.
type Action string

const (
	ActionCreate     Action = "create"
	ActionApprove    Action = "approve"
	ActionReject     Action = "reject"
	ActionRemove     Action = "remove"
	ActionReactivate Action = "reactivate"
	ActionEdit       Action = "edit"
	ActionResubmit   Action = "resubmit"
)

// Reason is the machine-readable code attached to every denial.
type Reason string

const (
	ReasonNotOwner          Reason = "not-owner"
	ReasonInactive          Reason = "inactive"
	ReasonToggleDisabled    Reason = "toggle-disabled"
	ReasonInvalidTransition Reason = "invalid-transition"
	ReasonInvalidDate       Reason = "invalid-date"
)

// Denial is returned instead of a Decision when a transition is refused.
// It is an error so services can pass it straight up to handlers.
type Denial struct {
	Reason  Reason
	Message string
}

func (d *Denial) Error() string {
	return fmt.Sprintf("denied (%s): %s", d.Reason, d.Message)
}

func deny(reason Reason, message string) error {
	return &Denial{Reason: reason, Message: message}
}

// AsDenial unwraps a policy denial from an error chain.
func AsDenial(err error) (*Denial, bool) {
	var d *Denial
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}

// ToggleSource provides the global posting toggles. The engine reads it on
// every create request from a gated role; it never caches.
type ToggleSource interface {
	Get(key models.SettingKey) (bool, error)
}

// Input carries everything a decision needs. Posting is nil for create.
type Input struct {
	Action       Action
	Role         models.Role
	CallerID     uuid.UUID
	CallerActive bool
	Posting      *models.Posting

	// NewDeadline is consulted by reactivate only; it must be a calendar
	// date strictly in the future.
	NewDeadline time.Time
}

// Decision is the computed outcome of an allowed action.
type Decision struct {
	NextStatus models.PostingStatus
}

// Engine is the single authorization point for every posting write path.
// It performs no writes itself; callers apply the decision to the store.
type Engine struct {
	toggles ToggleSource
	now     func() time.Time
}

func NewEngine(toggles ToggleSource) *Engine {
	return &Engine{
		toggles: toggles,
		now:     time.Now,
	}
}

// WithClock overrides the engine's clock. Test hook.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Decide evaluates a requested action and either returns the resulting
// posting status or a Denial. It never partially applies anything.
func (e *Engine) Decide(in Input) (Decision, error) {
	if !in.CallerActive {
		return Decision{}, deny(ReasonInactive, "inactive account")
	}

	switch in.Action {
	case ActionCreate:
		return e.decideCreate(in)
	case ActionApprove:
		return e.decideAdmin(in, models.StatusPending, models.StatusActive)
	case ActionReject:
		return e.decideAdmin(in, models.StatusPending, models.StatusRejected)
	case ActionRemove:
		return e.decideAdmin(in, models.StatusActive, models.StatusRemoved)
	case ActionReactivate:
		return e.decideReactivate(in)
	case ActionEdit:
		return e.decideEdit(in)
	case ActionResubmit:
		return e.decideResubmit(in)
	default:
		return Decision{}, deny(ReasonInvalidTransition, "unknown action")
	}
}

func (e *Engine) decideCreate(in Input) (Decision, error) {
	var key models.SettingKey
	var next models.PostingStatus

	switch in.Role {
	case models.RoleFaculty:
		// Faculty postings skip moderation entirely.
		key = models.SettingFacultyCanPost
		next = models.StatusActive
	case models.RoleRep:
		// Rep postings wait for an admin to approve or reject them.
		key = models.SettingRepCanPost
		next = models.StatusPending
	default:
		return Decision{}, deny(ReasonInvalidTransition, "role cannot create postings")
	}

	enabled, err := e.toggles.Get(key)
	if err != nil {
		return Decision{}, err
	}
	if !enabled {
		return Decision{}, deny(ReasonToggleDisabled, "posting disabled for role")
	}

	return Decision{NextStatus: next}, nil
}

// decideAdmin covers the three admin-scoped transitions. Admin actions
// bypass ownership but still require the expected current status.
func (e *Engine) decideAdmin(in Input, from, to models.PostingStatus) (Decision, error) {
	if in.Role != models.RoleAdmin {
		return Decision{}, deny(ReasonNotOwner, "admin only")
	}
	if in.Posting == nil || in.Posting.Status != from {
		return Decision{}, deny(ReasonInvalidTransition,
			fmt.Sprintf("posting must be %s", from))
	}
	return Decision{NextStatus: to}, nil
}

func (e *Engine) decideReactivate(in Input) (Decision, error) {
	if in.Posting == nil || !in.Posting.OwnedBy(in.CallerID) {
		return Decision{}, deny(ReasonNotOwner, "not owner")
	}

	// Only a posting archived by its deadline can come back; anything in a
	// moderation state stays where the moderation flow left it.
	today := e.now()
	if in.Posting.Status != models.StatusActive || !in.Posting.Expired(today) {
		return Decision{}, deny(ReasonInvalidTransition, "posting is not expired")
	}

	if in.NewDeadline.IsZero() || !in.NewDeadline.After(today) {
		return Decision{}, deny(ReasonInvalidDate, "new deadline must be in the future")
	}

	return Decision{NextStatus: models.StatusActive}, nil
}

func (e *Engine) decideEdit(in Input) (Decision, error) {
	if in.Posting == nil || !in.Posting.OwnedBy(in.CallerID) {
		return Decision{}, deny(ReasonNotOwner, "not owner")
	}
	if in.Posting.Status == models.StatusRemoved {
		return Decision{}, deny(ReasonInvalidTransition, "posting has been removed")
	}

	// Editing a rejected posting does not clear the rejection; the creator
	// must resubmit explicitly.
	return Decision{NextStatus: in.Posting.Status}, nil
}

func (e *Engine) decideResubmit(in Input) (Decision, error) {
	if in.Posting == nil || !in.Posting.OwnedBy(in.CallerID) {
		return Decision{}, deny(ReasonNotOwner, "not owner")
	}
	if in.Posting.Status != models.StatusRejected {
		return Decision{}, deny(ReasonInvalidTransition, "only rejected postings can be resubmitted")
	}
	return Decision{NextStatus: models.StatusPending}, nil
}
