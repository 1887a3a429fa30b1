package policy

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/jobboard/internal/models"
)

func visPosting(id string, owner uuid.UUID, status models.PostingStatus, deadline, createdAt time.Time) models.Posting {
	return models.Posting{
		ID:        uuid.MustParse(id),
		Status:    status,
		Deadline:  deadline,
		CreatedAt: createdAt,
		CreatedBy: &owner,
	}
}

func TestVisible_PublicSeesOnlyLivePostings(t *testing.T) {
	owner := uuid.New()
	future := testToday.AddDate(0, 1, 0)
	past := testToday.AddDate(0, -1, 0)

	postings := []models.Posting{
		visPosting("00000000-0000-0000-0000-000000000001", owner, models.StatusActive, future, testToday),
		visPosting("00000000-0000-0000-0000-000000000002", owner, models.StatusActive, past, testToday),
		visPosting("00000000-0000-0000-0000-000000000003", owner, models.StatusPending, future, testToday),
		visPosting("00000000-0000-0000-0000-000000000004", owner, models.StatusRejected, future, testToday),
		visPosting("00000000-0000-0000-0000-000000000005", owner, models.StatusRemoved, future, testToday),
	}

	visible := Visible(postings, models.RoleStudent, uuid.New(), testToday, OrderNewest)

	require.Len(t, visible, 1)
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", visible[0].ID.String())
}

func TestVisible_AdminSeesEverything(t *testing.T) {
	owner := uuid.New()
	past := testToday.AddDate(0, -1, 0)

	postings := []models.Posting{
		visPosting("00000000-0000-0000-0000-000000000001", owner, models.StatusActive, past, testToday),
		visPosting("00000000-0000-0000-0000-000000000002", owner, models.StatusPending, past, testToday),
		visPosting("00000000-0000-0000-0000-000000000003", owner, models.StatusRemoved, past, testToday),
	}

	visible := Visible(postings, models.RoleAdmin, uuid.New(), testToday, OrderNewest)
	assert.Len(t, visible, 3)
}

func TestVisible_CreatorSeesOwnRegardlessOfStatus(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	future := testToday.AddDate(0, 1, 0)

	postings := []models.Posting{
		visPosting("00000000-0000-0000-0000-000000000001", owner, models.StatusRejected, future, testToday),
		visPosting("00000000-0000-0000-0000-000000000002", owner, models.StatusPending, future, testToday),
		visPosting("00000000-0000-0000-0000-000000000003", other, models.StatusPending, future, testToday),
		visPosting("00000000-0000-0000-0000-000000000004", other, models.StatusActive, future, testToday),
	}

	visible := Visible(postings, models.RoleRep, owner, testToday, OrderNewest)

	require.Len(t, visible, 3)
	for _, p := range visible {
		if p.ID.String() == "00000000-0000-0000-0000-000000000003" {
			t.Fatalf("pending posting from another creator must stay hidden")
		}
	}
}

func TestVisible_DeadlineOnTodayStillVisible(t *testing.T) {
	// A posting expires the day after its deadline, not on it
	owner := uuid.New()
	postings := []models.Posting{
		visPosting("00000000-0000-0000-0000-000000000001", owner, models.StatusActive, testToday, testToday),
	}

	visible := Visible(postings, models.RoleStudent, uuid.New(), testToday, OrderNewest)
	assert.Len(t, visible, 1)
}

func TestVisible_OrderNewestFirst(t *testing.T) {
	owner := uuid.New()
	future := testToday.AddDate(0, 1, 0)

	postings := []models.Posting{
		visPosting("00000000-0000-0000-0000-000000000001", owner, models.StatusActive, future, testToday.AddDate(0, 0, -3)),
		visPosting("00000000-0000-0000-0000-000000000002", owner, models.StatusActive, future, testToday.AddDate(0, 0, -1)),
		visPosting("00000000-0000-0000-0000-000000000003", owner, models.StatusActive, future, testToday.AddDate(0, 0, -2)),
	}

	visible := Visible(postings, models.RoleStudent, uuid.New(), testToday, OrderNewest)

	require.Len(t, visible, 3)
	assert.Equal(t, "00000000-0000-0000-0000-000000000002", visible[0].ID.String())
	assert.Equal(t, "00000000-0000-0000-0000-000000000003", visible[1].ID.String())
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", visible[2].ID.String())
}

func TestVisible_OrderByDeadline(t *testing.T) {
	owner := uuid.New()

	postings := []models.Posting{
		visPosting("00000000-0000-0000-0000-000000000001", owner, models.StatusActive, testToday.AddDate(0, 3, 0), testToday),
		visPosting("00000000-0000-0000-0000-000000000002", owner, models.StatusActive, testToday.AddDate(0, 1, 0), testToday),
		visPosting("00000000-0000-0000-0000-000000000003", owner, models.StatusActive, testToday.AddDate(0, 2, 0), testToday),
	}

	visible := Visible(postings, models.RoleStudent, uuid.New(), testToday, OrderDeadline)

	require.Len(t, visible, 3)
	assert.Equal(t, "00000000-0000-0000-0000-000000000002", visible[0].ID.String())
	assert.Equal(t, "00000000-0000-0000-0000-000000000003", visible[1].ID.String())
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", visible[2].ID.String())
}

func TestVisible_TieBreaksOnID(t *testing.T) {
	owner := uuid.New()
	future := testToday.AddDate(0, 1, 0)

	// Same created_at everywhere; order must fall back to id ascending
	postings := []models.Posting{
		visPosting("00000000-0000-0000-0000-000000000003", owner, models.StatusActive, future, testToday),
		visPosting("00000000-0000-0000-0000-000000000001", owner, models.StatusActive, future, testToday),
		visPosting("00000000-0000-0000-0000-000000000002", owner, models.StatusActive, future, testToday),
	}

	visible := Visible(postings, models.RoleStudent, uuid.New(), testToday, OrderNewest)

	require.Len(t, visible, 3)
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", visible[0].ID.String())
	assert.Equal(t, "00000000-0000-0000-0000-000000000002", visible[1].ID.String())
	assert.Equal(t, "00000000-0000-0000-0000-000000000003", visible[2].ID.String())
}

func TestVisible_DoesNotMutateInput(t *testing.T) {
	owner := uuid.New()
	future := testToday.AddDate(0, 1, 0)

	postings := []models.Posting{
		visPosting("00000000-0000-0000-0000-000000000002", owner, models.StatusActive, future, testToday.AddDate(0, 0, -1)),
		visPosting("00000000-0000-0000-0000-000000000001", owner, models.StatusActive, future, testToday),
	}

	_ = Visible(postings, models.RoleStudent, uuid.New(), testToday, OrderNewest)

	assert.Equal(t, "00000000-0000-0000-0000-000000000002", postings[0].ID.String())
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", postings[1].ID.String())
}
