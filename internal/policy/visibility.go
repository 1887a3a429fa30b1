package policy

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campushire/jobboard/internal/models"
)

// Order selects the listing order for visible postings.
type Order int

const (
	// OrderNewest sorts newest-created-first (default).
	OrderNewest Order = iota
	// OrderDeadline sorts soonest-deadline-first.
	OrderDeadline
)

// Visible returns the subset of postings the caller may see, ordered.
// Admin sees everything. A creator always sees their own postings. Everyone
// else sees only active postings whose deadline has not passed.
//
// The input slice is never mutated; results are deterministic for a given
// input (ties break on id ascending) so pagination stays stable.
func Visible(postings []models.Posting, role models.Role, callerID uuid.UUID, today time.Time, order Order) []models.Posting {
	visible := make([]models.Posting, 0, len(postings))

	for _, p := range postings {
		if role == models.RoleAdmin {
			visible = append(visible, p)
			continue
		}
		if p.OwnedBy(callerID) {
			visible = append(visible, p)
			continue
		}
		if p.Status == models.StatusActive && !p.Expired(today) {
			visible = append(visible, p)
		}
	}

	sortPostings(visible, order)
	return visible
}

func sortPostings(postings []models.Posting, order Order) {
	sort.SliceStable(postings, func(i, j int) bool {
		a, b := postings[i], postings[j]

		switch order {
		case OrderDeadline:
			if !a.Deadline.Equal(b.Deadline) {
				return a.Deadline.Before(b.Deadline)
			}
		default:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
		}

		// Identical timestamps: id ascending keeps the order deterministic.
		return strings.Compare(a.ID.String(), b.ID.String()) < 0
	})
}
