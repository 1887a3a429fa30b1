package revocation

import (
	"time"

	"github.com/google/uuid"
)

// Store is the credential-revocation list consulted on every
// authenticated request. Account deletion adds the user here so tokens
// issued before the deletion stop working immediately.
type Store interface {
	Revoke(userID uuid.UUID, ttl time.Duration) error
	IsRevoked(userID uuid.UUID) (bool, error)
	Close() error
}
