// Package votes persists the local vote ledger: which ideas this client has
// already voted on, and in which direction. The ledger is the sole mechanism
// preventing duplicate votes from this client; the server accepts any vote
// call it receives.
package votes

import (
	"context"

	"github.com/dgidpl/startup-app/internal/client/models"
)

type Repository interface {
	// Get returns the recorded direction for an idea and whether one exists.
	Get(ctx context.Context, id models.ID) (models.VoteDirection, bool, error)

	// Record stores the direction for an idea. A later Record for the same
	// idea is a no-op: the first accepted direction is immutable.
	Record(ctx context.Context, id models.ID, direction models.VoteDirection) error

	// All returns the complete ledger keyed by idea id.
	All(ctx context.Context) (map[models.ID]models.VoteDirection, error)
}
