package cli

import (
	"context"

	"github.com/dgidpl/startup-app/internal/client/models"
)

// Vote casts a vote on an idea. An idea this client already voted on is a
// silent no-op; other outcomes surface through notifications.
func (a *App) Vote(ctx context.Context, id, direction string) error {
	d := models.VoteDirection(direction)
	if !d.Valid() {
		printlnFn("Usage: vote <id> up|down")
		return nil
	}

	return a.votes.Cast(ctx, models.ID(id), d)
}
