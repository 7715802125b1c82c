// Package api wraps the remote idea service: a spreadsheet-backed script
// endpoint speaking JSON over HTTP. The client keeps no state, performs no
// retries and no caching; callers own timeouts via the context.
package api

import (
	"context"

	"github.com/dgidpl/startup-app/internal/client/models"
)

type Client interface {
	// FetchIdeas returns the full current idea list in server order.
	FetchIdeas(ctx context.Context) ([]models.Idea, error)

	// CreateIdea submits a new idea. Topic and content are validated by the
	// caller; the backend is not guaranteed to re-validate.
	CreateIdea(ctx context.Context, author, phone, topic, content string) error

	// Vote casts a single vote. The response body is not strictly validated.
	// The call is not idempotent: calling twice produces two votes server-side.
	Vote(ctx context.Context, id models.ID, direction models.VoteDirection) error

	// GetComments returns the comments of one idea in arrival order.
	GetComments(ctx context.Context, ideaID models.ID) ([]models.Comment, error)

	// AddComment appends a comment. The server acknowledges receipt only and
	// does not return the stored comment.
	AddComment(ctx context.Context, ideaID models.ID, author, text string) error
}
