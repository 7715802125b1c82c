package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dgidpl/startup-app/internal/client/api"
	"github.com/dgidpl/startup-app/internal/client/models"
	"github.com/dgidpl/startup-app/internal/client/notify"
	"github.com/dgidpl/startup-app/internal/client/repositories/metadata"
	"github.com/dgidpl/startup-app/internal/logging"
)

const metadataKeyNickname = "nickname"

// CommentService keeps the per-idea comment lists shown in the discussion
// dialog and coordinates optimistic comment posting.
type CommentService struct {
	client   api.Client
	meta     metadata.Repository
	notifier notify.Notifier
	log      logging.Logger
	now      func() time.Time

	mu       sync.Mutex
	comments map[models.ID][]models.Comment
}

func NewCommentService(client api.Client, meta metadata.Repository, notifier notify.Notifier, log logging.Logger) *CommentService {
	return &CommentService{
		client:   client,
		meta:     meta,
		notifier: notifier,
		log:      log.With("component", "comments"),
		now:      time.Now,
		comments: map[models.ID][]models.Comment{},
	}
}

// Load fetches the comments of one idea from the server and replaces the
// in-memory list. Failures are logged, not notified: the dialog simply shows
// what it already has.
func (s *CommentService) Load(ctx context.Context, ideaID models.ID) ([]models.Comment, error) {
	list, err := s.client.GetComments(ctx, ideaID)
	if err != nil {
		s.log.Error(ctx, "failed to load comments", "idea", ideaID, "error", err)
		return nil, err
	}

	s.mu.Lock()
	s.comments[ideaID] = list
	s.mu.Unlock()
	return list, nil
}

// Comments returns the in-memory comment list for an idea, including any
// optimistically appended entries.
func (s *CommentService) Comments(ideaID models.ID) []models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Comment, len(s.comments[ideaID]))
	copy(out, s.comments[ideaID])
	return out
}

// Nickname returns the last-used author name, or "" when none was saved.
func (s *CommentService) Nickname(ctx context.Context) string {
	nick, err := s.meta.Get(ctx, metadataKeyNickname)
	if err != nil {
		if !errors.Is(err, metadata.ErrNotFound) {
			s.log.Warn(ctx, "failed to read nickname", "error", err)
		}
		return ""
	}
	return nick
}

// Post validates, persists the nickname, appends the comment optimistically
// and then sends it. A server failure leaves the optimistic comment in place
// and emits one error notification; there is no rollback.
func (s *CommentService) Post(ctx context.Context, ideaID models.ID, author, text string) error {
	author = strings.TrimSpace(author)
	text = strings.TrimSpace(text)
	if author == "" || text == "" {
		s.notifier.Show("Введіть ім'я та коментар", notify.SeverityError)
		return ErrValidation
	}

	if err := s.meta.Set(ctx, metadataKeyNickname, author); err != nil {
		s.log.Warn(ctx, "failed to save nickname", "error", err)
	}

	comment := models.Comment{
		Author:  author,
		Text:    text,
		Date:    s.now(),
		LocalID: uuid.NewString(),
	}

	s.mu.Lock()
	s.comments[ideaID] = append(s.comments[ideaID], comment)
	s.mu.Unlock()

	if err := s.client.AddComment(ctx, ideaID, author, text); err != nil {
		s.log.Error(ctx, "failed to send comment", "idea", ideaID, "error", err)
		s.notifier.Show("Помилка відправки коментаря", notify.SeverityError)
		return err
	}
	return nil
}
