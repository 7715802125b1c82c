package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dgidpl/startup-app/internal/client/api"
	"github.com/dgidpl/startup-app/internal/client/models"
	"github.com/dgidpl/startup-app/internal/client/notify"
	"github.com/dgidpl/startup-app/internal/client/repositories/votes"
	"github.com/dgidpl/startup-app/internal/logging"
)

// VoteService coordinates vote casts: it guards against duplicate votes via
// the local ledger, records the vote durably before the network call, and
// reconciles the outcome with notifications and a silent cache refresh.
//
// A vote that fails server-side is NOT removed from the ledger: once the
// user has voted, the client never offers that idea again, even though the
// server missed the vote. The desync is permanent and there is no retry
// path; revisit if the backend ever enforces voter identity itself.
type VoteService struct {
	client       api.Client
	repo         votes.Repository
	notifier     notify.Notifier
	log          logging.Logger
	refresher    Refresher
	highlightTTL time.Duration

	mu         sync.Mutex
	highlights map[string]uint64
	seq        uint64
}

func NewVoteService(client api.Client, repo votes.Repository, notifier notify.Notifier, log logging.Logger, refresher Refresher, highlightTTL time.Duration) *VoteService {
	return &VoteService{
		client:       client,
		repo:         repo,
		notifier:     notifier,
		log:          log.With("component", "votes"),
		refresher:    refresher,
		highlightTTL: highlightTTL,
		highlights:   map[string]uint64{},
	}
}

// HasVoted reports whether this client already voted on the idea.
func (s *VoteService) HasVoted(ctx context.Context, id models.ID) (bool, error) {
	_, voted, err := s.repo.Get(ctx, id)
	return voted, err
}

// Voted returns the recorded direction for an idea, if any.
func (s *VoteService) Voted(ctx context.Context, id models.ID) (models.VoteDirection, bool) {
	direction, voted, err := s.repo.Get(ctx, id)
	if err != nil {
		s.log.Error(ctx, "failed to read vote ledger", "idea", id, "error", err)
		return "", false
	}
	return direction, voted
}

// Cast runs the vote flow. An idea the client already voted on is a silent
// no-op: no UI change, no network call. Otherwise the ledger entry is
// persisted first and is irreversible from the client's perspective, then
// the vote goes out; on success the cache is silently nudged, on failure an
// error notification is shown and the ledger entry stays.
func (s *VoteService) Cast(ctx context.Context, id models.ID, direction models.VoteDirection) error {
	if !direction.Valid() {
		return fmt.Errorf("unknown vote direction %q", direction)
	}

	voted, err := s.HasVoted(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check vote ledger: %w", err)
	}
	if voted {
		return nil
	}

	if err := s.repo.Record(ctx, id, direction); err != nil {
		s.notifier.Show("Не вдалося зберегти голос", notify.SeverityError)
		return fmt.Errorf("failed to record vote: %w", err)
	}

	s.markHighlight(id, direction)

	if err := s.client.Vote(ctx, id, direction); err != nil {
		s.log.Error(ctx, "vote not saved on server", "idea", id, "error", err)
		s.notifier.Show("Помилка збереження голосу на сервері", notify.SeverityError)
		return err
	}

	if direction == models.VoteUp {
		s.notifier.Show("Ви підтримали цю ідею!", notify.SeveritySuccess)
	} else {
		s.notifier.Show("Ваш голос враховано", notify.SeveritySuccess)
	}

	// Best-effort nudge to pull updated counters; no write/read barrier, the
	// server may still return the old counts.
	_ = s.refresher.Refresh(ctx, true)
	return nil
}

// Highlighted reports whether the short visual emphasis for a fresh vote on
// id+direction is still active. Purely cosmetic.
func (s *VoteService) Highlighted(id models.ID, direction models.VoteDirection) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.highlights[highlightKey(id, direction)]
	return ok
}

func (s *VoteService) markHighlight(id models.ID, direction models.VoteDirection) {
	key := highlightKey(id, direction)

	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.highlights[key] = seq
	s.mu.Unlock()

	time.AfterFunc(s.highlightTTL, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.highlights[key] == seq {
			delete(s.highlights, key)
		}
	})
}

func highlightKey(id models.ID, direction models.VoteDirection) string {
	return string(id) + "/" + string(direction)
}
