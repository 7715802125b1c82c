// Package services contains the client's state-synchronization layer: the
// idea cache with its refresh controller and the optimistic coordinators for
// votes, comments and idea submission. Views only render what these services
// expose and never talk to the remote service directly.
package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dgidpl/startup-app/internal/client/api"
	"github.com/dgidpl/startup-app/internal/client/models"
	"github.com/dgidpl/startup-app/internal/client/notify"
	"github.com/dgidpl/startup-app/internal/logging"
)

// Refresher is the cache-refresh hook handed to mutation flows so they can
// nudge the idea list after a write. It is best effort: the server may not
// have applied the mutation yet when the follow-up read lands.
type Refresher interface {
	Refresh(ctx context.Context, silent bool) error
}

// IdeaService holds the session-durable view of the remote idea list and
// controls manual and periodic refresh.
type IdeaService struct {
	client   api.Client
	notifier notify.Notifier
	log      logging.Logger
	interval time.Duration

	mu      sync.Mutex
	ideas   []models.Idea
	loading bool

	pollMu     sync.Mutex
	pollCancel context.CancelFunc
}

func NewIdeaService(client api.Client, notifier notify.Notifier, log logging.Logger, interval time.Duration) *IdeaService {
	return &IdeaService{
		client:   client,
		notifier: notifier,
		log:      log.With("component", "ideas"),
		interval: interval,
	}
}

// Ideas returns the cached list, most recently created first.
func (s *IdeaService) Ideas() []models.Idea {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Idea, len(s.ideas))
	copy(out, s.ideas)
	return out
}

func (s *IdeaService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Refresh fetches the idea list and replaces the cache wholesale; locally
// known optimistic changes not yet reflected server-side are discarded by
// the overwrite. With silent=true neither the loading flag nor an error
// notification is raised; failures are logged only. A transport or service
// failure leaves the cache untouched; a malformed payload clears it.
func (s *IdeaService) Refresh(ctx context.Context, silent bool) error {
	if !silent {
		s.mu.Lock()
		s.loading = true
		s.mu.Unlock()
	}
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	list, err := s.client.FetchIdeas(ctx)
	if err != nil {
		if errors.Is(err, api.ErrMalformedResponse) {
			// The exchange completed but the payload is unusable: reset to an
			// empty list rather than rendering stale rows as current.
			s.log.Warn(ctx, "idea payload has unexpected shape", "error", err)
			s.mu.Lock()
			s.ideas = []models.Idea{}
			s.mu.Unlock()
			return nil
		}

		if silent {
			s.log.Warn(ctx, "silent refresh failed", "error", err)
		} else {
			s.log.Error(ctx, "refresh failed", "error", err)
			s.notifier.Show("Помилка завантаження: "+err.Error(), notify.SeverityError)
		}
		return err
	}

	// The backend returns oldest-first; the client shows newest-first.
	reversed := make([]models.Idea, len(list))
	for i, idea := range list {
		reversed[len(list)-1-i] = idea
	}

	s.mu.Lock()
	s.ideas = reversed
	s.mu.Unlock()
	return nil
}

// StartPolling begins periodic silent refresh, used while the bank view is
// active. It refreshes once immediately, then on every tick. Calling it
// again restarts the ticker.
func (s *IdeaService) StartPolling(ctx context.Context) {
	s.pollMu.Lock()
	if s.pollCancel != nil {
		s.pollCancel()
	}
	pollCtx, cancel := context.WithCancel(ctx)
	s.pollCancel = cancel
	s.pollMu.Unlock()

	go s.poll(pollCtx)
}

// StopPolling stops the ticker. Must be called when the bank view is left so
// no background polling runs on other tabs.
func (s *IdeaService) StopPolling() {
	s.pollMu.Lock()
	defer s.pollMu.Unlock()
	if s.pollCancel != nil {
		s.pollCancel()
		s.pollCancel = nil
	}
}

func (s *IdeaService) poll(ctx context.Context) {
	_ = s.Refresh(ctx, true)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_ = s.Refresh(ctx, true)
		case <-ctx.Done():
			return
		}
	}
}
