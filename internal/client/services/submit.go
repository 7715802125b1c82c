package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/dgidpl/startup-app/internal/client/api"
	"github.com/dgidpl/startup-app/internal/client/nav"
	"github.com/dgidpl/startup-app/internal/client/notify"
	"github.com/dgidpl/startup-app/internal/logging"
)

// Switcher is the navigation hook the submission flow uses to move the user
// to the bank view after a successful submit.
type Switcher interface {
	Go(target nav.Tab)
}

// SubmitService runs the idea submission flow.
type SubmitService struct {
	client        api.Client
	notifier      notify.Notifier
	log           logging.Logger
	refresher     Refresher
	switcher      Switcher
	navigateDelay time.Duration

	mu         sync.Mutex
	submitting bool
}

func NewSubmitService(client api.Client, notifier notify.Notifier, log logging.Logger, refresher Refresher, switcher Switcher, navigateDelay time.Duration) *SubmitService {
	return &SubmitService{
		client:        client,
		notifier:      notifier,
		log:           log.With("component", "submit"),
		refresher:     refresher,
		switcher:      switcher,
		navigateDelay: navigateDelay,
	}
}

// Submitting reports whether a submission is in flight; the view disables
// its control while true.
func (s *SubmitService) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

// Submit sends a new idea. Content and topic are required; author and phone
// are optional. On success the cache is silently refreshed, a success
// notification is shown and the client auto-navigates to the bank view after
// a short delay. On failure the server message (or a generic fallback) is
// shown and the caller keeps the form fields for correction.
func (s *SubmitService) Submit(ctx context.Context, author, phone, topic, content string) error {
	if strings.TrimSpace(content) == "" {
		s.notifier.Show("Опишіть вашу ідею!", notify.SeverityError)
		return ErrValidation
	}
	if strings.TrimSpace(topic) == "" {
		s.notifier.Show("Вкажіть тему ідеї!", notify.SeverityError)
		return ErrValidation
	}

	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return ErrBusy
	}
	s.submitting = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	}()

	if err := s.client.CreateIdea(ctx, author, phone, topic, content); err != nil {
		var se *api.ServiceError
		if errors.As(err, &se) {
			msg := se.Message
			if msg == "" {
				msg = "Помилка збереження"
			}
			s.notifier.Show(msg, notify.SeverityError)
		} else {
			s.log.Error(ctx, "failed to submit idea", "error", err)
			s.notifier.Show("Помилка відправки. Спробуйте пізніше.", notify.SeverityError)
		}
		return err
	}

	s.notifier.Show("Ідею успішно додано!", notify.SeveritySuccess)
	_ = s.refresher.Refresh(ctx, true)

	time.AfterFunc(s.navigateDelay, func() { s.switcher.Go(nav.TabBank) })
	return nil
}
