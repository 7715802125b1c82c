package services

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/dgidpl/startup-app/internal/client/models"
	"github.com/dgidpl/startup-app/internal/client/nav"
	"github.com/dgidpl/startup-app/internal/client/notify"
	"github.com/dgidpl/startup-app/internal/client/repositories/metadata"
	"github.com/dgidpl/startup-app/internal/logging"
)

// ---- helpers ----

func newTestLogger(t *testing.T) (logging.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return logging.NewSlogLogger(slog.New(h)), &buf
}

// ---- fake api client ----

// fakeClient implements api.Client for unit tests. Hooks run inside the call
// so tests can observe mid-call state.
type fakeClient struct {
	mu sync.Mutex

	FetchRet   []models.Idea
	FetchErr   error
	FetchHook  func()
	fetchCalls int

	CreateErr  error
	CreateHook func()

	VoteErr     error
	voteCalls   int
	lastVoteID  models.ID
	lastVoteDir models.VoteDirection

	GetCommentsRet []models.Comment
	GetCommentsErr error

	AddCommentErr   error
	addCommentCalls int
	lastCommentText string
}

func (f *fakeClient) FetchIdeas(ctx context.Context) ([]models.Idea, error) {
	f.mu.Lock()
	f.fetchCalls++
	hook := f.FetchHook
	ret, err := f.FetchRet, f.FetchErr
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	return append([]models.Idea(nil), ret...), err
}

func (f *fakeClient) FetchCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetchCalls
}

func (f *fakeClient) CreateIdea(ctx context.Context, author, phone, topic, content string) error {
	f.mu.Lock()
	hook := f.CreateHook
	err := f.CreateErr
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	return err
}

func (f *fakeClient) Vote(ctx context.Context, id models.ID, direction models.VoteDirection) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.voteCalls++
	f.lastVoteID = id
	f.lastVoteDir = direction
	return f.VoteErr
}

func (f *fakeClient) VoteCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.voteCalls
}

func (f *fakeClient) GetComments(ctx context.Context, ideaID models.ID) ([]models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Comment(nil), f.GetCommentsRet...), f.GetCommentsErr
}

func (f *fakeClient) AddComment(ctx context.Context, ideaID models.ID, author, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addCommentCalls++
	f.lastCommentText = text
	return f.AddCommentErr
}

func (f *fakeClient) AddCommentCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addCommentCalls
}

// ---- fake notifier ----

type fakeNotifier struct {
	mu    sync.Mutex
	shown []notify.Notification
}

func (f *fakeNotifier) Show(msg string, severity notify.Severity) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shown = append(f.shown, notify.Notification{Message: msg, Severity: severity})
}

func (f *fakeNotifier) Shown() []notify.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]notify.Notification(nil), f.shown...)
}

// ---- fake refresher ----

type fakeRefresher struct {
	mu    sync.Mutex
	calls []bool // silent flag per call
}

func (f *fakeRefresher) Refresh(ctx context.Context, silent bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, silent)
	return nil
}

func (f *fakeRefresher) Calls() []bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]bool(nil), f.calls...)
}

// ---- fake tab switcher ----

type fakeSwitcher struct {
	mu   sync.Mutex
	tabs []nav.Tab
}

func (f *fakeSwitcher) Go(target nav.Tab) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tabs = append(f.tabs, target)
}

func (f *fakeSwitcher) Tabs() []nav.Tab {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]nav.Tab(nil), f.tabs...)
}

// ---- in-memory ledger ----

// memLedger implements votes.Repository with first-write-wins semantics.
type memLedger struct {
	mu      sync.Mutex
	entries map[models.ID]models.VoteDirection
}

func newMemLedger() *memLedger {
	return &memLedger{entries: map[models.ID]models.VoteDirection{}}
}

func (m *memLedger) Get(ctx context.Context, id models.ID) (models.VoteDirection, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.entries[id]
	return d, ok, nil
}

func (m *memLedger) Record(ctx context.Context, id models.ID, direction models.VoteDirection) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		m.entries[id] = direction
	}
	return nil
}

func (m *memLedger) All(ctx context.Context) (map[models.ID]models.VoteDirection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[models.ID]models.VoteDirection, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out, nil
}

// ---- in-memory metadata ----

type memMeta struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemMeta() *memMeta {
	return &memMeta{values: map[string]string{}}
}

func (m *memMeta) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", metadata.ErrNotFound
	}
	return v, nil
}

func (m *memMeta) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
