package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgidpl/startup-app/internal/client/models"
	"github.com/dgidpl/startup-app/internal/client/notify"
)

func newVoteService(t *testing.T, fc *fakeClient) (*VoteService, *memLedger, *fakeNotifier, *fakeRefresher) {
	t.Helper()
	log, _ := newTestLogger(t)
	ledger := newMemLedger()
	notifier := &fakeNotifier{}
	refresher := &fakeRefresher{}
	svc := NewVoteService(fc, ledger, notifier, log, refresher, 25*time.Millisecond)
	return svc, ledger, notifier, refresher
}

func TestCast_DoubleVoteIssuesOneNetworkCall(t *testing.T) {
	fc := &fakeClient{}
	svc, ledger, _, _ := newVoteService(t, fc)
	ctx := context.Background()

	require.NoError(t, svc.Cast(ctx, models.ID("42"), models.VoteUp))
	require.NoError(t, svc.Cast(ctx, models.ID("42"), models.VoteUp))

	assert.Equal(t, 1, fc.VoteCalls())

	entries, err := ledger.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[models.ID]models.VoteDirection{models.ID("42"): models.VoteUp}, entries)
}

func TestCast_OppositeDirectionAfterVoteIsNoOp(t *testing.T) {
	fc := &fakeClient{}
	svc, _, _, _ := newVoteService(t, fc)
	ctx := context.Background()

	require.NoError(t, svc.Cast(ctx, models.ID("7"), models.VoteDown))
	require.NoError(t, svc.Cast(ctx, models.ID("7"), models.VoteUp))

	assert.Equal(t, 1, fc.VoteCalls())
	direction, voted := svc.Voted(ctx, models.ID("7"))
	assert.True(t, voted)
	assert.Equal(t, models.VoteDown, direction, "the first accepted direction persists")
}

func TestCast_SuccessNotifiesAndNudgesCache(t *testing.T) {
	fc := &fakeClient{}
	svc, _, notifier, refresher := newVoteService(t, fc)

	require.NoError(t, svc.Cast(context.Background(), models.ID("1"), models.VoteUp))

	shown := notifier.Shown()
	require.Len(t, shown, 1)
	assert.Equal(t, notify.SeveritySuccess, shown[0].Severity)
	assert.Equal(t, "Ви підтримали цю ідею!", shown[0].Message)

	require.Len(t, refresher.Calls(), 1)
	assert.True(t, refresher.Calls()[0], "post-vote refresh must be silent")
}

func TestCast_ServerFailureKeepsLedgerEntry(t *testing.T) {
	fc := &fakeClient{VoteErr: errors.New("connection reset")}
	svc, ledger, notifier, refresher := newVoteService(t, fc)
	ctx := context.Background()

	err := svc.Cast(ctx, models.ID("9"), models.VoteUp)
	require.Error(t, err)

	shown := notifier.Shown()
	require.Len(t, shown, 1)
	assert.Equal(t, notify.SeverityError, shown[0].Severity)
	assert.Equal(t, "Помилка збереження голосу на сервері", shown[0].Message)

	// The ledger entry is not rolled back: the user cannot retry.
	entries, reposErr := ledger.All(ctx)
	require.NoError(t, reposErr)
	assert.Equal(t, models.VoteUp, entries[models.ID("9")])

	assert.Empty(t, refresher.Calls(), "no refresh after a failed vote")

	// And a second attempt stays blocked without reaching the network.
	require.NoError(t, svc.Cast(ctx, models.ID("9"), models.VoteUp))
	assert.Equal(t, 1, fc.VoteCalls())
}

func TestCast_InvalidDirectionRejected(t *testing.T) {
	fc := &fakeClient{}
	svc, _, _, _ := newVoteService(t, fc)

	err := svc.Cast(context.Background(), models.ID("1"), models.VoteDirection("sideways"))
	require.Error(t, err)
	assert.Zero(t, fc.VoteCalls())
}

func TestHighlight_AutoClears(t *testing.T) {
	fc := &fakeClient{}
	svc, _, _, _ := newVoteService(t, fc)

	require.NoError(t, svc.Cast(context.Background(), models.ID("3"), models.VoteDown))
	assert.True(t, svc.Highlighted(models.ID("3"), models.VoteDown))
	assert.False(t, svc.Highlighted(models.ID("3"), models.VoteUp))

	assert.Eventually(t, func() bool {
		return !svc.Highlighted(models.ID("3"), models.VoteDown)
	}, time.Second, 5*time.Millisecond)
}
