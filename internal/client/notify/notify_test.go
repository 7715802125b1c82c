package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShow_VisibleImmediately(t *testing.T) {
	e := NewEmitter(time.Minute, nil)

	e.Show("Ідею успішно додано!", SeveritySuccess)

	n := e.Current()
	require.NotNil(t, n)
	assert.Equal(t, "Ідею успішно додано!", n.Message)
	assert.Equal(t, SeveritySuccess, n.Severity)
}

func TestShow_AutoExpires(t *testing.T) {
	e := NewEmitter(30*time.Millisecond, nil)

	e.Show("done", SeveritySuccess)
	require.NotNil(t, e.Current())

	assert.Eventually(t, func() bool { return e.Current() == nil },
		time.Second, 5*time.Millisecond)
}

func TestShow_ReplacementRestartsWindow(t *testing.T) {
	e := NewEmitter(60*time.Millisecond, nil)

	e.Show("first", SeverityError)
	time.Sleep(40 * time.Millisecond)
	e.Show("second", SeveritySuccess)

	// Past the first notification's deadline, the replacement must still be
	// visible because its own window restarted.
	time.Sleep(40 * time.Millisecond)
	n := e.Current()
	require.NotNil(t, n)
	assert.Equal(t, "second", n.Message)

	assert.Eventually(t, func() bool { return e.Current() == nil },
		time.Second, 5*time.Millisecond)
}

func TestShow_SinkReceivesEveryNotification(t *testing.T) {
	var got []Notification
	e := NewEmitter(time.Minute, func(n Notification) { got = append(got, n) })

	e.Show("a", SeveritySuccess)
	e.Show("b", SeverityError)

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Message)
	assert.Equal(t, SeverityError, got[1].Severity)
}
