// Package notify implements ephemeral user feedback messages. At most one
// notification is visible at a time and each self-clears after a fixed
// window, the way a toast does.
package notify

import (
	"sync"
	"time"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

type Notification struct {
	Message  string
	Severity Severity
}

// Notifier is the interface mutation flows use to surface feedback.
type Notifier interface {
	Show(msg string, severity Severity)
}

// Emitter holds the single visible notification. A new Show replaces the
// current notification and restarts the expiry window.
type Emitter struct {
	mu      sync.Mutex
	ttl     time.Duration
	seq     uint64
	current *Notification
	timer   *time.Timer
	sink    func(Notification)
}

// NewEmitter creates an emitter whose notifications expire after ttl.
// sink, when non-nil, is invoked synchronously on every Show so the view
// layer can render the message; it must not call back into the emitter.
func NewEmitter(ttl time.Duration, sink func(Notification)) *Emitter {
	return &Emitter{ttl: ttl, sink: sink}
}

func (e *Emitter) Show(msg string, severity Severity) {
	n := Notification{Message: msg, Severity: severity}

	e.mu.Lock()
	if e.timer != nil {
		e.timer.Stop()
	}
	e.seq++
	seq := e.seq
	e.current = &n
	e.timer = time.AfterFunc(e.ttl, func() { e.expire(seq) })
	sink := e.sink
	e.mu.Unlock()

	if sink != nil {
		sink(n)
	}
}

// expire clears the notification only if it has not been replaced since the
// timer was armed.
func (e *Emitter) expire(seq uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.seq == seq {
		e.current = nil
	}
}

// Current returns the visible notification, or nil when none is showing.
func (e *Emitter) Current() *Notification {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current == nil {
		return nil
	}
	n := *e.current
	return &n
}
