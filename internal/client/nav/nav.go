// Package nav implements the tabbed navigation state machine: which section
// is active, how the active tab survives a reload within a session, and the
// two-phase transition sequencing between tabs.
package nav

import (
	"sync"
	"time"
)

// Tab is the closed set of client sections.
type Tab string

const (
	TabHome     Tab = "home"
	TabSubmit   Tab = "submit"
	TabBank     Tab = "bank"
	TabContacts Tab = "contacts"
)

// tabOrder fixes the linear ordering used to compute transition direction.
var tabOrder = map[Tab]int{
	TabHome:     0,
	TabSubmit:   1,
	TabBank:     2,
	TabContacts: 3,
}

// ParseTab validates a stored tab value. Anything outside the set falls back
// to home.
func ParseTab(s string) (Tab, bool) {
	t := Tab(s)
	_, ok := tabOrder[t]
	if !ok {
		return TabHome, false
	}
	return t, true
}

// Phase is the transition state of the active view.
type Phase string

const (
	PhaseIdle Phase = "idle"
	PhaseOut  Phase = "out"
	PhaseIn   Phase = "in"
)

// Direction of a transition along the tab ordering.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

const sessionKeyActiveTab = "active_tab"

// Navigator drives tab changes. A change enters PhaseOut for outDelay, then
// atomically swaps the active tab, persists it to the session store, fires
// the leave/enter hooks and enters PhaseIn for inDelay before settling back
// to PhaseIdle.
type Navigator struct {
	mu       sync.Mutex
	store    SessionStore
	active   Tab
	phase    Phase
	dir      Direction
	outDelay time.Duration
	inDelay  time.Duration
	seq      uint64

	onEnter func(Tab)
	onLeave func(Tab)
}

// NewNavigator restores the active tab from the session store, falling back
// to home when the stored value is absent or invalid.
func NewNavigator(store SessionStore, outDelay, inDelay time.Duration) *Navigator {
	active := TabHome
	if saved, ok := store.Get(sessionKeyActiveTab); ok {
		active, _ = ParseTab(saved)
	}

	return &Navigator{
		store:    store,
		active:   active,
		phase:    PhaseIdle,
		dir:      Forward,
		outDelay: outDelay,
		inDelay:  inDelay,
	}
}

// SetHooks registers the enter/leave callbacks fired at the tab swap point.
// The bank view uses these to start and stop its polling ticker.
func (n *Navigator) SetHooks(onEnter, onLeave func(Tab)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onEnter = onEnter
	n.onLeave = onLeave
}

func (n *Navigator) Active() Tab {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.active
}

func (n *Navigator) Phase() Phase {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.phase
}

func (n *Navigator) Direction() Direction {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.dir
}

// Go requests a transition to target. Requests for the current tab or for an
// unknown tab are ignored. A new request supersedes an in-flight transition.
func (n *Navigator) Go(target Tab) {
	if _, ok := tabOrder[target]; !ok {
		return
	}

	n.mu.Lock()
	if target == n.active {
		n.mu.Unlock()
		return
	}

	if tabOrder[target] > tabOrder[n.active] {
		n.dir = Forward
	} else {
		n.dir = Backward
	}
	n.phase = PhaseOut
	n.seq++
	seq := n.seq
	n.mu.Unlock()

	time.AfterFunc(n.outDelay, func() { n.swap(seq, target) })
}

func (n *Navigator) swap(seq uint64, target Tab) {
	n.mu.Lock()
	if n.seq != seq {
		n.mu.Unlock()
		return
	}

	prev := n.active
	n.active = target
	n.phase = PhaseIn
	n.store.Set(sessionKeyActiveTab, string(target))
	onLeave, onEnter := n.onLeave, n.onEnter
	n.mu.Unlock()

	if onLeave != nil {
		onLeave(prev)
	}
	if onEnter != nil {
		onEnter(target)
	}

	time.AfterFunc(n.inDelay, func() { n.settle(seq) })
}

func (n *Navigator) settle(seq uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.seq == seq {
		n.phase = PhaseIdle
	}
}
