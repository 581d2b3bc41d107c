package shell

import (
	"sync"
	"time"
)

// Navigator owns delayed navigation: a redirect scheduled to fire after the
// user has seen a confirmation (the journal save flow schedules /support
// this way). The task is explicit and cancellable, so a logout before the
// delay elapses drops the navigation instead of firing it against a dead
// session.
type Navigator struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending string
}

func NewNavigator() *Navigator {
	return &Navigator{}
}

// ScheduleAfter arms a navigation to path after the delay. A newer schedule
// replaces an older one that has not fired yet.
func (n *Navigator) ScheduleAfter(delay time.Duration, path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(delay, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		n.pending = path
		n.timer = nil
	})
}

// Cancel drops any armed or fired navigation.
func (n *Navigator) Cancel() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.pending = ""
}

// Consume returns the fired destination once, or "" when nothing is due.
func (n *Navigator) Consume() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	path := n.pending
	n.pending = ""
	return path
}
