package shell

import (
	"sync"

	"github.com/google/uuid"
)

// Notice is one transient, non-blocking notification. Failures surface as
// notices; nothing in the client treats them as fatal.
type Notice struct {
	ID      string `json:"id"`
	Level   string `json:"level"`
	Message string `json:"message"`
}

const (
	LevelSuccess = "success"
	LevelError   = "error"
	LevelInfo    = "info"
)

// Notifier queues notices until the next rendered view drains them.
type Notifier struct {
	mu      sync.Mutex
	pending []Notice
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) push(level, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = append(n.pending, Notice{
		ID:      uuid.New().String(),
		Level:   level,
		Message: message,
	})
}

func (n *Notifier) Success(message string) { n.push(LevelSuccess, message) }
func (n *Notifier) Error(message string)   { n.push(LevelError, message) }
func (n *Notifier) Info(message string)    { n.push(LevelInfo, message) }

// Drain returns the queued notices and clears the queue.
func (n *Notifier) Drain() []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	drained := n.pending
	n.pending = nil
	return drained
}
