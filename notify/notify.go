// Package notify provides api.Notifier implementations.
//
// The facade emits at most one notification per call. These notifiers
// decide where it goes: a log, a channel read by a UI loop, an in-memory
// record, or several of those at once.
package notify

import (
	"io"
	"sync"

	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/api"
	"github.com/sirupsen/logrus"
)

// Log writes notifications to a logrus logger. Success notifications are
// logged at info level, errors at error level.
type Log struct {
	logger logrus.FieldLogger
}

// NewLog creates a notifier writing to logger. A nil logger discards
// notifications.
func NewLog(logger logrus.FieldLogger) *Log {
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	return &Log{logger: logger}
}

// Notify implements api.Notifier.
func (l *Log) Notify(n api.Notification) {
	entry := l.logger.WithField("severity", string(n.Severity))
	if n.Severity == api.SeverityError {
		entry.Error(n.Message)
		return
	}
	entry.Info(n.Message)
}

// Channel forwards notifications to a buffered channel without blocking.
// Notifications arriving while the buffer is full are dropped and counted.
type Channel struct {
	ch chan api.Notification

	mu      sync.Mutex
	dropped int
}

// NewChannel creates a notifier with the given buffer size.
func NewChannel(size int) *Channel {
	if size < 1 {
		size = 1
	}
	return &Channel{ch: make(chan api.Notification, size)}
}

// C returns the channel notifications are delivered on.
func (c *Channel) C() <-chan api.Notification {
	return c.ch
}

// Dropped returns how many notifications were discarded.
func (c *Channel) Dropped() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dropped
}

// Notify implements api.Notifier.
func (c *Channel) Notify(n api.Notification) {
	select {
	case c.ch <- n:
	default:
		c.mu.Lock()
		c.dropped++
		c.mu.Unlock()
	}
}

// Recorder keeps every notification in memory.
type Recorder struct {
	mu    sync.Mutex
	items []api.Notification
}

// Notify implements api.Notifier.
func (r *Recorder) Notify(n api.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// All returns the recorded notifications in order.
func (r *Recorder) All() []api.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]api.Notification(nil), r.items...)
}

// Last returns the most recent notification.
func (r *Recorder) Last() (api.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return api.Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

// Reset discards the recorded notifications.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
}

// Multi fans a notification out to several notifiers in order.
type Multi []api.Notifier

// Notify implements api.Notifier.
func (m Multi) Notify(n api.Notification) {
	for _, notifier := range m {
		if notifier != nil {
			notifier.Notify(n)
		}
	}
}

var (
	_ api.Notifier = (*Log)(nil)
	_ api.Notifier = (*Channel)(nil)
	_ api.Notifier = (*Recorder)(nil)
	_ api.Notifier = Multi(nil)
)
