// Package notify implements the notification queue: transient pop-up
// alerts with timed auto-dismiss, plus a capped history log with
// read/unread tracking.
package notify

import (
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"finboard/internal/core"
)

const (
	// DefaultDuration is how long an alert stays active when the
	// caller does not specify one.
	DefaultDuration = 6 * time.Second

	// HistoryCap bounds the history log to the most recent entries.
	HistoryCap = 50
)

// Notification is one history entry.
type Notification struct {
	ID        string        `json:"id"`
	Message   string        `json:"message"`
	Severity  core.Severity `json:"severity"`
	Timestamp time.Time     `json:"timestamp"`
	Read      bool          `json:"read"`
}

// Alert is the active (pop-up) projection of a notification.
type Alert struct {
	Notification
	Duration time.Duration `json:"duration"`
}

// Center owns both projections of the queue. Auto-dismiss timers are
// kept per notification id so a manual dismiss cancels the pending
// timer instead of relying on the removal being a no-op later.
type Center struct {
	mu      sync.Mutex
	active  []Alert
	history []Notification
	unread  int
	timers  map[string]*time.Timer

	subs    map[int]func()
	nextSub int
}

func NewCenter() *Center {
	return &Center{
		timers: make(map[string]*time.Timer),
		subs:   make(map[int]func()),
	}
}

// Show enqueues a notification. It assigns an id, prepends the entry to
// the history log (evicting past the cap), appends it to the active
// alerts, and schedules removal from the active list after duration.
// A non-positive duration means DefaultDuration.
func (c *Center) Show(message string, severity core.Severity, duration time.Duration) string {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if severity.Validate() != nil {
		severity = core.SeveritySuccess
	}

	n := Notification{
		ID:        uuid.Must(uuid.NewV4()).String(),
		Message:   message,
		Severity:  severity,
		Timestamp: time.Now(),
	}

	c.mu.Lock()
	c.history = append([]Notification{n}, c.history...)
	if len(c.history) > HistoryCap {
		c.history = c.history[:HistoryCap]
	}
	c.active = append(c.active, Alert{Notification: n, Duration: duration})
	c.unread++
	c.timers[n.ID] = time.AfterFunc(duration, func() { c.expire(n.ID) })
	c.mu.Unlock()

	c.notifySubs()
	return n.ID
}

// Dismiss removes an alert from the active list early and cancels its
// timer. The history entry is untouched.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}
	c.removeActiveLocked(id)
	c.mu.Unlock()
	c.notifySubs()
}

func (c *Center) expire(id string) {
	c.mu.Lock()
	delete(c.timers, id)
	c.removeActiveLocked(id)
	c.mu.Unlock()
	c.notifySubs()
}

func (c *Center) removeActiveLocked(id string) {
	kept := c.active[:0]
	for _, a := range c.active {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	c.active = kept
}

// MarkRead flags one history entry as read and recomputes the unread
// count.
func (c *Center) MarkRead(id string) {
	c.mu.Lock()
	for i := range c.history {
		if c.history[i].ID == id {
			c.history[i].Read = true
		}
	}
	c.recountLocked()
	c.mu.Unlock()
	c.notifySubs()
}

// MarkAllRead flags every history entry as read, driving the unread
// count to zero.
func (c *Center) MarkAllRead() {
	c.mu.Lock()
	for i := range c.history {
		c.history[i].Read = true
	}
	c.unread = 0
	c.mu.Unlock()
	c.notifySubs()
}

func (c *Center) recountLocked() {
	n := 0
	for _, entry := range c.history {
		if !entry.Read {
			n++
		}
	}
	c.unread = n
}

// Active returns a snapshot of the pop-up alerts.
func (c *Center) Active() []Alert {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Alert(nil), c.active...)
}

// History returns a snapshot of the history log, newest first.
func (c *Center) History() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Notification(nil), c.history...)
}

func (c *Center) Unread() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unread
}

// Subscribe registers a callback invoked after every mutation. The
// returned func cancels the subscription.
func (c *Center) Subscribe(fn func()) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

func (c *Center) notifySubs() {
	c.mu.Lock()
	fns := make([]func(), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Close cancels all outstanding auto-dismiss timers.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
}
