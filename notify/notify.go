// Package notify is the in-process toast queue behind the storefront's
// feedback widgets. Toasts appear shortly after insertion, auto-dismiss
// after their duration, and removal is two-phase: a toast is first marked
// invisible, then physically dropped after a fixed transition window.
// No ordering is guaranteed for overlapping toasts beyond the insertion
// order of their visibility timers.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	Success Type = "success"
	Error   Type = "error"
	Warning Type = "warning"
	Info    Type = "info"
)

const (
	DefaultDuration = 3 * time.Second

	showDelay       = 50 * time.Millisecond
	transitionDelay = 300 * time.Millisecond
)

type Toast struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Type    Type   `json:"type"`
	Visible bool   `json:"visible"`
}

// Queue owns its toasts and their timers. Close stops every pending timer;
// after Close all operations are no-ops.
type Queue struct {
	mu     sync.Mutex
	toasts []Toast
	timers map[string][]*time.Timer
	closed bool
}

func NewQueue() *Queue {
	return &Queue{timers: make(map[string][]*time.Timer)}
}

// Show queues a toast and returns its id. The toast turns visible after a
// short delay (the transition window on the way in) and auto-dismisses
// after duration.
func (q *Queue) Show(message string, typ Type, duration time.Duration) string {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ""
	}

	id := uuid.NewString()
	q.toasts = append(q.toasts, Toast{ID: id, Message: message, Type: typ})

	q.timers[id] = append(q.timers[id],
		time.AfterFunc(showDelay, func() { q.setVisible(id) }),
		time.AfterFunc(duration, func() { q.Remove(id) }),
	)
	return id
}

// Remove marks the toast invisible and drops it after the transition window
func (q *Queue) Remove(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}

	for i := range q.toasts {
		if q.toasts[i].ID == id {
			q.toasts[i].Visible = false
			q.timers[id] = append(q.timers[id],
				time.AfterFunc(transitionDelay, func() { q.drop(id) }))
			return
		}
	}
}

func (q *Queue) Success(message string) string { return q.Show(message, Success, DefaultDuration) }
func (q *Queue) Error(message string) string   { return q.Show(message, Error, DefaultDuration) }
func (q *Queue) Warning(message string) string { return q.Show(message, Warning, DefaultDuration) }
func (q *Queue) Info(message string) string    { return q.Show(message, Info, DefaultDuration) }

// Toasts snapshots the queue in insertion order
func (q *Queue) Toasts() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Toast, len(q.toasts))
	copy(out, q.toasts)
	return out
}

// Close cancels all pending timers and freezes the queue
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	for _, timers := range q.timers {
		for _, t := range timers {
			t.Stop()
		}
	}
	q.timers = make(map[string][]*time.Timer)
}

func (q *Queue) setVisible(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	for i := range q.toasts {
		if q.toasts[i].ID == id {
			q.toasts[i].Visible = true
			return
		}
	}
}

func (q *Queue) drop(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	for i := range q.toasts {
		if q.toasts[i].ID == id {
			q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
			break
		}
	}
	for _, t := range q.timers[id] {
		t.Stop()
	}
	delete(q.timers, id)
}
