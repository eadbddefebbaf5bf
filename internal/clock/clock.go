// Package clock abstracts time and tick scheduling so playback and the sky
// cycle can be driven by real timers in the binary and by a manual clock in
// tests.
package clock

import (
	"sync"
	"time"
)

// FrameInterval approximates one display frame for ScheduleFrame.
const FrameInterval = 16 * time.Millisecond

// Handle cancels a scheduled callback. After Cancel returns, the callback will
// not fire again.
type Handle interface {
	Cancel()
}

// Scheduler provides recurring and per-frame callbacks plus a monotonic clock.
type Scheduler interface {
	// ScheduleRecurring invokes fn every interval until the handle is cancelled.
	ScheduleRecurring(fn func(), interval time.Duration) Handle
	// ScheduleFrame invokes fn once, roughly one frame from now.
	ScheduleFrame(fn func()) Handle
	// Now returns monotonic milliseconds.
	Now() int64
}

// System is a Scheduler backed by real timers.
type System struct {
	start time.Time
	frame time.Duration
}

// NewSystem creates a system scheduler with the default frame interval.
func NewSystem() *System {
	return NewSystemWithFrameInterval(FrameInterval)
}

// NewSystemWithFrameInterval creates a system scheduler whose per-frame
// callbacks fire at the given spacing.
func NewSystemWithFrameInterval(frame time.Duration) *System {
	if frame <= 0 {
		frame = FrameInterval
	}
	return &System{start: time.Now(), frame: frame}
}

// Now returns milliseconds since the scheduler was created.
func (s *System) Now() int64 {
	return time.Since(s.start).Milliseconds()
}

// ScheduleRecurring runs fn on a ticker goroutine until cancelled.
func (s *System) ScheduleRecurring(fn func(), interval time.Duration) Handle {
	h := &systemHandle{done: make(chan struct{})}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-h.done:
				return
			case <-ticker.C:
				h.mu.Lock()
				cancelled := h.cancelled
				h.mu.Unlock()
				if cancelled {
					return
				}
				fn()
			}
		}
	}()
	return h
}

// ScheduleFrame runs fn once after one frame interval.
func (s *System) ScheduleFrame(fn func()) Handle {
	h := &systemHandle{done: make(chan struct{})}
	timer := time.NewTimer(s.frame)
	go func() {
		defer timer.Stop()
		select {
		case <-h.done:
		case <-timer.C:
			h.mu.Lock()
			cancelled := h.cancelled
			h.mu.Unlock()
			if !cancelled {
				fn()
			}
		}
	}()
	return h
}

type systemHandle struct {
	mu        sync.Mutex
	cancelled bool
	done      chan struct{}
}

func (h *systemHandle) Cancel() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancelled {
		return
	}
	h.cancelled = true
	close(h.done)
}
