package clock

import (
	"sort"
	"time"
)

// Manual is a deterministic Scheduler for tests. Time only moves when Advance
// is called, and due callbacks run synchronously on the calling goroutine in
// due-time order.
type Manual struct {
	nowMs  int64
	nextID int
	tasks  []*manualTask
}

type manualTask struct {
	id         int
	dueMs      int64
	intervalMs int64 // 0 for one-shot frame callbacks
	fn         func()
	cancelled  bool
}

// NewManual creates a manual scheduler starting at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Now returns the current manual time in milliseconds.
func (m *Manual) Now() int64 {
	return m.nowMs
}

// ScheduleRecurring registers fn to fire every interval of manual time.
func (m *Manual) ScheduleRecurring(fn func(), interval time.Duration) Handle {
	return m.add(fn, interval.Milliseconds(), interval.Milliseconds())
}

// ScheduleFrame registers fn to fire once, one frame interval from now.
func (m *Manual) ScheduleFrame(fn func()) Handle {
	return m.add(fn, FrameInterval.Milliseconds(), 0)
}

func (m *Manual) add(fn func(), delayMs, intervalMs int64) Handle {
	if delayMs < 1 {
		delayMs = 1
	}
	t := &manualTask{
		id:         m.nextID,
		dueMs:      m.nowMs + delayMs,
		intervalMs: intervalMs,
		fn:         fn,
	}
	m.nextID++
	m.tasks = append(m.tasks, t)
	return t
}

func (t *manualTask) Cancel() {
	t.cancelled = true
}

// Advance moves manual time forward by d, firing every due callback in order.
// Callbacks may schedule or cancel further work; newly scheduled work due
// within the same window also fires.
func (m *Manual) Advance(d time.Duration) {
	target := m.nowMs + d.Milliseconds()
	for {
		next := m.earliestDue(target)
		if next == nil {
			break
		}
		m.nowMs = next.dueMs
		if next.intervalMs > 0 {
			next.dueMs += next.intervalMs
		} else {
			next.cancelled = true
		}
		next.fn()
		m.compact()
	}
	m.nowMs = target
}

// earliestDue returns the uncancelled task with the smallest due time not past
// target, breaking ties by registration order.
func (m *Manual) earliestDue(target int64) *manualTask {
	var best *manualTask
	for _, t := range m.tasks {
		if t.cancelled || t.dueMs > target {
			continue
		}
		if best == nil || t.dueMs < best.dueMs || (t.dueMs == best.dueMs && t.id < best.id) {
			best = t
		}
	}
	return best
}

func (m *Manual) compact() {
	live := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	m.tasks = live
	sort.SliceStable(m.tasks, func(i, j int) bool { return m.tasks[i].id < m.tasks[j].id })
}

// PendingCount reports how many callbacks are still scheduled. Tests use it to
// check that stopped drivers released their timers.
func (m *Manual) PendingCount() int {
	n := 0
	for _, t := range m.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}
