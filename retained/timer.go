package retained

import (
	"sync"
	"sync/atomic"
	"time"
)

// MinInterval is the shortest interval a timer repeats at. Shorter requests
// are raised to it, as browsers clamp setInterval.
const MinInterval = time.Millisecond

// TimerID uniquely identifies a timer.
type TimerID uint64

var nextTimerID atomic.Uint64

func newTimerID() TimerID {
	return TimerID(nextTimerID.Add(1))
}

// Timer is a repeating callback owned by a TimerRegistry.
type Timer struct {
	id       TimerID
	interval time.Duration
	next     time.Time // guarded by the registry mutex
	fn       func()
	registry *TimerRegistry
	stopped  atomic.Bool
}

// ID returns the timer's unique identifier.
func (t *Timer) ID() TimerID {
	return t.id
}

// Interval returns the repeat interval.
func (t *Timer) Interval() time.Duration {
	return t.interval
}

// Stop cancels the timer. Safe to call more than once and from inside the
// timer's own callback.
func (t *Timer) Stop() {
	if t.stopped.Swap(true) {
		return
	}
	t.registry.remove(t.id)
}

// Stopped reports whether Stop was called.
func (t *Timer) Stopped() bool {
	return t.stopped.Load()
}

// TimerRegistry manages live repeating timers. Nothing fires on its own:
// the owner calls Tick with the current time, typically once per frame.
type TimerRegistry struct {
	mu     sync.Mutex
	timers map[TimerID]*Timer
}

// NewTimerRegistry creates an empty registry.
func NewTimerRegistry() *TimerRegistry {
	return &TimerRegistry{
		timers: make(map[TimerID]*Timer),
	}
}

// Every registers fn to run every interval, first at now+interval.
func (r *TimerRegistry) Every(now time.Time, interval time.Duration, fn func()) *Timer {
	if interval < MinInterval {
		interval = MinInterval
	}
	t := &Timer{
		id:       newTimerID(),
		interval: interval,
		next:     now.Add(interval),
		fn:       fn,
		registry: r,
	}

	r.mu.Lock()
	r.timers[t.id] = t
	r.mu.Unlock()
	return t
}

func (r *TimerRegistry) remove(id TimerID) {
	r.mu.Lock()
	delete(r.timers, id)
	r.mu.Unlock()
}

// Count returns the number of live timers.
func (r *TimerRegistry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.timers)
}

// HasActive returns true if any timer is live.
func (r *TimerRegistry) HasActive() bool {
	return r.Count() > 0
}

// NextDue returns the earliest time a live timer fires.
func (r *TimerRegistry) NextDue() (time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.earliestLocked()
	if t == nil {
		return time.Time{}, false
	}
	return t.next, true
}

// earliestLocked returns the live timer due first, breaking ties by creation
// order so callbacks run in a deterministic sequence.
func (r *TimerRegistry) earliestLocked() *Timer {
	var first *Timer
	for _, t := range r.timers {
		if first == nil || t.next.Before(first.next) ||
			(t.next.Equal(first.next) && t.id < first.id) {
			first = t
		}
	}
	return first
}

// Tick runs every callback due at or before now, in due order, and returns
// how many ran. A timer that fell several intervals behind fires once per
// missed interval. Callbacks run without the registry lock held and may start
// or stop timers.
func (r *TimerRegistry) Tick(now time.Time) int {
	fired := 0
	for {
		r.mu.Lock()
		t := r.earliestLocked()
		if t == nil || t.next.After(now) {
			r.mu.Unlock()
			return fired
		}
		t.next = t.next.Add(t.interval)
		r.mu.Unlock()

		if t.stopped.Load() {
			continue
		}
		t.fn()
		fired++
	}
}
