// Licensed under the MIT license. See license text in the LICENSE file.

package ternsim

import (
	"container/heap"
	"time"
)

// A Scheduler is a deterministic one-shot event queue running on simulated
// time. Events fire in order of scheduled fire time, ties broken by
// submission order; scheduled events cannot be cancelled. Gates configured
// with WithDelay queue their output writes here instead of applying them
// inline, and time only advances when the caller says so.
//
type Scheduler struct {
	now time.Duration
	seq uint64
	q   eventQueue
}

type event struct {
	at  time.Duration
	seq uint64
	fn  func() error
}

type eventQueue []*event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x interface{}) { *q = append(*q, x.(*event)) }

func (q *eventQueue) Pop() interface{} {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return e
}

// NewScheduler returns an empty scheduler at simulated time zero.
//
func NewScheduler() *Scheduler { return &Scheduler{} }

// Now returns the current simulated time.
//
func (s *Scheduler) Now() time.Duration { return s.now }

// Pending returns the number of queued events.
//
func (s *Scheduler) Pending() int { return len(s.q) }

// After schedules fn to fire d after the current simulated time. A negative
// d is treated as zero.
//
func (s *Scheduler) After(d time.Duration, fn func() error) {
	if d < 0 {
		d = 0
	}
	heap.Push(&s.q, &event{at: s.now + d, seq: s.seq, fn: fn})
	s.seq++
}

// RunNext pops and runs the earliest queued event, advancing simulated time
// to its fire time. It reports whether an event ran.
//
func (s *Scheduler) RunNext() (bool, error) {
	if len(s.q) == 0 {
		return false, nil
	}
	e := heap.Pop(&s.q).(*event)
	if e.at > s.now {
		s.now = e.at
	}
	return true, e.fn()
}

// Advance moves simulated time forward by d, running every event due in the
// interval in fire-time order. Events scheduled while advancing run too if
// they fall within the interval. Advance stops at the first event error.
//
func (s *Scheduler) Advance(d time.Duration) error {
	deadline := s.now + d
	for len(s.q) > 0 && s.q[0].at <= deadline {
		if _, err := s.RunNext(); err != nil {
			return err
		}
	}
	s.now = deadline
	return nil
}
