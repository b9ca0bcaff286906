// Package clock is the game clock: a monotonically increasing time value in
// milliseconds plus one-shot and repeating callbacks keyed to it.
//
// Nothing here runs on its own goroutine. Callbacks fire synchronously from
// Advance, in due-time order, on the caller's goroutine.
package clock

import (
	"container/heap"
	"log"
)

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

// minInterval keeps a repeating timer from firing unboundedly within one Advance.
const minInterval = 1.0

type timer struct {
	id       Handle
	due      float64
	interval float64
	repeat   bool
	fn       func()
	seq      uint64
	index    int
}

// Clock is a pausable game clock. The zero value is not usable; call New.
type Clock struct {
	now    float64
	paused bool
	nextID Handle
	seq    uint64
	queue  timerQueue
	timers map[Handle]*timer
}

func New() *Clock {
	return &Clock{timers: make(map[Handle]*timer)}
}

// Now returns the current game time in milliseconds.
func (c *Clock) Now() float64 {
	return c.now
}

// After schedules fn to run once, delay milliseconds from now.
func (c *Clock) After(delay float64, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	return c.schedule(delay, 0, false, fn)
}

// Every schedules fn to run every interval milliseconds, first after one interval.
func (c *Clock) Every(interval float64, fn func()) Handle {
	if interval < minInterval {
		interval = minInterval
	}
	return c.schedule(interval, interval, true, fn)
}

func (c *Clock) schedule(delay, interval float64, repeat bool, fn func()) Handle {
	c.nextID++
	c.seq++
	t := &timer{
		id:       c.nextID,
		due:      c.now + delay,
		interval: interval,
		repeat:   repeat,
		fn:       fn,
		seq:      c.seq,
	}
	c.timers[t.id] = t
	heap.Push(&c.queue, t)
	return t.id
}

// Cancel removes a scheduled callback. It reports false when the handle is
// unknown, already fired (one-shot) or already cancelled.
func (c *Clock) Cancel(h Handle) bool {
	t, ok := c.timers[h]
	if !ok {
		return false
	}
	delete(c.timers, h)
	if t.index >= 0 {
		heap.Remove(&c.queue, t.index)
	}
	return true
}

// Pending reports whether h is still scheduled.
func (c *Clock) Pending(h Handle) bool {
	_, ok := c.timers[h]
	return ok
}

// Remaining returns the milliseconds left before h fires next.
func (c *Clock) Remaining(h Handle) (float64, bool) {
	t, ok := c.timers[h]
	if !ok {
		return 0, false
	}
	return t.due - c.now, true
}

func (c *Clock) Pause() {
	c.paused = true
}

func (c *Clock) Resume() {
	c.paused = false
}

func (c *Clock) Paused() bool {
	return c.paused
}

// Len returns the number of scheduled callbacks.
func (c *Clock) Len() int {
	return len(c.timers)
}

// Reset drops every scheduled callback and rewinds the clock to zero.
func (c *Clock) Reset() {
	c.now = 0
	c.paused = false
	c.queue = c.queue[:0]
	c.timers = make(map[Handle]*timer)
}

// Advance moves game time forward by dt milliseconds and fires every
// callback that falls due, in order. While a callback runs, Now reports its
// due time. A paused clock does not move. If a callback pauses the clock,
// time stops at that callback's due time.
func (c *Clock) Advance(dt float64) {
	if c.paused || dt <= 0 {
		return
	}
	target := c.now + dt

	for len(c.queue) > 0 {
		t := c.queue[0]
		if t.due > target {
			break
		}
		heap.Pop(&c.queue)
		if t.due > c.now {
			c.now = t.due
		}

		if t.repeat {
			c.seq++
			t.seq = c.seq
			t.due += t.interval
			heap.Push(&c.queue, t)
		} else {
			delete(c.timers, t.id)
		}

		c.fire(t)

		if c.paused {
			return
		}
	}
	c.now = target
}

func (c *Clock) fire(t *timer) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Warning: timer %d callback panicked: %v", t.id, r)
		}
	}()
	t.fn()
}

type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].seq < q[j].seq
	}
	return q[i].due < q[j].due
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
