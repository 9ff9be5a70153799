package phone

import "time"

// Timer is a pending callback owned by a Scheduler.
type Timer struct {
	at     time.Time
	every  time.Duration
	fn     func(now time.Time)
	active bool
	seq    uint64
}

// Stop cancels the timer. It reports whether the timer was still pending.
// Stop on a nil timer is a no-op.
func (t *Timer) Stop() bool {
	if t == nil || !t.active {
		return false
	}
	t.active = false
	return true
}

// Active reports whether the timer will still fire.
func (t *Timer) Active() bool { return t != nil && t.active }

// Scheduler runs one-shot and repeating callbacks on the caller's goroutine.
// Nothing fires on its own: the host loop calls Advance every iteration, so
// all session state stays single-threaded.
type Scheduler struct {
	now    time.Time
	timers []*Timer
	seq    uint64
}

// NewScheduler returns a scheduler whose current time is start.
func NewScheduler(start time.Time) *Scheduler {
	return &Scheduler{now: start}
}

// Now returns the time of the last Advance.
func (s *Scheduler) Now() time.Time { return s.now }

// After runs fn once, d after the scheduler's current time.
func (s *Scheduler) After(d time.Duration, fn func(now time.Time)) *Timer {
	return s.add(d, 0, fn)
}

// Every runs fn each period. Periods missed by a late Advance collapse into a
// single call.
func (s *Scheduler) Every(period time.Duration, fn func(now time.Time)) *Timer {
	if period <= 0 {
		period = time.Millisecond
	}
	return s.add(period, period, fn)
}

func (s *Scheduler) add(d, every time.Duration, fn func(now time.Time)) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{at: s.now.Add(d), every: every, fn: fn, active: true, seq: s.seq}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the scheduler to now and fires every due timer in deadline
// order. Callbacks receive now and may schedule or stop other timers.
func (s *Scheduler) Advance(now time.Time) {
	if now.After(s.now) {
		s.now = now
	}
	for {
		next := s.nextDue()
		if next == nil {
			break
		}
		if next.every > 0 {
			next.at = next.at.Add(next.every)
			if !next.at.After(s.now) {
				next.at = s.now.Add(next.every)
			}
		} else {
			next.active = false
		}
		next.fn(s.now)
	}
	s.compact()
}

// nextDue returns the earliest active timer due at or before s.now.
func (s *Scheduler) nextDue() *Timer {
	var best *Timer
	for _, t := range s.timers {
		if !t.active || t.at.After(s.now) {
			continue
		}
		if best == nil || t.at.Before(best.at) || (t.at.Equal(best.at) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (s *Scheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if t.active {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = live
}

// Pending returns the number of timers that will still fire.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if t.active {
			n++
		}
	}
	return n
}
