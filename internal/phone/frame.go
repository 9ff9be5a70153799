package phone

import "time"

// FrameLimiter gates the per-frame update to a fixed rate. The remainder of
// each interval carries over so the long-run rate does not drift.
type FrameLimiter struct {
	interval time.Duration
	last     time.Time
	started  bool
}

// NewFrameLimiter returns a limiter targeting fps frames per second.
func NewFrameLimiter(fps float64) *FrameLimiter {
	if fps <= 0 {
		fps = 60
	}
	return &FrameLimiter{interval: time.Duration(float64(time.Second) / fps)}
}

// Interval returns the target frame interval.
func (f *FrameLimiter) Interval() time.Duration { return f.interval }

// Ready reports whether a frame should run at now.
func (f *FrameLimiter) Ready(now time.Time) bool {
	if !f.started {
		f.started = true
		f.last = now
		return true
	}
	elapsed := now.Sub(f.last)
	if elapsed <= f.interval {
		return false
	}
	f.last = now.Add(-(elapsed % f.interval))
	return true
}
