package phone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)

func TestScheduler_AfterFiresOnce(t *testing.T) {
	s := NewScheduler(epoch)
	fired := 0
	s.After(100*time.Millisecond, func(time.Time) { fired++ })

	s.Advance(epoch.Add(99 * time.Millisecond))
	assert.Equal(t, 0, fired)
	s.Advance(epoch.Add(100 * time.Millisecond))
	assert.Equal(t, 1, fired)
	s.Advance(epoch.Add(time.Second))
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, s.Pending())
}

func TestScheduler_Stop(t *testing.T) {
	s := NewScheduler(epoch)
	fired := false
	tm := s.After(10*time.Millisecond, func(time.Time) { fired = true })

	assert.True(t, tm.Stop())
	assert.False(t, tm.Stop())
	s.Advance(epoch.Add(time.Second))
	assert.False(t, fired)

	var nilTimer *Timer
	assert.False(t, nilTimer.Stop())
}

func TestScheduler_DeadlineOrder(t *testing.T) {
	s := NewScheduler(epoch)
	var order []string
	s.After(30*time.Millisecond, func(time.Time) { order = append(order, "c") })
	s.After(10*time.Millisecond, func(time.Time) { order = append(order, "a") })
	s.After(20*time.Millisecond, func(time.Time) { order = append(order, "b") })

	s.Advance(epoch.Add(time.Second))
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestScheduler_EveryCollapsesMissedPeriods(t *testing.T) {
	s := NewScheduler(epoch)
	count := 0
	tm := s.Every(50*time.Millisecond, func(time.Time) { count++ })

	s.Advance(epoch.Add(50 * time.Millisecond))
	assert.Equal(t, 1, count)

	// A stalled loop fires the repeating timer once, not once per period.
	s.Advance(epoch.Add(time.Second))
	assert.Equal(t, 2, count)

	s.Advance(epoch.Add(time.Second + 50*time.Millisecond))
	assert.Equal(t, 3, count)

	tm.Stop()
	s.Advance(epoch.Add(2 * time.Second))
	assert.Equal(t, 3, count)
}

func TestScheduler_CallbackCanReschedule(t *testing.T) {
	s := NewScheduler(epoch)
	var at []time.Duration
	var step func(now time.Time)
	step = func(now time.Time) {
		at = append(at, now.Sub(epoch))
		if len(at) < 3 {
			s.After(10*time.Millisecond, step)
		}
	}
	s.After(10*time.Millisecond, step)

	for i := 1; i <= 5; i++ {
		s.Advance(epoch.Add(time.Duration(i*10) * time.Millisecond))
	}
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 30 * time.Millisecond}, at)
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(epoch)
	assert.Equal(t, epoch, c.Now())
	c.Advance(time.Minute)
	assert.Equal(t, epoch.Add(time.Minute), c.Now())
	c.Set(epoch)
	assert.Equal(t, epoch, c.Now())
}
