package phone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameLimiter(t *testing.T) {
	f := NewFrameLimiter(50) // 20ms
	assert.Equal(t, 20*time.Millisecond, f.Interval())

	assert.True(t, f.Ready(epoch), "first call always runs")
	assert.False(t, f.Ready(epoch.Add(10*time.Millisecond)))
	assert.False(t, f.Ready(epoch.Add(20*time.Millisecond)))
	assert.True(t, f.Ready(epoch.Add(25*time.Millisecond)))

	// The 5ms overshoot carries over: the next frame is due after 40ms, not 45ms.
	assert.False(t, f.Ready(epoch.Add(40*time.Millisecond)))
	assert.True(t, f.Ready(epoch.Add(41*time.Millisecond)))
}

func TestFrameLimiter_LongRunRate(t *testing.T) {
	f := NewFrameLimiter(60)
	frames := 0
	// Poll at 1ms for one simulated second.
	for ms := 0; ms <= 1000; ms++ {
		if f.Ready(epoch.Add(time.Duration(ms) * time.Millisecond)) {
			frames++
		}
	}
	assert.InDelta(t, 60, frames, 2)
}

func TestFrameLimiter_DefaultRate(t *testing.T) {
	f := NewFrameLimiter(0)
	assert.Equal(t, time.Second/60, f.Interval())
}
