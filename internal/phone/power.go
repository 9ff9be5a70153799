package phone

import (
	"math"
	"time"
)

// PowerState is the phone's lifecycle stage.
type PowerState int

const (
	PowerOff PowerState = iota
	PowerBooting
	PowerHome
)

func (s PowerState) String() string {
	switch s {
	case PowerOff:
		return "off"
	case PowerBooting:
		return "booting"
	case PowerHome:
		return "home"
	}
	return "unknown"
}

// On reports whether the screen is lit.
func (s PowerState) On() bool { return s != PowerOff }

// PowerMachine drives OFF -> BOOTING -> HOME. The boot runs as one chain of
// timer ticks; each tick is clamped so the last one lands exactly on the
// boot deadline, and any power-off cancels the chain.
type PowerMachine struct {
	sched    *Scheduler
	duration time.Duration
	interval time.Duration

	state    PowerState
	progress float64
	start    time.Time
	tick     *Timer

	onChange func(state PowerState, progress float64)
}

// NewPowerMachine returns a machine in PowerOff. onChange runs after every
// state or progress change.
func NewPowerMachine(sched *Scheduler, duration, interval time.Duration, onChange func(PowerState, float64)) *PowerMachine {
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	if duration < 0 {
		duration = 0
	}
	return &PowerMachine{
		sched:    sched,
		duration: duration,
		interval: interval,
		onChange: onChange,
	}
}

func (m *PowerMachine) State() PowerState { return m.state }

// Progress is the boot progress in percent, 0..100.
func (m *PowerMachine) Progress() float64 { return m.progress }

// Toggle powers on from OFF and powers off from anything else, including a
// boot in progress.
func (m *PowerMachine) Toggle() {
	if m.state == PowerOff {
		m.PowerOn()
		return
	}
	m.PowerOff()
}

// PowerOn starts the boot sequence. It does nothing unless the phone is off.
func (m *PowerMachine) PowerOn() {
	if m.state != PowerOff {
		return
	}
	m.state = PowerBooting
	m.progress = 0
	m.start = m.sched.Now()
	m.notify()
	m.schedule(m.start)
}

// PowerOff returns to OFF and cancels a pending boot.
func (m *PowerMachine) PowerOff() {
	if m.state == PowerOff {
		return
	}
	m.tick.Stop()
	m.tick = nil
	m.state = PowerOff
	m.progress = 0
	m.notify()
}

func (m *PowerMachine) schedule(now time.Time) {
	remaining := m.duration - now.Sub(m.start)
	next := m.interval
	if remaining < next {
		next = remaining
	}
	m.tick = m.sched.After(next, m.step)
}

func (m *PowerMachine) step(now time.Time) {
	if m.state != PowerBooting {
		return
	}
	elapsed := now.Sub(m.start)
	if elapsed >= m.duration {
		m.tick = nil
		m.progress = 100
		m.state = PowerHome
		m.notify()
		return
	}
	m.progress = math.Min(100, float64(elapsed)/float64(m.duration)*100)
	m.notify()
	m.schedule(now)
}

func (m *PowerMachine) notify() {
	if m.onChange != nil {
		m.onChange(m.state, m.progress)
	}
}
