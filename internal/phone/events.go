package phone

type EventType int

const (
	EventPowerChanged EventType = iota
	EventVolumeChanged
	EventButtonPressed
	EventBootProgress
)

type Event struct {
	Type     EventType
	Control  Control
	State    PowerState
	Volume   int
	MaxVol   int
	Progress float64
}

type EventHandler func(Event)

// EventBus fans session events out to observers (logging, audio).
// Handlers run synchronously on the session goroutine.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
