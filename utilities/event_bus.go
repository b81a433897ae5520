package utilities

import "sync"

// Event names.
const (
	EventAssessmentSubmitted = "assessment_submitted"
)

// Event is what subscribers receive.
type Event struct {
	Name string
	Data interface{}
}

type EventHandler func(Event)

// EventBus is an in-process publish/subscribe bus. Handlers run on their own
// goroutine; a panicking handler is logged and does not affect the others.
type EventBus struct {
	handlers map[string][]EventHandler
	mu       sync.RWMutex
	inFlight sync.WaitGroup
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[string][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(name string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.handlers[name] = append(eb.handlers[name], handler)
}

func (eb *EventBus) Publish(name string, data interface{}) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	ev := Event{Name: name, Data: data}
	for _, handler := range eb.handlers[name] {
		eb.inFlight.Add(1)
		go eb.dispatch(handler, ev)
	}
}

func (eb *EventBus) dispatch(handler EventHandler, ev Event) {
	defer eb.inFlight.Done()
	defer func() {
		if r := recover(); r != nil {
			Error("event handler for %s panicked: %v", ev.Name, r)
		}
	}()
	handler(ev)
}

// Drain blocks until every published event has been handled.
func (eb *EventBus) Drain() {
	eb.inFlight.Wait()
}

// Global instance
var GlobalEventBus = NewEventBus()
