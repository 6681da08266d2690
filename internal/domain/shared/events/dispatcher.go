package events

import (
	"fmt"
	"log/slog"
	"sync"
)

// InMemoryEventDispatcher fans events out to registered handlers from a
// single worker goroutine. Handlers run sequentially per event, so a handler
// observing its own writes never races a later event for the same aggregate.
// Handler errors are logged and never reach the publisher.
type InMemoryEventDispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]EventHandler
	running  bool

	eventCh chan DomainEvent
	stopCh  chan struct{}
	done    chan struct{}
}

func NewInMemoryEventDispatcher(bufferSize int) *InMemoryEventDispatcher {
	if bufferSize <= 0 {
		bufferSize = 100
	}
	return &InMemoryEventDispatcher{
		handlers: make(map[string][]EventHandler),
		eventCh:  make(chan DomainEvent, bufferSize),
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Publish enqueues one event. It fails when the dispatcher is stopped or the
// buffer is full; callers treat a full buffer as a dropped side effect, not a
// failed mutation.
func (d *InMemoryEventDispatcher) Publish(event DomainEvent) error {
	d.mu.RLock()
	running := d.running
	d.mu.RUnlock()
	if !running {
		return fmt.Errorf("event dispatcher is not running")
	}

	select {
	case d.eventCh <- event:
		return nil
	default:
		return fmt.Errorf("event buffer full, dropping %s", event.GetEventType())
	}
}

func (d *InMemoryEventDispatcher) PublishAll(evts []DomainEvent) error {
	for _, event := range evts {
		if err := d.Publish(event); err != nil {
			return err
		}
	}
	return nil
}

func (d *InMemoryEventDispatcher) Subscribe(eventType string, handler EventHandler) error {
	if eventType == "" {
		return fmt.Errorf("event type cannot be empty")
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
	return nil
}

func (d *InMemoryEventDispatcher) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return fmt.Errorf("event dispatcher is already running")
	}
	d.running = true

	go d.run()
	return nil
}

// Stop drains buffered events before returning so notifications emitted by
// in-flight requests are not lost on shutdown.
func (d *InMemoryEventDispatcher) Stop() error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return fmt.Errorf("event dispatcher is not running")
	}
	d.running = false
	d.mu.Unlock()

	close(d.stopCh)
	<-d.done
	return nil
}

func (d *InMemoryEventDispatcher) run() {
	defer close(d.done)

	for {
		select {
		case event := <-d.eventCh:
			d.dispatch(event)
		case <-d.stopCh:
			for {
				select {
				case event := <-d.eventCh:
					d.dispatch(event)
				default:
					return
				}
			}
		}
	}
}

func (d *InMemoryEventDispatcher) dispatch(event DomainEvent) {
	eventType := event.GetEventType()

	d.mu.RLock()
	handlers := make([]EventHandler, len(d.handlers[eventType]))
	copy(handlers, d.handlers[eventType])
	d.mu.RUnlock()

	for _, handler := range handlers {
		if !handler.CanHandle(eventType) {
			continue
		}
		if err := handler.Handle(event); err != nil {
			slog.Error("domain event handler failed",
				"event_type", eventType,
				"aggregate_id", event.GetAggregateID(),
				"error", err,
			)
		}
	}
}

// HandlerFunc adapts a function to the EventHandler interface for a single
// event type.
type HandlerFunc struct {
	eventType string
	fn        func(DomainEvent) error
}

func NewHandlerFunc(eventType string, fn func(DomainEvent) error) *HandlerFunc {
	return &HandlerFunc{eventType: eventType, fn: fn}
}

func (h *HandlerFunc) Handle(event DomainEvent) error {
	if h.fn == nil {
		return nil
	}
	return h.fn(event)
}

func (h *HandlerFunc) CanHandle(eventType string) bool {
	return h.eventType == eventType
}
