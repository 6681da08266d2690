package events

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent(eventType string) BaseEvent {
	return BaseEvent{
		AggregateID: "1",
		EventType:   eventType,
		OccurredAt:  time.Now().UTC(),
		Version:     1,
	}
}

func TestDispatcher_PublishBeforeStartFails(t *testing.T) {
	d := NewInMemoryEventDispatcher(10)
	err := d.Publish(testEvent("ticket.created"))
	assert.Error(t, err)
}

func TestDispatcher_DeliversToSubscribedHandler(t *testing.T) {
	d := NewInMemoryEventDispatcher(10)
	require.NoError(t, d.Start())
	defer d.Stop()

	var mu sync.Mutex
	received := make([]string, 0, 1)
	done := make(chan struct{})

	handler := NewHandlerFunc("ticket.created", func(e DomainEvent) error {
		mu.Lock()
		received = append(received, e.GetEventType())
		mu.Unlock()
		close(done)
		return nil
	})
	require.NoError(t, d.Subscribe("ticket.created", handler))

	require.NoError(t, d.Publish(testEvent("ticket.created")))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler was not invoked")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"ticket.created"}, received)
}

func TestDispatcher_UnrelatedEventTypeNotDelivered(t *testing.T) {
	d := NewInMemoryEventDispatcher(10)
	require.NoError(t, d.Start())
	defer d.Stop()

	invoked := make(chan struct{}, 1)
	handler := NewHandlerFunc("ticket.created", func(e DomainEvent) error {
		invoked <- struct{}{}
		return nil
	})
	require.NoError(t, d.Subscribe("ticket.created", handler))

	require.NoError(t, d.Publish(testEvent("ticket.status_changed")))

	select {
	case <-invoked:
		t.Fatal("handler must not receive other event types")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestDispatcher_SubscribeValidation(t *testing.T) {
	d := NewInMemoryEventDispatcher(10)

	assert.Error(t, d.Subscribe("", NewHandlerFunc("x", nil)))
	assert.Error(t, d.Subscribe("x", nil))
}

func TestDispatcher_StartStopLifecycle(t *testing.T) {
	d := NewInMemoryEventDispatcher(10)

	require.NoError(t, d.Start())
	assert.Error(t, d.Start(), "double start must fail")

	require.NoError(t, d.Stop())
	assert.Error(t, d.Stop(), "double stop must fail")
	assert.Error(t, d.Publish(testEvent("ticket.created")), "publish after stop must fail")
}

func TestDispatcher_PublishAll(t *testing.T) {
	d := NewInMemoryEventDispatcher(10)
	require.NoError(t, d.Start())
	defer d.Stop()

	var wg sync.WaitGroup
	wg.Add(2)
	handler := NewHandlerFunc("ticket.created", func(e DomainEvent) error {
		wg.Done()
		return nil
	})
	require.NoError(t, d.Subscribe("ticket.created", handler))

	events := []DomainEvent{testEvent("ticket.created"), testEvent("ticket.created")}
	require.NoError(t, d.PublishAll(events))

	waitDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(waitDone)
	}()

	select {
	case <-waitDone:
	case <-time.After(2 * time.Second):
		t.Fatal("not all events were delivered")
	}
}
