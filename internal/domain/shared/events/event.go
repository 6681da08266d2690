// Package events carries the in-process domain event plumbing: the event
// contract, a buffered dispatcher, and the publisher/subscriber interfaces
// injected into use cases.
package events

import "time"

// DomainEvent is the contract every domain event satisfies. Concrete events
// embed BaseEvent and add their own payload fields.
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetOccurredAt() time.Time
}

// BaseEvent provides the common event envelope. Version tracks the payload
// schema so consumers can evolve independently.
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	OccurredAt  time.Time `json:"occurred_at"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetAggregateID() string   { return e.AggregateID }
func (e BaseEvent) GetEventType() string     { return e.EventType }
func (e BaseEvent) GetOccurredAt() time.Time { return e.OccurredAt }

// EventHandler consumes events of the types it declares via CanHandle.
type EventHandler interface {
	Handle(event DomainEvent) error
	CanHandle(eventType string) bool
}

// EventPublisher is the producing side injected into use cases.
type EventPublisher interface {
	Publish(event DomainEvent) error
	PublishAll(events []DomainEvent) error
}

// EventSubscriber is the consuming side used to register handlers at wiring
// time.
type EventSubscriber interface {
	Subscribe(eventType string, handler EventHandler) error
}
