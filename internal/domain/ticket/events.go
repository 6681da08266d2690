package ticket

import (
	"strconv"
	"time"

	"github.com/domus-inc/domus/internal/domain/shared/events"
)

// Event type names as registered with the dispatcher.
const (
	EventTicketCreated       = "ticket.created"
	EventTicketStatusChanged = "ticket.status_changed"
	EventTicketAssigned      = "ticket.assigned"
	EventCommentAdded        = "ticket.comment_added"
)

type TicketCreatedEvent struct {
	events.BaseEvent
	TicketID   uint
	Title      string
	ReporterID uint
	Priority   string
}

func NewTicketCreatedEvent(
	ticketID uint,
	title string,
	reporterID uint,
	priority string,
	timestamp time.Time,
) TicketCreatedEvent {
	return TicketCreatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(ticketID), 10),
			EventType:   EventTicketCreated,
			OccurredAt:  timestamp,
			Version:     1,
		},
		TicketID:   ticketID,
		Title:      title,
		ReporterID: reporterID,
		Priority:   priority,
	}
}

type TicketStatusChangedEvent struct {
	events.BaseEvent
	TicketID   uint
	Title      string
	ReporterID uint
	OldStatus  string
	NewStatus  string
	ChangedBy  uint
}

func NewTicketStatusChangedEvent(
	ticketID uint,
	title string,
	reporterID uint,
	oldStatus string,
	newStatus string,
	changedBy uint,
	timestamp time.Time,
) TicketStatusChangedEvent {
	return TicketStatusChangedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(ticketID), 10),
			EventType:   EventTicketStatusChanged,
			OccurredAt:  timestamp,
			Version:     1,
		},
		TicketID:   ticketID,
		Title:      title,
		ReporterID: reporterID,
		OldStatus:  oldStatus,
		NewStatus:  newStatus,
		ChangedBy:  changedBy,
	}
}

type TicketAssignedEvent struct {
	events.BaseEvent
	TicketID   uint
	Title      string
	AssigneeID uint
	AssignedBy uint
}

func NewTicketAssignedEvent(
	ticketID uint,
	title string,
	assigneeID uint,
	assignedBy uint,
	timestamp time.Time,
) TicketAssignedEvent {
	return TicketAssignedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(ticketID), 10),
			EventType:   EventTicketAssigned,
			OccurredAt:  timestamp,
			Version:     1,
		},
		TicketID:   ticketID,
		Title:      title,
		AssigneeID: assigneeID,
		AssignedBy: assignedBy,
	}
}

type CommentAddedEvent struct {
	events.BaseEvent
	TicketID   uint
	CommentID  uint
	AuthorID   uint
	ReporterID uint
	IsInternal bool
}

func NewCommentAddedEvent(
	ticketID uint,
	commentID uint,
	authorID uint,
	reporterID uint,
	isInternal bool,
	timestamp time.Time,
) CommentAddedEvent {
	return CommentAddedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(ticketID), 10),
			EventType:   EventCommentAdded,
			OccurredAt:  timestamp,
			Version:     1,
		},
		TicketID:   ticketID,
		CommentID:  commentID,
		AuthorID:   authorID,
		ReporterID: reporterID,
		IsInternal: isInternal,
	}
}
