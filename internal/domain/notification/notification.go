package notification

import (
	"fmt"
	"sync"
	"time"

	vo "github.com/domus-inc/domus/internal/domain/notification/valueobjects"
)

type Notification struct {
	id          uint
	recipientID uint
	severity    vo.Severity
	title       string
	message     string
	ticketID    *uint
	isRead      bool
	version     int
	createdAt   time.Time
	updatedAt   time.Time
	mu          sync.RWMutex
}

func NewNotification(
	recipientID uint,
	severity vo.Severity,
	title string,
	message string,
	ticketID *uint,
) (*Notification, error) {
	if recipientID == 0 {
		return nil, fmt.Errorf("recipient ID is required")
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("invalid severity")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if len(message) > 5000 {
		return nil, fmt.Errorf("message exceeds maximum length of 5000 characters")
	}

	now := time.Now().UTC()
	return &Notification{
		recipientID: recipientID,
		severity:    severity,
		title:       title,
		message:     message,
		ticketID:    ticketID,
		isRead:      false,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructNotification(
	id uint,
	recipientID uint,
	severity vo.Severity,
	title string,
	message string,
	ticketID *uint,
	isRead bool,
	version int,
	createdAt, updatedAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if recipientID == 0 {
		return nil, fmt.Errorf("recipient ID is required")
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("invalid severity")
	}

	return &Notification{
		id:          id,
		recipientID: recipientID,
		severity:    severity,
		title:       title,
		message:     message,
		ticketID:    ticketID,
		isRead:      isRead,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (n *Notification) ID() uint {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.id
}

func (n *Notification) RecipientID() uint {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.recipientID
}

func (n *Notification) Severity() vo.Severity {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.severity
}

func (n *Notification) Title() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.title
}

func (n *Notification) Message() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.message
}

func (n *Notification) TicketID() *uint {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.ticketID
}

func (n *Notification) IsRead() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.isRead
}

func (n *Notification) Version() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.version
}

func (n *Notification) CreatedAt() time.Time {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.createdAt
}

func (n *Notification) UpdatedAt() time.Time {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.updatedAt
}

func (n *Notification) SetID(id uint) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// MarkAsRead is idempotent. Marking an already read notification is a no-op.
func (n *Notification) MarkAsRead() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.isRead {
		return nil
	}

	n.isRead = true
	n.updatedAt = time.Now().UTC()
	n.version++

	return nil
}
