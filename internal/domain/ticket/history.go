package ticket

import (
	"fmt"
	"time"

	"github.com/domus-inc/domus/internal/shared/biztime"
)

// ChangeType identifies what kind of change a history entry records.
type ChangeType string

const (
	ChangeTypeStatus     ChangeType = "status_change"
	ChangeTypeAssignment ChangeType = "assignment"
	ChangeTypePriority   ChangeType = "priority_change"
)

func (ct ChangeType) IsValid() bool {
	switch ct {
	case ChangeTypeStatus, ChangeTypeAssignment, ChangeTypePriority:
		return true
	}
	return false
}

// HistoryEntry is one append-only row of a ticket's change log.
type HistoryEntry struct {
	id         uint
	ticketID   uint
	changedBy  uint
	changeType ChangeType
	oldValue   string
	newValue   string
	createdAt  time.Time
}

func NewHistoryEntry(
	ticketID uint,
	changedBy uint,
	changeType ChangeType,
	oldValue string,
	newValue string,
) (*HistoryEntry, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if changedBy == 0 {
		return nil, fmt.Errorf("changed-by user ID is required")
	}
	if !changeType.IsValid() {
		return nil, fmt.Errorf("invalid change type: %s", changeType)
	}
	if len(newValue) == 0 {
		return nil, fmt.Errorf("new value is required")
	}

	return &HistoryEntry{
		ticketID:   ticketID,
		changedBy:  changedBy,
		changeType: changeType,
		oldValue:   oldValue,
		newValue:   newValue,
		createdAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructHistoryEntry(
	id uint,
	ticketID uint,
	changedBy uint,
	changeType ChangeType,
	oldValue string,
	newValue string,
	createdAt time.Time,
) (*HistoryEntry, error) {
	if id == 0 {
		return nil, fmt.Errorf("history entry ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !changeType.IsValid() {
		return nil, fmt.Errorf("invalid change type: %s", changeType)
	}

	return &HistoryEntry{
		id:         id,
		ticketID:   ticketID,
		changedBy:  changedBy,
		changeType: changeType,
		oldValue:   oldValue,
		newValue:   newValue,
		createdAt:  createdAt,
	}, nil
}

func (h *HistoryEntry) ID() uint {
	return h.id
}

func (h *HistoryEntry) TicketID() uint {
	return h.ticketID
}

func (h *HistoryEntry) ChangedBy() uint {
	return h.changedBy
}

func (h *HistoryEntry) ChangeType() ChangeType {
	return h.changeType
}

func (h *HistoryEntry) OldValue() string {
	return h.oldValue
}

func (h *HistoryEntry) NewValue() string {
	return h.newValue
}

func (h *HistoryEntry) CreatedAt() time.Time {
	return h.createdAt
}

func (h *HistoryEntry) SetID(id uint) error {
	if h.id != 0 {
		return fmt.Errorf("history entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("history entry ID cannot be zero")
	}
	h.id = id
	return nil
}
