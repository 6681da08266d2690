package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusNew        TicketStatus = "new"
	StatusClassified TicketStatus = "classified"
	StatusAssigned   TicketStatus = "assigned"
	StatusInProgress TicketStatus = "in_progress"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusNew:        true,
	StatusClassified: true,
	StatusAssigned:   true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

// Forward jumps are allowed (e.g. a ticket resolved straight from new),
// closing requires a prior resolution, and closed tickets stay closed.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusNew: {
		StatusClassified,
		StatusAssigned,
		StatusInProgress,
		StatusResolved,
	},
	StatusClassified: {
		StatusAssigned,
		StatusInProgress,
		StatusResolved,
	},
	StatusAssigned: {
		StatusInProgress,
		StatusResolved,
	},
	StatusInProgress: {
		StatusResolved,
	},
	StatusResolved: {
		StatusClosed,
	},
	StatusClosed: {},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowedTransitions, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (ts TicketStatus) IsNew() bool {
	return ts == StatusNew
}

func (ts TicketStatus) IsClassified() bool {
	return ts == StatusClassified
}

func (ts TicketStatus) IsAssigned() bool {
	return ts == StatusAssigned
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

// IsTerminal reports whether no further transitions are possible.
func (ts TicketStatus) IsTerminal() bool {
	return len(ticketStatusTransitions[ts]) == 0 && ts.IsValid()
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(normalizeStatus(s))
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}

// normalizeStatus maps legacy client vocabulary onto the canonical set.
// Older clients send "open" for a ticket that has been triaged.
func normalizeStatus(s string) string {
	if s == "open" {
		return string(StatusClassified)
	}
	return s
}
