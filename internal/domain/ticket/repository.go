package ticket

import (
	"context"
	"time"

	vo "github.com/domus-inc/domus/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filters TicketFilter) ([]*Ticket, int64, error)
	GetReportedTickets(ctx context.Context, reporterID uint, filters TicketFilter) ([]*Ticket, int64, error)
	GetAssignedTickets(ctx context.Context, assigneeID uint, filters TicketFilter) ([]*Ticket, int64, error)
	GetTicketsForProperties(ctx context.Context, propertyIDs []uint, filters TicketFilter) ([]*Ticket, int64, error)
	GetOverdueTickets(ctx context.Context, now time.Time) ([]*Ticket, error)
}

type TicketFilter struct {
	Status      *vo.TicketStatus
	Priority    *vo.Priority
	ReporterID  *uint
	AssigneeID  *uint
	PropertyID  *uint
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Page        int
	PageSize    int
	SortBy      string
	SortOrder   string
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}

type HistoryRepository interface {
	Save(ctx context.Context, entry *HistoryEntry) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*HistoryEntry, error)
}
