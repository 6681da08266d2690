package usecases

import (
	"context"
	"time"

	"github.com/domus-inc/domus/internal/domain/profile"
	"github.com/domus-inc/domus/internal/domain/property"
	"github.com/domus-inc/domus/internal/domain/shared/events"
	"github.com/domus-inc/domus/internal/domain/ticket"
	"github.com/domus-inc/domus/internal/shared/errors"
)

type mockTicketRepository struct {
	SaveFunc                    func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc                  func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc                 func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc                    func(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	GetReportedTicketsFunc      func(ctx context.Context, reporterID uint, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	GetAssignedTicketsFunc      func(ctx context.Context, assigneeID uint, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	GetTicketsForPropertiesFunc func(ctx context.Context, propertyIDs []uint, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	GetOverdueTicketsFunc       func(ctx context.Context, now time.Time) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, errors.NewNotFoundError("ticket not found")
}

func (m *mockTicketRepository) List(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) GetReportedTickets(ctx context.Context, reporterID uint, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.GetReportedTicketsFunc != nil {
		return m.GetReportedTicketsFunc(ctx, reporterID, filters)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) GetAssignedTickets(ctx context.Context, assigneeID uint, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.GetAssignedTicketsFunc != nil {
		return m.GetAssignedTicketsFunc(ctx, assigneeID, filters)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) GetTicketsForProperties(ctx context.Context, propertyIDs []uint, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.GetTicketsForPropertiesFunc != nil {
		return m.GetTicketsForPropertiesFunc(ctx, propertyIDs, filters)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) GetOverdueTickets(ctx context.Context, now time.Time) ([]*ticket.Ticket, error) {
	if m.GetOverdueTicketsFunc != nil {
		return m.GetOverdueTicketsFunc(ctx, now)
	}
	return nil, nil
}

type mockCommentRepository struct {
	SaveFunc          func(ctx context.Context, comment *ticket.Comment) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, comment *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockHistoryRepository struct {
	SaveFunc          func(ctx context.Context, entry *ticket.HistoryEntry) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error)
}

func (m *mockHistoryRepository) Save(ctx context.Context, entry *ticket.HistoryEntry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, entry)
	}
	return nil
}

func (m *mockHistoryRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockPropertyRepository struct {
	SaveFunc           func(ctx context.Context, p *property.Property) error
	UpdateFunc         func(ctx context.Context, p *property.Property) error
	GetByIDFunc        func(ctx context.Context, id uint) (*property.Property, error)
	ListFunc           func(ctx context.Context, limit, offset int) ([]*property.Property, int64, error)
	ListByOwnerIDFunc  func(ctx context.Context, ownerID uint, limit, offset int) ([]*property.Property, int64, error)
	GetIDsByOwnerIDFunc func(ctx context.Context, ownerID uint) ([]uint, error)
}

func (m *mockPropertyRepository) Save(ctx context.Context, p *property.Property) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockPropertyRepository) Update(ctx context.Context, p *property.Property) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockPropertyRepository) GetByID(ctx context.Context, id uint) (*property.Property, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("property not found")
}

func (m *mockPropertyRepository) List(ctx context.Context, limit, offset int) ([]*property.Property, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	return nil, 0, nil
}

func (m *mockPropertyRepository) ListByOwnerID(ctx context.Context, ownerID uint, limit, offset int) ([]*property.Property, int64, error) {
	if m.ListByOwnerIDFunc != nil {
		return m.ListByOwnerIDFunc(ctx, ownerID, limit, offset)
	}
	return nil, 0, nil
}

func (m *mockPropertyRepository) GetIDsByOwnerID(ctx context.Context, ownerID uint) ([]uint, error) {
	if m.GetIDsByOwnerIDFunc != nil {
		return m.GetIDsByOwnerIDFunc(ctx, ownerID)
	}
	return nil, nil
}

type mockProfileRepository struct {
	SaveFunc       func(ctx context.Context, p *profile.Profile) error
	UpdateFunc     func(ctx context.Context, p *profile.Profile) error
	GetByIDFunc    func(ctx context.Context, id uint) (*profile.Profile, error)
	GetByEmailFunc func(ctx context.Context, email string) (*profile.Profile, error)
	GetByIDsFunc   func(ctx context.Context, ids []uint) ([]*profile.Profile, error)
}

func (m *mockProfileRepository) Save(ctx context.Context, p *profile.Profile) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProfileRepository) GetByID(ctx context.Context, id uint) (*profile.Profile, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("profile not found")
}

func (m *mockProfileRepository) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, errors.NewNotFoundError("profile not found")
}

func (m *mockProfileRepository) GetByIDs(ctx context.Context, ids []uint) ([]*profile.Profile, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

type mockEventPublisher struct {
	PublishFunc    func(event events.DomainEvent) error
	PublishAllFunc func(evts []events.DomainEvent) error
	published      []events.DomainEvent
}

func (m *mockEventPublisher) Publish(event events.DomainEvent) error {
	m.published = append(m.published, event)
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventPublisher) PublishAll(evts []events.DomainEvent) error {
	m.published = append(m.published, evts...)
	if m.PublishAllFunc != nil {
		return m.PublishAllFunc(evts)
	}
	return nil
}

// mockTxManager runs the callback directly so repository mocks observe the
// same context the use case passed in.
type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}
