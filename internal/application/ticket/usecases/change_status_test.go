package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domus-inc/domus/internal/domain/ticket"
	vo "github.com/domus-inc/domus/internal/domain/ticket/valueobjects"
	"github.com/domus-inc/domus/internal/shared/authorization"
	"github.com/domus-inc/domus/internal/shared/errors"
)

func newChangeStatusUseCase(
	ticketRepo *mockTicketRepository,
	historyRepo *mockHistoryRepository,
	propertyRepo *mockPropertyRepository,
	publisher *mockEventPublisher,
) *ChangeStatusUseCase {
	return NewChangeStatusUseCase(ticketRepo, historyRepo, propertyRepo, &mockTxManager{}, publisher, newTestLogger())
}

func TestChangeStatusUseCase_Execute_LegalTransitions(t *testing.T) {
	tests := []struct {
		name string
		from vo.TicketStatus
		to   string
	}{
		{name: "new to classified", from: vo.StatusNew, to: "classified"},
		{name: "new jumps straight to resolved", from: vo.StatusNew, to: "resolved"},
		{name: "classified to in_progress", from: vo.StatusClassified, to: "in_progress"},
		{name: "in_progress to resolved", from: vo.StatusInProgress, to: "resolved"},
		{name: "resolved to closed", from: vo.StatusResolved, to: "closed"},
		{name: "open alias normalizes to classified", from: vo.StatusNew, to: "open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := reconstructTicket(t, ticketFixture{status: tt.from})
			ticketRepo := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
					return existing, nil
				},
			}
			var savedEntry *ticket.HistoryEntry
			historyRepo := &mockHistoryRepository{
				SaveFunc: func(ctx context.Context, entry *ticket.HistoryEntry) error {
					savedEntry = entry
					return nil
				},
			}
			publisher := &mockEventPublisher{}

			uc := newChangeStatusUseCase(ticketRepo, historyRepo, &mockPropertyRepository{}, publisher)
			result, err := uc.Execute(context.Background(), ChangeStatusCommand{
				TicketID:  existing.ID(),
				NewStatus: tt.to,
				UserID:    1,
				Role:      authorization.RoleAdmin,
			})

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.from.String(), result.OldStatus)
			assert.Equal(t, result.NewStatus, existing.Status().String())

			require.NotNil(t, savedEntry)
			assert.Equal(t, ticket.ChangeTypeStatus, savedEntry.ChangeType())
			assert.Equal(t, tt.from.String(), savedEntry.OldValue())
			assert.Equal(t, existing.Status().String(), savedEntry.NewValue())

			require.Len(t, publisher.published, 1)
			assert.Equal(t, ticket.EventTicketStatusChanged, publisher.published[0].GetEventType())
		})
	}
}

func TestChangeStatusUseCase_Execute_IllegalTransitions(t *testing.T) {
	tests := []struct {
		name string
		from vo.TicketStatus
		to   string
	}{
		{name: "backward to new", from: vo.StatusInProgress, to: "new"},
		{name: "resolved back to in_progress", from: vo.StatusResolved, to: "in_progress"},
		{name: "closed is terminal", from: vo.StatusClosed, to: "in_progress"},
		{name: "closed only from resolved", from: vo.StatusInProgress, to: "closed"},
		{name: "no reopen from closed", from: vo.StatusClosed, to: "classified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := reconstructTicket(t, ticketFixture{status: tt.from})
			ticketRepo := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
					return existing, nil
				},
			}
			publisher := &mockEventPublisher{}

			uc := newChangeStatusUseCase(ticketRepo, &mockHistoryRepository{}, &mockPropertyRepository{}, publisher)
			result, err := uc.Execute(context.Background(), ChangeStatusCommand{
				TicketID:  existing.ID(),
				NewStatus: tt.to,
				UserID:    1,
				Role:      authorization.RoleAdmin,
			})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err))
			assert.Empty(t, publisher.published)
			assert.Equal(t, tt.from, existing.Status())
		})
	}
}

func TestChangeStatusUseCase_Execute_NoOpSameStatus(t *testing.T) {
	existing := reconstructTicket(t, ticketFixture{status: vo.StatusInProgress})
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	historySaved := false
	historyRepo := &mockHistoryRepository{
		SaveFunc: func(ctx context.Context, entry *ticket.HistoryEntry) error {
			historySaved = true
			return nil
		},
	}
	publisher := &mockEventPublisher{}

	uc := newChangeStatusUseCase(ticketRepo, historyRepo, &mockPropertyRepository{}, publisher)
	result, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  existing.ID(),
		NewStatus: "in_progress",
		UserID:    1,
		Role:      authorization.RoleAdmin,
	})

	require.NoError(t, err)
	assert.Equal(t, result.OldStatus, result.NewStatus)
	assert.False(t, historySaved)
	assert.Empty(t, publisher.published)
}

func TestChangeStatusUseCase_Execute_AgentMustBeAssigned(t *testing.T) {
	existing := reconstructTicket(t, ticketFixture{status: vo.StatusAssigned, assigneeID: uintPtr(7)})
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}

	uc := newChangeStatusUseCase(ticketRepo, &mockHistoryRepository{}, &mockPropertyRepository{}, &mockEventPublisher{})

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  existing.ID(),
		NewStatus: "in_progress",
		UserID:    8,
		Role:      authorization.RoleAgent,
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))

	result, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  existing.ID(),
		NewStatus: "in_progress",
		UserID:    7,
		Role:      authorization.RoleAgent,
	})
	require.NoError(t, err)
	assert.Equal(t, "in_progress", result.NewStatus)
}

func TestChangeStatusUseCase_Execute_PersistFailureSkipsEvent(t *testing.T) {
	existing := reconstructTicket(t, ticketFixture{status: vo.StatusNew})
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return errors.NewInternalError("database unavailable")
		},
	}
	publisher := &mockEventPublisher{}

	uc := newChangeStatusUseCase(ticketRepo, &mockHistoryRepository{}, &mockPropertyRepository{}, publisher)
	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  existing.ID(),
		NewStatus: "classified",
		UserID:    1,
		Role:      authorization.RoleAdmin,
	})

	require.Error(t, err)
	assert.Empty(t, publisher.published)
}
