package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domus-inc/domus/internal/domain/ticket"
	vo "github.com/domus-inc/domus/internal/domain/ticket/valueobjects"
	"github.com/domus-inc/domus/internal/shared/errors"
)

func TestOverdueTicketsUseCase_Execute_ReturnsBreachedTickets(t *testing.T) {
	breached := []*ticket.Ticket{
		reconstructTicket(t, ticketFixture{id: 1, priority: vo.PriorityUrgent}),
		reconstructTicket(t, ticketFixture{id: 2, priority: vo.PriorityHigh, assigneeID: uintPtr(7)}),
	}
	ticketRepo := &mockTicketRepository{
		GetOverdueTicketsFunc: func(ctx context.Context, now time.Time) ([]*ticket.Ticket, error) {
			assert.WithinDuration(t, time.Now().UTC(), now, time.Second)
			return breached, nil
		},
	}

	uc := NewOverdueTicketsUseCase(ticketRepo, vo.DefaultAtRiskWindow, newTestLogger())
	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)
	require.Len(t, result.Tickets, 2)
	assert.Equal(t, uint(1), result.Tickets[0].ID)
	assert.Equal(t, uint(2), result.Tickets[1].ID)
}

func TestOverdueTicketsUseCase_Execute_RepositoryError(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		GetOverdueTicketsFunc: func(ctx context.Context, now time.Time) ([]*ticket.Ticket, error) {
			return nil, errors.NewInternalError("database unavailable")
		},
	}

	uc := NewOverdueTicketsUseCase(ticketRepo, vo.DefaultAtRiskWindow, newTestLogger())
	result, err := uc.Execute(context.Background())

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestOverdueTicketsUseCase_Execute_EmptyWhenNothingBreached(t *testing.T) {
	uc := NewOverdueTicketsUseCase(&mockTicketRepository{}, vo.DefaultAtRiskWindow, newTestLogger())
	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Zero(t, result.Total)
	assert.Empty(t, result.Tickets)
}
