package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domus-inc/domus/internal/domain/ticket"
	vo "github.com/domus-inc/domus/internal/domain/ticket/valueobjects"
	"github.com/domus-inc/domus/internal/shared/errors"
)

func TestMyTicketsUseCase_Execute_ReturnsReportedTickets(t *testing.T) {
	reported := []*ticket.Ticket{
		reconstructTicket(t, ticketFixture{id: 1, reporterID: 10}),
		reconstructTicket(t, ticketFixture{id: 2, reporterID: 10}),
	}
	ticketRepo := &mockTicketRepository{
		GetReportedTicketsFunc: func(ctx context.Context, reporterID uint, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			assert.Equal(t, uint(10), reporterID)
			return reported, 2, nil
		},
	}

	uc := NewMyTicketsUseCase(ticketRepo, vo.DefaultAtRiskWindow, newTestLogger())
	result, err := uc.Execute(context.Background(), MyTicketsQuery{UserID: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)
	require.Len(t, result.Tickets, 2)
	assert.Equal(t, uint(1), result.Tickets[0].ID)
}

func TestMyTicketsUseCase_Execute_RequiresUserID(t *testing.T) {
	uc := NewMyTicketsUseCase(&mockTicketRepository{}, vo.DefaultAtRiskWindow, newTestLogger())
	_, err := uc.Execute(context.Background(), MyTicketsQuery{})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
