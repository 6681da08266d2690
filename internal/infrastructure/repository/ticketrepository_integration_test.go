package repository

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

func createTestTicket(t *testing.T, title string, priority vo.Priority, reporterID, propertyID uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(title, "Test description", priority, reporterID, propertyID)
	require.NoError(t, err)
	return tk
}

func TestTicketRepository_SaveAndGetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	t.Run("save assigns an ID", func(t *testing.T) {
		tk := createTestTicket(t, "Leaking tap", vo.PriorityHigh, 1, 5)

		err := repo.Save(ctx, tk)
		require.NoError(t, err)
		assert.NotZero(t, tk.ID())
	})

	t.Run("round trip preserves fields", func(t *testing.T) {
		propertyID := uint(7)
		tk := createTestTicket(t, "Broken boiler", vo.PriorityUrgent, 2, propertyID)
		require.NoError(t, repo.Save(ctx, tk))

		found, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Equal(t, "Broken boiler", found.Title())
		assert.Equal(t, vo.PriorityUrgent, found.Priority())
		assert.Equal(t, vo.StatusNew, found.Status())
		assert.Equal(t, uint(2), found.ReporterID())
		require.NotNil(t, found.PropertyID())
		assert.Equal(t, propertyID, *found.PropertyID())
		assert.WithinDuration(t, tk.SLADeadline(), found.SLADeadline(), time.Millisecond)
	})

	t.Run("missing ticket yields not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestTicketRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, "Noisy radiator", vo.PriorityMedium, 3, 5)
	require.NoError(t, repo.Save(ctx, tk))

	require.NoError(t, tk.AssignTo(10, 1))
	require.NoError(t, repo.Update(ctx, tk))

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	require.NotNil(t, found.AssigneeID())
	assert.Equal(t, uint(10), *found.AssigneeID())
	assert.Equal(t, vo.StatusAssigned, found.Status())
}

func TestTicketRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	propertyA := uint(1)
	propertyB := uint(2)
	seed := []*ticket.Ticket{
		createTestTicket(t, "Ticket one", vo.PriorityLow, 1, propertyA),
		createTestTicket(t, "Ticket two", vo.PriorityHigh, 1, propertyA),
		createTestTicket(t, "Ticket three", vo.PriorityHigh, 2, propertyB),
	}
	for _, tk := range seed {
		require.NoError(t, repo.Save(ctx, tk))
	}
	require.NoError(t, seed[2].AssignTo(10, 1))
	require.NoError(t, repo.Update(ctx, seed[2]))

	t.Run("unfiltered list returns everything", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, tickets, 3)
	})

	t.Run("priority filter", func(t *testing.T) {
		high := vo.PriorityHigh
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{Priority: &high})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, tickets, 2)
	})

	t.Run("status filter", func(t *testing.T) {
		assigned := vo.StatusAssigned
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{Status: &assigned})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, tickets, 1)
		assert.Equal(t, seed[2].ID(), tickets[0].ID())
	})

	t.Run("pagination trims the page", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{Page: 1, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, tickets, 2)
	})

	t.Run("reported tickets", func(t *testing.T) {
		tickets, total, err := repo.GetReportedTickets(ctx, 1, ticket.TicketFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, tickets, 2)
	})

	t.Run("assigned tickets", func(t *testing.T) {
		tickets, total, err := repo.GetAssignedTickets(ctx, 10, ticket.TicketFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, tickets, 1)
	})

	t.Run("tickets for properties", func(t *testing.T) {
		tickets, total, err := repo.GetTicketsForProperties(ctx, []uint{propertyA}, ticket.TicketFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, tickets, 2)
	})

	t.Run("no property IDs short-circuits", func(t *testing.T) {
		tickets, total, err := repo.GetTicketsForProperties(ctx, nil, ticket.TicketFilter{})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, tickets)
	})
}

func TestTicketRepository_GetOverdueTickets(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	open := createTestTicket(t, "Still open", vo.PriorityUrgent, 1, 5)
	require.NoError(t, repo.Save(ctx, open))

	resolved := createTestTicket(t, "Already resolved", vo.PriorityUrgent, 1, 5)
	require.NoError(t, repo.Save(ctx, resolved))
	require.NoError(t, resolved.ChangeStatus(vo.StatusResolved, 1))
	require.NoError(t, repo.Update(ctx, resolved))

	// Urgent tickets carry a 24h deadline, so two days out both are past due
	// but only the unresolved one counts.
	future := time.Now().UTC().Add(48 * time.Hour)

	overdue, err := repo.GetOverdueTickets(ctx, future)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, open.ID(), overdue[0].ID())

	overdue, err = repo.GetOverdueTickets(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Empty(t, overdue)
}

func TestCommentRepository_SaveAndList(t *testing.T) {
	db := setupTestDB(t)
	ticketRepo := NewTicketRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, "With comments", vo.PriorityMedium, 1, 5)
	require.NoError(t, ticketRepo.Save(ctx, tk))

	first, err := ticket.NewComment(tk.ID(), 1, "first note", false)
	require.NoError(t, err)
	require.NoError(t, commentRepo.Save(ctx, first))
	assert.NotZero(t, first.ID())

	second, err := ticket.NewComment(tk.ID(), 2, "internal note", true)
	require.NoError(t, err)
	require.NoError(t, commentRepo.Save(ctx, second))

	comments, err := commentRepo.GetByTicketID(ctx, tk.ID())
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first note", comments[0].Content())
	assert.True(t, comments[1].IsInternal())
}

func TestHistoryRepository_SaveAndList(t *testing.T) {
	db := setupTestDB(t)
	ticketRepo := NewTicketRepository(db)
	historyRepo := NewHistoryRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, "With history", vo.PriorityMedium, 1, 5)
	require.NoError(t, ticketRepo.Save(ctx, tk))

	entry, err := ticket.NewHistoryEntry(tk.ID(), 5, ticket.ChangeTypeStatus, "new", "classified")
	require.NoError(t, err)
	require.NoError(t, historyRepo.Save(ctx, entry))

	entries, err := historyRepo.GetByTicketID(ctx, tk.ID())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ticket.ChangeTypeStatus, entries[0].ChangeType())
	assert.Equal(t, "new", entries[0].OldValue())
	assert.Equal(t, "classified", entries[0].NewValue())
	assert.Equal(t, uint(5), entries[0].ChangedBy())
}
