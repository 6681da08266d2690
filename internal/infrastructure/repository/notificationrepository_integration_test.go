package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domus-inc/domus/internal/domain/notification"
	vo "github.com/domus-inc/domus/internal/domain/notification/valueobjects"
	"github.com/domus-inc/domus/internal/shared/errors"
)

func createTestNotification(t *testing.T, recipientID uint, title string) *notification.Notification {
	t.Helper()
	n, err := notification.NewNotification(recipientID, vo.SeverityInfo, title, "something happened", nil)
	require.NoError(t, err)
	return n
}

func TestNotificationRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	ticketID := uint(42)
	n, err := notification.NewNotification(7, vo.SeveritySuccess, "Ticket resolved", "your ticket was resolved", &ticketID)
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, n))
	assert.NotZero(t, n.ID())

	found, err := repo.GetByID(ctx, n.ID())
	require.NoError(t, err)
	assert.Equal(t, uint(7), found.RecipientID())
	assert.Equal(t, vo.SeveritySuccess, found.Severity())
	assert.Equal(t, "Ticket resolved", found.Title())
	require.NotNil(t, found.TicketID())
	assert.Equal(t, ticketID, *found.TicketID())
	assert.False(t, found.IsRead())

	_, err = repo.GetByID(ctx, 9999)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestNotificationRepository_ListAndCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, createTestNotification(t, 7, "for seven")))
	}
	require.NoError(t, repo.Create(ctx, createTestNotification(t, 8, "for eight")))

	read := createTestNotification(t, 7, "already read")
	require.NoError(t, repo.Create(ctx, read))
	require.NoError(t, read.MarkAsRead())
	require.NoError(t, repo.Update(ctx, read))

	all, total, err := repo.ListByRecipientID(ctx, 7, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, all, 4)

	unread, total, err := repo.ListUnreadByRecipientID(ctx, 7, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, unread, 3)

	count, err := repo.CountUnread(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = repo.CountUnread(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestNotificationRepository_MarkAllAsRead(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		require.NoError(t, repo.Create(ctx, createTestNotification(t, 7, "unread")))
	}
	require.NoError(t, repo.Create(ctx, createTestNotification(t, 8, "other recipient")))

	require.NoError(t, repo.MarkAllAsRead(ctx, 7))

	count, err := repo.CountUnread(ctx, 7)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Other recipients are untouched.
	count, err = repo.CountUnread(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
