package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domus-inc/domus/internal/domain/notification"
	"github.com/domus-inc/domus/internal/domain/profile"
	"github.com/domus-inc/domus/internal/domain/shared/events"
	"github.com/domus-inc/domus/internal/domain/ticket"
	"github.com/domus-inc/domus/internal/infrastructure/email"
	"github.com/domus-inc/domus/internal/shared/authorization"
	"github.com/domus-inc/domus/internal/shared/errors"
)

func newSubscriber(repo *mockNotificationRepository, sender *mockEmailSender) *TicketEventSubscriber {
	profileRepo := &mockProfileRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*profile.Profile, error) {
			return profile.ReconstructProfile(
				id,
				"reporter@domus.test",
				"hash",
				"Reporter",
				authorization.RoleTenant,
				1,
				time.Now().UTC(),
				time.Now().UTC(),
			)
		},
	}
	// keep the interface nil when no sender is wanted, a typed nil would
	// defeat the subscriber's nil check
	var emailSender email.Sender
	if sender != nil {
		emailSender = sender
	}
	return NewTicketEventSubscriber(repo, profileRepo, emailSender, newTestLogger())
}

func TestTicketEventSubscriber_TicketCreated(t *testing.T) {
	var created []*notification.Notification
	repo := &mockNotificationRepository{
		CreateFunc: func(ctx context.Context, n *notification.Notification) error {
			created = append(created, n)
			return nil
		},
	}
	sender := &mockEmailSender{}
	sub := newSubscriber(repo, sender)

	event := ticket.NewTicketCreatedEvent(42, "Boiler not heating", 10, "urgent", time.Now().UTC())
	require.NoError(t, sub.Handle(event))

	require.Len(t, created, 1)
	n := created[0]
	assert.Equal(t, uint(10), n.RecipientID())
	assert.Equal(t, "info", n.Severity().String())
	assert.Equal(t, "Ticket opened", n.Title())
	assert.Contains(t, n.Message(), "Boiler not heating")
	require.NotNil(t, n.TicketID())
	assert.Equal(t, uint(42), *n.TicketID())

	assert.Equal(t, []string{"reporter@domus.test"}, sender.CreatedCalls)
}

func TestTicketEventSubscriber_StatusChanged(t *testing.T) {
	tests := []struct {
		name         string
		newStatus    string
		wantSeverity string
	}{
		{name: "in_progress is informational", newStatus: "in_progress", wantSeverity: "info"},
		{name: "resolved is a success", newStatus: "resolved", wantSeverity: "success"},
		{name: "closed is a success", newStatus: "closed", wantSeverity: "success"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var created []*notification.Notification
			repo := &mockNotificationRepository{
				CreateFunc: func(ctx context.Context, n *notification.Notification) error {
					created = append(created, n)
					return nil
				},
			}
			sub := newSubscriber(repo, nil)

			event := ticket.NewTicketStatusChangedEvent(42, "Boiler not heating", 10, "new", tt.newStatus, 1, time.Now().UTC())
			require.NoError(t, sub.Handle(event))

			require.Len(t, created, 1)
			assert.Equal(t, tt.wantSeverity, created[0].Severity().String())
			assert.Contains(t, created[0].Message(), tt.newStatus)
		})
	}
}

func TestTicketEventSubscriber_Assigned(t *testing.T) {
	var created []*notification.Notification
	repo := &mockNotificationRepository{
		CreateFunc: func(ctx context.Context, n *notification.Notification) error {
			created = append(created, n)
			return nil
		},
	}
	sender := &mockEmailSender{}
	sub := newSubscriber(repo, sender)

	event := ticket.NewTicketAssignedEvent(42, "Boiler not heating", 7, 1, time.Now().UTC())
	require.NoError(t, sub.Handle(event))

	require.Len(t, created, 1)
	assert.Equal(t, uint(7), created[0].RecipientID())
	assert.Len(t, sender.AssignedCalls, 1)
}

func TestTicketEventSubscriber_CommentAdded(t *testing.T) {
	tests := []struct {
		name       string
		authorID   uint
		reporterID uint
		isInternal bool
		wantNotify bool
	}{
		{name: "staff comment notifies reporter", authorID: 7, reporterID: 10, wantNotify: true},
		{name: "own comment is silent", authorID: 10, reporterID: 10, wantNotify: false},
		{name: "internal comment is silent", authorID: 7, reporterID: 10, isInternal: true, wantNotify: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var created []*notification.Notification
			repo := &mockNotificationRepository{
				CreateFunc: func(ctx context.Context, n *notification.Notification) error {
					created = append(created, n)
					return nil
				},
			}
			sub := newSubscriber(repo, nil)

			event := ticket.NewCommentAddedEvent(42, 100, tt.authorID, tt.reporterID, tt.isInternal, time.Now().UTC())
			require.NoError(t, sub.Handle(event))

			if tt.wantNotify {
				require.Len(t, created, 1)
				assert.Equal(t, tt.reporterID, created[0].RecipientID())
			} else {
				assert.Empty(t, created)
			}
		})
	}
}

func TestTicketEventSubscriber_RepositoryFailureIsReturned(t *testing.T) {
	repo := &mockNotificationRepository{
		CreateFunc: func(ctx context.Context, n *notification.Notification) error {
			return errors.NewInternalError("database unavailable")
		},
	}
	sub := newSubscriber(repo, nil)

	event := ticket.NewTicketCreatedEvent(42, "Boiler not heating", 10, "urgent", time.Now().UTC())
	assert.Error(t, sub.Handle(event))
}

func TestTicketEventSubscriber_EmailFailureDoesNotFailHandler(t *testing.T) {
	repo := &mockNotificationRepository{}
	sender := &mockEmailSender{Err: errors.NewInternalError("smtp unreachable")}
	sub := newSubscriber(repo, sender)

	event := ticket.NewTicketCreatedEvent(42, "Boiler not heating", 10, "urgent", time.Now().UTC())
	assert.NoError(t, sub.Handle(event))
}

func TestTicketEventSubscriber_CanHandle(t *testing.T) {
	sub := newSubscriber(&mockNotificationRepository{}, nil)

	assert.True(t, sub.CanHandle(ticket.EventTicketCreated))
	assert.True(t, sub.CanHandle(ticket.EventTicketStatusChanged))
	assert.True(t, sub.CanHandle(ticket.EventTicketAssigned))
	assert.True(t, sub.CanHandle(ticket.EventCommentAdded))
	assert.False(t, sub.CanHandle("subscription.renewed"))
}

func TestTicketEventSubscriber_Register(t *testing.T) {
	dispatcher := events.NewInMemoryEventDispatcher(16)
	sub := newSubscriber(&mockNotificationRepository{}, nil)

	require.NoError(t, sub.Register(dispatcher))
}
