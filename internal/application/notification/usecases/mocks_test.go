package usecases

import (
	"context"

	"github.com/domus-inc/domus/internal/domain/notification"
	"github.com/domus-inc/domus/internal/domain/profile"
	"github.com/domus-inc/domus/internal/shared/errors"
	"github.com/domus-inc/domus/internal/shared/logger"
)

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}

type mockNotificationRepository struct {
	CreateFunc                  func(ctx context.Context, n *notification.Notification) error
	GetByIDFunc                 func(ctx context.Context, id uint) (*notification.Notification, error)
	UpdateFunc                  func(ctx context.Context, n *notification.Notification) error
	ListByRecipientIDFunc       func(ctx context.Context, recipientID uint, limit, offset int) ([]*notification.Notification, int64, error)
	ListUnreadByRecipientIDFunc func(ctx context.Context, recipientID uint, limit, offset int) ([]*notification.Notification, int64, error)
	CountUnreadFunc             func(ctx context.Context, recipientID uint) (int64, error)
	MarkAllAsReadFunc           func(ctx context.Context, recipientID uint) error
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("notification not found")
}

func (m *mockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) ListByRecipientID(ctx context.Context, recipientID uint, limit, offset int) ([]*notification.Notification, int64, error) {
	if m.ListByRecipientIDFunc != nil {
		return m.ListByRecipientIDFunc(ctx, recipientID, limit, offset)
	}
	return nil, 0, nil
}

func (m *mockNotificationRepository) ListUnreadByRecipientID(ctx context.Context, recipientID uint, limit, offset int) ([]*notification.Notification, int64, error) {
	if m.ListUnreadByRecipientIDFunc != nil {
		return m.ListUnreadByRecipientIDFunc(ctx, recipientID, limit, offset)
	}
	return nil, 0, nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, recipientID uint) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, recipientID)
	}
	return 0, nil
}

func (m *mockNotificationRepository) MarkAllAsRead(ctx context.Context, recipientID uint) error {
	if m.MarkAllAsReadFunc != nil {
		return m.MarkAllAsReadFunc(ctx, recipientID)
	}
	return nil
}

type mockProfileRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*profile.Profile, error)
}

func (m *mockProfileRepository) Save(ctx context.Context, p *profile.Profile) error {
	return nil
}

func (m *mockProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	return nil
}

func (m *mockProfileRepository) GetByID(ctx context.Context, id uint) (*profile.Profile, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("profile not found")
}

func (m *mockProfileRepository) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	return nil, errors.NewNotFoundError("profile not found")
}

func (m *mockProfileRepository) GetByIDs(ctx context.Context, ids []uint) ([]*profile.Profile, error) {
	return nil, nil
}

type mockEmailSender struct {
	CreatedCalls  []string
	StatusCalls   []string
	AssignedCalls []string
	Err           error
}

func (m *mockEmailSender) SendTicketCreatedEmail(to, ticketTitle string, ticketID uint) error {
	m.CreatedCalls = append(m.CreatedCalls, to)
	return m.Err
}

func (m *mockEmailSender) SendTicketStatusChangedEmail(to, ticketTitle string, ticketID uint, newStatus string) error {
	m.StatusCalls = append(m.StatusCalls, newStatus)
	return m.Err
}

func (m *mockEmailSender) SendTicketAssignedEmail(to, ticketTitle string, ticketID uint) error {
	m.AssignedCalls = append(m.AssignedCalls, to)
	return m.Err
}
