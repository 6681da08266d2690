package notification

import (
	"context"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) error
	GetByID(ctx context.Context, id uint) (*Notification, error)
	Update(ctx context.Context, notification *Notification) error
	ListByRecipientID(ctx context.Context, recipientID uint, limit, offset int) ([]*Notification, int64, error)
	ListUnreadByRecipientID(ctx context.Context, recipientID uint, limit, offset int) ([]*Notification, int64, error)
	CountUnread(ctx context.Context, recipientID uint) (int64, error)
	MarkAllAsRead(ctx context.Context, recipientID uint) error
}
