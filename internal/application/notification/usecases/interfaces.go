package usecases

import (
	"context"
)

type ListNotificationsExecutor interface {
	Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error)
}

type UnreadCountExecutor interface {
	Execute(ctx context.Context, query UnreadCountQuery) (*UnreadCountResult, error)
}

type MarkAsReadExecutor interface {
	Execute(ctx context.Context, cmd MarkAsReadCommand) error
}

type MarkAllAsReadExecutor interface {
	Execute(ctx context.Context, cmd MarkAllAsReadCommand) error
}
