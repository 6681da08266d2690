package usecases

import (
	"context"

	"github.com/domus-inc/domus/internal/domain/notification"
	"github.com/domus-inc/domus/internal/shared/errors"
	"github.com/domus-inc/domus/internal/shared/logger"
)

type UnreadCountQuery struct {
	RecipientID uint
}

type UnreadCountResult struct {
	Count int64
}

type UnreadCountUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewUnreadCountUseCase(
	notificationRepo notification.NotificationRepository,
	logger logger.Interface,
) *UnreadCountUseCase {
	return &UnreadCountUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *UnreadCountUseCase) Execute(ctx context.Context, query UnreadCountQuery) (*UnreadCountResult, error) {
	if query.RecipientID == 0 {
		return nil, errors.NewValidationError("recipient ID is required")
	}

	count, err := uc.notificationRepo.CountUnread(ctx, query.RecipientID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "recipient_id", query.RecipientID, "error", err)
		return nil, err
	}

	return &UnreadCountResult{Count: count}, nil
}
