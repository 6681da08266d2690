package usecases

import (
	"context"

	"github.com/domus-inc/domus/internal/domain/notification"
	"github.com/domus-inc/domus/internal/shared/errors"
	"github.com/domus-inc/domus/internal/shared/logger"
)

type MarkAllAsReadCommand struct {
	RecipientID uint
}

type MarkAllAsReadUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewMarkAllAsReadUseCase(
	notificationRepo notification.NotificationRepository,
	logger logger.Interface,
) *MarkAllAsReadUseCase {
	return &MarkAllAsReadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *MarkAllAsReadUseCase) Execute(ctx context.Context, cmd MarkAllAsReadCommand) error {
	if cmd.RecipientID == 0 {
		return errors.NewValidationError("recipient ID is required")
	}

	if err := uc.notificationRepo.MarkAllAsRead(ctx, cmd.RecipientID); err != nil {
		uc.logger.Errorw("failed to mark all notifications as read", "recipient_id", cmd.RecipientID, "error", err)
		return err
	}

	return nil
}
