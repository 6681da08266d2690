package usecases

import (
	"context"

	"github.com/domus-inc/domus/internal/domain/notification"
	"github.com/domus-inc/domus/internal/shared/errors"
	"github.com/domus-inc/domus/internal/shared/logger"
)

type MarkAsReadCommand struct {
	NotificationID uint
	RecipientID    uint
}

type MarkAsReadUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewMarkAsReadUseCase(
	notificationRepo notification.NotificationRepository,
	logger logger.Interface,
) *MarkAsReadUseCase {
	return &MarkAsReadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *MarkAsReadUseCase) Execute(ctx context.Context, cmd MarkAsReadCommand) error {
	if cmd.NotificationID == 0 {
		return errors.NewValidationError("notification ID is required")
	}
	if cmd.RecipientID == 0 {
		return errors.NewValidationError("recipient ID is required")
	}

	n, err := uc.notificationRepo.GetByID(ctx, cmd.NotificationID)
	if err != nil {
		return err
	}

	// Only the recipient may flip the read flag.
	if n.RecipientID() != cmd.RecipientID {
		return errors.NewForbiddenError("notification belongs to another user")
	}

	if n.IsRead() {
		return nil
	}

	if err := n.MarkAsRead(); err != nil {
		return errors.NewInternalError("failed to mark notification as read", err.Error())
	}

	if err := uc.notificationRepo.Update(ctx, n); err != nil {
		uc.logger.Errorw("failed to update notification", "notification_id", n.ID(), "error", err)
		return err
	}

	return nil
}
