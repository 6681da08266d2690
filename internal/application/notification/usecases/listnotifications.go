package usecases

import (
	"context"

	"github.com/domus-inc/domus/internal/application/notification/dto"
	"github.com/domus-inc/domus/internal/domain/notification"
	"github.com/domus-inc/domus/internal/shared/errors"
	"github.com/domus-inc/domus/internal/shared/logger"
)

type ListNotificationsQuery struct {
	RecipientID uint
	UnreadOnly  bool
	Page        int
	PageSize    int
}

type ListNotificationsResult struct {
	Notifications []dto.NotificationDTO
	Total         int64
}

type ListNotificationsUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewListNotificationsUseCase(
	notificationRepo notification.NotificationRepository,
	logger logger.Interface,
) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error) {
	if query.RecipientID == 0 {
		return nil, errors.NewValidationError("recipient ID is required")
	}

	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 || query.PageSize > 100 {
		query.PageSize = 20
	}
	offset := (query.Page - 1) * query.PageSize

	var (
		notifications []*notification.Notification
		total         int64
		err           error
	)
	if query.UnreadOnly {
		notifications, total, err = uc.notificationRepo.ListUnreadByRecipientID(ctx, query.RecipientID, query.PageSize, offset)
	} else {
		notifications, total, err = uc.notificationRepo.ListByRecipientID(ctx, query.RecipientID, query.PageSize, offset)
	}
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "recipient_id", query.RecipientID, "error", err)
		return nil, err
	}

	return &ListNotificationsResult{
		Notifications: dto.ToNotificationDTOs(notifications),
		Total:         total,
	}, nil
}
