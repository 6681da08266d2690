package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/domus-inc/domus/internal/domain/notification"
	"github.com/domus-inc/domus/internal/infrastructure/persistence/mappers"
	"github.com/domus-inc/domus/internal/infrastructure/persistence/models"
	"github.com/domus-inc/domus/internal/shared/db"
	"github.com/domus-inc/domus/internal/shared/errors"
)

type NotificationRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	model, err := r.mapper.ToModel(n)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	if err := n.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("notification not found")
		}
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *NotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	model, err := r.mapper.ToModel(n)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.NotificationModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"is_read":    model.IsRead,
			"version":    model.Version,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update notification: %w", result.Error)
	}

	return nil
}

func (r *NotificationRepository) ListByRecipientID(
	ctx context.Context,
	recipientID uint,
	limit, offset int,
) ([]*notification.Notification, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.NotificationModel{}).Where("recipient_id = ?", recipientID)

	return r.listWithQuery(query, limit, offset)
}

func (r *NotificationRepository) ListUnreadByRecipientID(
	ctx context.Context,
	recipientID uint,
	limit, offset int,
) ([]*notification.Notification, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.NotificationModel{}).
		Where("recipient_id = ?", recipientID).
		Where("is_read = ?", false)

	return r.listWithQuery(query, limit, offset)
}

func (r *NotificationRepository) CountUnread(ctx context.Context, recipientID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.NotificationModel{}).
		Where("recipient_id = ?", recipientID).
		Where("is_read = ?", false).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, recipientID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.NotificationModel{}).
		Where("recipient_id = ?", recipientID).
		Where("is_read = ?", false).
		Updates(map[string]interface{}{
			"is_read":    true,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", result.Error)
	}

	return nil
}

func (r *NotificationRepository) listWithQuery(
	query *gorm.DB,
	limit, offset int,
) ([]*notification.Notification, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var notificationModels []models.NotificationModel
	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	notifications := make([]*notification.Notification, len(notificationModels))
	for i, model := range notificationModels {
		n, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		notifications[i] = n
	}

	return notifications, total, nil
}
