package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/domus-inc/domus/internal/domain/notification"
	vo "github.com/domus-inc/domus/internal/domain/notification/valueobjects"
	"github.com/domus-inc/domus/internal/infrastructure/persistence/models"
)

// notificationMetadata is the JSON payload stored alongside a notification.
type notificationMetadata struct {
	TicketID *uint `json:"ticket_id,omitempty"`
}

// NotificationMapper handles the conversion between Notification domain
// entities and persistence models.
type NotificationMapper interface {
	ToModel(n *notification.Notification) (*models.NotificationModel, error)
	ToDomain(model *models.NotificationModel) (*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(n *notification.Notification) (*models.NotificationModel, error) {
	model := &models.NotificationModel{
		ID:          n.ID(),
		RecipientID: n.RecipientID(),
		Severity:    n.Severity().String(),
		Title:       n.Title(),
		Message:     n.Message(),
		IsRead:      n.IsRead(),
		Version:     n.Version(),
		CreatedAt:   n.CreatedAt(),
		UpdatedAt:   n.UpdatedAt(),
	}

	if n.TicketID() != nil {
		raw, err := json.Marshal(notificationMetadata{TicketID: n.TicketID()})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal notification metadata: %w", err)
		}
		model.Metadata = datatypes.JSON(raw)
	}

	return model, nil
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	severity, err := vo.NewSeverity(model.Severity)
	if err != nil {
		return nil, err
	}

	var ticketID *uint
	if len(model.Metadata) > 0 {
		var meta notificationMetadata
		if err := json.Unmarshal(model.Metadata, &meta); err != nil {
			return nil, fmt.Errorf("failed to unmarshal notification metadata (id=%d): %w", model.ID, err)
		}
		ticketID = meta.TicketID
	}

	return notification.ReconstructNotification(
		model.ID,
		model.RecipientID,
		severity,
		model.Title,
		model.Message,
		ticketID,
		model.IsRead,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
