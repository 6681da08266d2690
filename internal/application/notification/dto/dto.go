package dto

import (
	"time"

	"github.com/domus-inc/domus/internal/domain/notification"
)

type NotificationDTO struct {
	ID          uint      `json:"id"`
	RecipientID uint      `json:"recipient_id"`
	Severity    string    `json:"severity"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	TicketID    *uint     `json:"ticket_id,omitempty"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToNotificationDTO(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:          n.ID(),
		RecipientID: n.RecipientID(),
		Severity:    n.Severity().String(),
		Title:       n.Title(),
		Message:     n.Message(),
		TicketID:    n.TicketID(),
		IsRead:      n.IsRead(),
		CreatedAt:   n.CreatedAt(),
	}
}

func ToNotificationDTOs(notifications []*notification.Notification) []NotificationDTO {
	result := make([]NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		result = append(result, ToNotificationDTO(n))
	}
	return result
}
