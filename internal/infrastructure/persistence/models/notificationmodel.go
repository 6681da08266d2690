package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/domus-inc/domus/internal/shared/constants"
)

type NotificationModel struct {
	ID          uint           `gorm:"primaryKey"`
	RecipientID uint           `gorm:"not null;index:idx_recipient_read"`
	Severity    string         `gorm:"size:20;not null"`
	Title       string         `gorm:"size:255;not null"`
	Message     string         `gorm:"type:text;not null"`
	Metadata    datatypes.JSON `gorm:"type:json"`
	IsRead      bool           `gorm:"not null;default:false;index:idx_recipient_read"`
	Version     int            `gorm:"not null;default:1"`
	CreatedAt   time.Time      `gorm:"index"`
	UpdatedAt   time.Time
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
