package models

import (
	"time"

	"github.com/domus-inc/domus/internal/shared/constants"
)

type PropertyModel struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:200;not null"`
	Address   string `gorm:"size:500;not null"`
	OwnerID   uint   `gorm:"not null;index"`
	Version   int    `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PropertyModel) TableName() string {
	return constants.TableProperties
}
