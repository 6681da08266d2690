package models

import (
	"time"

	"github.com/domus-inc/domus/internal/shared/constants"
)

type ProfileModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	DisplayName  string `gorm:"size:100;not null"`
	Role         string `gorm:"size:20;not null;index"`
	Version      int    `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ProfileModel) TableName() string {
	return constants.TableProfiles
}
