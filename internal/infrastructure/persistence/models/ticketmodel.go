package models

import (
	"github.com/domus-inc/domus/internal/shared/constants"
)

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Priority    string `gorm:"size:20;not null;index"`
	Status      string `gorm:"size:20;not null;index"`
	ReporterID  uint   `gorm:"not null;index"`
	PropertyID  *uint  `gorm:"index"`
	AssigneeID  *uint  `gorm:"index"`
	SLADeadline int64  `gorm:"not null;index"`
	ResolvedAt  *int64
	ClosedAt    *int64
	Version     int   `gorm:"not null;default:1"`
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type CommentModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	AuthorID   uint   `gorm:"not null;index"`
	Content    string `gorm:"type:text;not null"`
	IsInternal bool   `gorm:"not null;default:false"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CommentModel) TableName() string {
	return constants.TableTicketComments
}

type HistoryModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	ChangedBy  uint   `gorm:"not null;index"`
	ChangeType string `gorm:"size:30;not null"`
	OldValue   string `gorm:"size:100"`
	NewValue   string `gorm:"size:100;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (HistoryModel) TableName() string {
	return constants.TableTicketHistory
}
