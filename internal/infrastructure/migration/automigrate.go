package migration

import (
	"github.com/domus-inc/domus/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ProfileModel{},
		&models.PropertyModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.HistoryModel{},
		&models.NotificationModel{},
	}
}
