package routes

import (
	"github.com/gin-gonic/gin"

	notificationhandlers "github.com/domus-inc/domus/internal/interfaces/http/handlers/notification"
	"github.com/domus-inc/domus/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler *notificationhandlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// Notification routes are open to any authenticated principal; the handler
// scopes every query to the caller's own rows.
func SetupNotificationRoutes(engine *gin.Engine, config *NotificationRouteConfig) {
	notifications := engine.Group("/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	{
		notifications.GET("", config.NotificationHandler.List)
		notifications.GET("/unread", config.NotificationHandler.ListUnread)
		notifications.GET("/unread/count", config.NotificationHandler.UnreadCount)
		notifications.PATCH("/read-all", config.NotificationHandler.MarkAllAsRead)
		notifications.PATCH("/:id/read", config.NotificationHandler.MarkAsRead)
	}
}
