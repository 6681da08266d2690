package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "github.com/domus-inc/domus/internal/interfaces/http/handlers/ticket"
	"github.com/domus-inc/domus/internal/interfaces/http/middleware"
	"github.com/domus-inc/domus/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.POST("",
			authorization.RequireRoles(authorization.RoleTenant, authorization.RoleAdmin, authorization.RoleManager, authorization.RoleOwner),
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			authorization.RequireRoles(authorization.RoleAdmin, authorization.RoleManager, authorization.RoleOwner, authorization.RoleAgent, authorization.RoleService),
			config.TicketHandler.ListTickets)

		// Literal paths before /:id so gin does not treat them as IDs.
		tickets.GET("/my",
			authorization.RequireRoles(authorization.RoleTenant, authorization.RoleAdmin, authorization.RoleManager),
			config.TicketHandler.MyTickets)
		tickets.GET("/overdue",
			authorization.RequireRoles(authorization.RoleAdmin, authorization.RoleManager),
			config.TicketHandler.OverdueTickets)

		tickets.POST("/:id/assign",
			authorization.RequireRoles(authorization.RoleAdmin, authorization.RoleManager),
			config.TicketHandler.AssignTicket)
		tickets.GET("/:id/history",
			authorization.RequireRoles(authorization.RoleAdmin, authorization.RoleManager, authorization.RoleAgent),
			config.TicketHandler.GetHistory)
		tickets.POST("/:id/comments",
			authorization.RequireRoles(authorization.RoleTenant, authorization.RoleAdmin, authorization.RoleManager, authorization.RoleOwner, authorization.RoleAgent),
			config.TicketHandler.AddComment)
		tickets.GET("/:id/comments",
			authorization.RequireRoles(authorization.RoleTenant, authorization.RoleAdmin, authorization.RoleManager, authorization.RoleOwner, authorization.RoleAgent),
			config.TicketHandler.ListComments)

		tickets.GET("/:id",
			authorization.RequireRoles(authorization.RoleAdmin, authorization.RoleManager, authorization.RoleTenant, authorization.RoleOwner),
			config.TicketHandler.GetTicket)
		tickets.PATCH("/:id",
			authorization.RequireRoles(authorization.RoleAdmin, authorization.RoleManager, authorization.RoleOwner, authorization.RoleAgent),
			config.TicketHandler.UpdateTicket)
	}
}
