package routes

import (
	"github.com/gin-gonic/gin"

	propertyhandlers "github.com/domus-inc/domus/internal/interfaces/http/handlers/property"
	"github.com/domus-inc/domus/internal/interfaces/http/middleware"
	"github.com/domus-inc/domus/internal/shared/authorization"
)

type PropertyRouteConfig struct {
	PropertyHandler *propertyhandlers.PropertyHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupPropertyRoutes(engine *gin.Engine, config *PropertyRouteConfig) {
	properties := engine.Group("/properties")
	properties.Use(config.AuthMiddleware.RequireAuth())
	{
		properties.GET("",
			authorization.RequireRoles(authorization.RoleAdmin, authorization.RoleManager),
			config.PropertyHandler.List)
		properties.POST("",
			authorization.RequireRoles(authorization.RoleAdmin, authorization.RoleManager),
			config.PropertyHandler.Create)
		properties.GET("/mine",
			authorization.RequireRoles(authorization.RoleOwner),
			config.PropertyHandler.ListMine)
		properties.GET("/:id",
			authorization.RequireRoles(authorization.RoleAdmin, authorization.RoleManager, authorization.RoleOwner),
			config.PropertyHandler.Get)
	}
}
