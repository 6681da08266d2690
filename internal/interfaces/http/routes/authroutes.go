package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "github.com/domus-inc/domus/internal/interfaces/http/handlers/auth"
	"github.com/domus-inc/domus/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *authhandlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	// LoginRateLimit guards the credential endpoint; nil disables limiting.
	LoginRateLimit gin.HandlerFunc
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		if config.LoginRateLimit != nil {
			auth.POST("/login", config.LoginRateLimit, config.AuthHandler.Login)
		} else {
			auth.POST("/login", config.AuthHandler.Login)
		}
		auth.POST("/refresh", config.AuthHandler.Refresh)
		auth.GET("/me", config.AuthMiddleware.RequireAuth(), config.AuthHandler.Me)
	}
}
