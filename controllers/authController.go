package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/haniyashafiq/PRO-CRM/handlers"
	"github.com/haniyashafiq/PRO-CRM/middlewares"
	"github.com/haniyashafiq/PRO-CRM/models"
)

type AuthController struct {
	Handler *handlers.AuthHandler
}

// NewAuthController creates a new AuthController with the given AuthHandler
func NewAuthController(authHandler *handlers.AuthHandler) *AuthController {
	return &AuthController{
		Handler: authHandler,
	}
}

// RegisterRoutes mounts the authentication routes under /api/auth
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	// Public routes: no session required
	router.POST("/api/auth/login", ac.Handler.Login)
	router.POST("/api/auth/refresh-token", ac.Handler.RefreshToken)
	router.POST("/api/auth/send-reset-code", ac.Handler.SendResetCode)
	router.POST("/api/auth/change-password", ac.Handler.ChangePassword)

	// Protected routes: requires a valid session cookie
	authGroup := router.Group("/api/auth").Use(middlewares.SessionAuth())
	{
		authGroup.POST("/logout", ac.Handler.Logout)
		authGroup.GET("/session", ac.Handler.Session)
	}

	// Admin routes: user management
	adminGroup := router.Group("/api/auth").Use(
		middlewares.SessionAuth(),
		middlewares.RequireRoles(models.RoleAdmin),
	)
	{
		adminGroup.POST("/register", ac.Handler.Register)
		adminGroup.GET("/admin/users", ac.Handler.ListUsers)
		adminGroup.DELETE("/admin/users/:id", ac.Handler.DeleteAccount)
	}
}
