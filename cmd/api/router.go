package api

import (
	"net/http"

	authDelivery "chat-backend/internal/auth/delivery"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers every path exactly once.
func SetupRoutes(r *gin.Engine, h *Handler) {
	verbose := h.config.Verbose()
	requireAuth := authDelivery.AuthMiddleware(h.authUsecase, verbose)

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/signup", h.authLimiter.Middleware(verbose), h.authHandler.Signup)
			auth.POST("/login", h.authLimiter.Middleware(verbose), h.authHandler.Login)
			auth.POST("/logout", h.authHandler.Logout)
			auth.GET("/check-auth", requireAuth, h.authHandler.CheckAuth)
		}

		// Profile routes (protected)
		users := api.Group("/users")
		users.Use(requireAuth)
		{
			users.GET("/profile", h.profileHandler.GetProfile)
			users.PUT("/profile", h.profileHandler.UpdateProfile)
		}

		// Message routes (protected)
		message := api.Group("/message")
		message.Use(requireAuth)
		{
			message.GET("/users", h.messageHandler.GetUsers)
			message.GET("/get-all-messages", h.messageHandler.GetAllMessages)
			message.POST("/send-message", h.messageHandler.SendMessage)
		}

		// Push registration routes (protected)
		devices := api.Group("/devices")
		devices.Use(requireAuth)
		{
			devices.POST("", h.deviceHandler.Register)
			devices.DELETE("/:token", h.deviceHandler.Unregister)
		}
	}
}
