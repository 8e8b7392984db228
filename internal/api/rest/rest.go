package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/shadrss/registry-watcher/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Registry listing (public read access)
		v1.GET("/registries", handler.ListRegistries)

		// Webhook management (requires authentication; handlers additionally
		// require a user subject, so API key callers cannot manage webhooks)
		webhooks := v1.Group("/webhooks", middleware.Auth(authCfg))
		{
			webhooks.GET("", handler.ListWebhooks)
			webhooks.POST("", handler.CreateWebhook)
			webhooks.GET("/:webhook_id", handler.GetWebhook)
			webhooks.PATCH("/:webhook_id", handler.UpdateWebhook)
			webhooks.DELETE("/:webhook_id", handler.DeleteWebhook)
			webhooks.POST("/:webhook_id/pause", handler.PauseWebhook)
			webhooks.POST("/:webhook_id/resume", handler.ResumeWebhook)
			webhooks.POST("/:webhook_id/test", handler.TestWebhook)
			webhooks.GET("/:webhook_id/deliveries", handler.ListWebhookDeliveries)
		}

		// Sync trigger for cron-style automation (requires API key authentication only)
		v1.POST("/sync", middleware.APIKeyAuth(authCfg), handler.TriggerSync)
	}
}
