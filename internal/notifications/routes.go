package notifications

import (
	"daycare-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, notificationService *NotificationService, jwtSecret string) {
	notificationController := &NotificationController{NotificationService: notificationService}

	group := r.Group("/api/notifications", middlewares.AuthMiddleware(jwtSecret))
	{
		group.GET("", notificationController.List)
		group.GET("/:id", notificationController.Get)
		group.POST("", middlewares.RequireRole("admin", "manager"), notificationController.Create)
		group.POST("/:id/read", notificationController.MarkRead)
		group.POST("/read-all", notificationController.MarkAllRead)
		group.DELETE("/:id", middlewares.RequireRole("admin"), notificationController.Delete)
	}
}
