package incidents

import (
	"daycare-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, incidentService *IncidentService, jwtSecret string) {
	incidentController := &IncidentController{IncidentService: incidentService}

	group := r.Group("/api/incidents", middlewares.AuthMiddleware(jwtSecret))
	{
		group.GET("", incidentController.List)
		group.GET("/:id", incidentController.Get)
		group.POST("", middlewares.RequireRole("admin", "manager", "babysitter"), incidentController.Create)
		group.PUT("/:id", middlewares.RequireRole("admin", "manager", "babysitter"), incidentController.Update)
		group.POST("/:id/notify-parent", middlewares.RequireRole("admin", "manager"), incidentController.MarkParentNotified)
		group.DELETE("/:id", middlewares.RequireRole("admin"), incidentController.Delete)
	}
}
