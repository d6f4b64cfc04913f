package babysitters

import (
	"daycare-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, babysitterService *BabysitterService, jwtSecret string) {
	babysitterController := &BabysitterController{BabysitterService: babysitterService}

	group := r.Group("/api/babysitters", middlewares.AuthMiddleware(jwtSecret))
	{
		group.GET("", babysitterController.List)
		group.GET("/:id", babysitterController.Get)
		group.GET("/:id/children-count", babysitterController.ChildrenCount)
		group.POST("", middlewares.RequireRole("admin", "manager"), babysitterController.Create)
		group.PUT("/:id", middlewares.RequireRole("admin", "manager"), babysitterController.Update)
		group.DELETE("/:id", middlewares.RequireRole("admin"), babysitterController.Delete)
	}
}
