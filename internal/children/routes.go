package children

import (
	"daycare-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, childService *ChildService, jwtSecret string) {
	childController := &ChildController{ChildService: childService}

	group := r.Group("/api/children", middlewares.AuthMiddleware(jwtSecret))
	{
		group.GET("", childController.List)
		group.GET("/:id", childController.Get)
		group.POST("", middlewares.RequireRole("admin", "manager"), childController.Create)
		group.PUT("/:id", middlewares.RequireRole("admin", "manager"), childController.Update)
		group.DELETE("/:id", middlewares.RequireRole("admin"), childController.Delete)
	}
}
