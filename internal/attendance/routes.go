package attendance

import (
	"daycare-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, attendanceService *AttendanceService, jwtSecret string) {
	attendanceController := &AttendanceController{AttendanceService: attendanceService}

	group := r.Group("/api/attendance", middlewares.AuthMiddleware(jwtSecret))
	{
		group.GET("", attendanceController.List)
		group.GET("/stats/daily", attendanceController.DailyStats)
		group.GET("/stats/monthly", attendanceController.MonthlyStats)
		group.GET("/:id", attendanceController.Get)
		group.POST("", middlewares.RequireRole("admin", "manager", "babysitter"), attendanceController.Create)
		group.PUT("/:id", middlewares.RequireRole("admin", "manager", "babysitter"), attendanceController.Update)
		group.DELETE("/:id", middlewares.RequireRole("admin"), attendanceController.Delete)
	}
}
