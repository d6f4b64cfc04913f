package reports

import (
	"daycare-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, reportService *ReportService, jwtSecret string) {
	reportController := &ReportController{ReportService: reportService}

	group := r.Group("/api/reports", middlewares.AuthMiddleware(jwtSecret), middlewares.RequireRole("admin", "manager"))
	{
		group.GET("/financial", reportController.FinancialSummary)
		group.GET("/attendance", reportController.AttendanceRegister)
		group.GET("/archive", reportController.ListArchived)
	}
}
