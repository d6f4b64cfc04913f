package expenses

import (
	"daycare-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, expenseService *ExpenseService, jwtSecret string) {
	expenseController := &ExpenseController{ExpenseService: expenseService}

	group := r.Group("/api/expenses", middlewares.AuthMiddleware(jwtSecret), middlewares.RequireRole("admin", "manager"))
	{
		group.GET("", expenseController.List)
		group.GET("/totals", expenseController.CategoryTotals)
		group.GET("/:id", expenseController.Get)
		group.POST("", expenseController.Create)
		group.PUT("/:id", expenseController.Update)
		group.DELETE("/:id", middlewares.RequireRole("admin"), expenseController.Delete)
	}
}
