package budgets

import (
	"daycare-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, budgetService *BudgetService, jwtSecret string) {
	budgetController := &BudgetController{BudgetService: budgetService}

	group := r.Group("/api/budgets", middlewares.AuthMiddleware(jwtSecret), middlewares.RequireRole("admin", "manager"))
	{
		group.GET("", budgetController.List)
		group.GET("/:id", budgetController.Get)
		group.POST("", budgetController.Create)
		group.PUT("/:id", budgetController.Update)
		group.DELETE("/:id", middlewares.RequireRole("admin"), budgetController.Delete)
	}
}
