package payments

import (
	"daycare-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, paymentService *PaymentService, jwtSecret string) {
	paymentController := &PaymentController{PaymentService: paymentService}

	group := r.Group("/api/payments", middlewares.AuthMiddleware(jwtSecret), middlewares.RequireRole("admin", "manager"))
	{
		group.GET("", paymentController.List)
		group.GET("/summary", paymentController.Summary)
		group.GET("/outstanding", paymentController.Outstanding)
		group.GET("/:id", paymentController.Get)
		group.POST("", paymentController.Create)
		group.PUT("/:id", paymentController.Update)
		group.DELETE("/:id", middlewares.RequireRole("admin"), paymentController.Delete)
	}
}
