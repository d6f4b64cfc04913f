package auth

import (
	"daycare-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, authService *AuthService) {
	authController := &AuthController{AuthService: authService}

	userGroup := r.Group("/api/auth")
	{
		userGroup.POST("/register", authController.Register)
		userGroup.POST("/login", authController.Login)
		userGroup.POST("/send-otp", authController.SendOTP)
		userGroup.POST("/reset-password", authController.ResetPassword)
	}

	secret := authService.CFG.JWTSecret
	protected := r.Group("/api/users", middlewares.AuthMiddleware(secret))
	{
		protected.GET("/me", authController.Me)
		protected.GET("", middlewares.RequireRole(RoleAdmin, RoleManager), authController.GetUsers)
		protected.GET("/:id", middlewares.RequireRole(RoleAdmin, RoleManager), authController.GetUser)
		protected.PUT("/:id", middlewares.RequireRole(RoleAdmin, RoleManager), authController.UpdateUser)
		protected.DELETE("/:id", middlewares.RequireRole(RoleAdmin), authController.DeleteUser)
	}
}
