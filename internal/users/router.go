package users

import (
	"eventsync/internal/shared/config"
	"eventsync/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.RouterGroup, cfg *config.Config, controller Controller) {
	userRoutes := router.Group("/users")
	{
		// Public
		userRoutes.POST("/register", controller.Register)
		userRoutes.POST("/login", controller.Login)

		// Authenticated
		authed := userRoutes.Group("")
		authed.Use(middleware.JWTAuth(cfg))
		{
			authed.GET("/:cnic", controller.GetUser)
			authed.PUT("/:cnic", controller.UpdateUser)
		}

		// Admin only
		admin := userRoutes.Group("")
		admin.Use(middleware.JWTAuth(cfg), middleware.RequireAdmin())
		{
			admin.GET("", controller.ListUsers)
			admin.DELETE("/:cnic", controller.DeleteUser)
		}
	}
}
