package events

import (
	"eventsync/internal/shared/config"
	"eventsync/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupEventRoutes(router *gin.RouterGroup, cfg *config.Config, controller Controller) {
	eventRoutes := router.Group("/events")
	{
		// Public browsing
		eventRoutes.GET("", controller.ListEvents)
		eventRoutes.GET("/upcoming", controller.ListUpcomingEvents)
		eventRoutes.GET("/:id", controller.GetEvent)
		eventRoutes.GET("/:id/seats", controller.GetSeatAvailability)

		// Management requires organiser or admin role
		managed := eventRoutes.Group("")
		managed.Use(middleware.JWTAuth(cfg), middleware.RequireRoles(middleware.RoleOrganiser, middleware.RoleAdmin))
		{
			managed.POST("", controller.CreateEvent)
			managed.PUT("/:id", controller.UpdateEvent)
			managed.DELETE("/:id", controller.DeleteEvent)
		}
	}
}
