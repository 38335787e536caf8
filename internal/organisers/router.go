package organisers

import (
	"eventsync/internal/shared/config"
	"eventsync/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupOrganiserRoutes(router *gin.RouterGroup, cfg *config.Config, controller Controller) {
	organiserRoutes := router.Group("/organisers")
	{
		// Public
		organiserRoutes.POST("", controller.CreateOrganiser)
		organiserRoutes.POST("/login", controller.Login)
		organiserRoutes.GET("", controller.ListOrganisers)
		organiserRoutes.GET("/:id", controller.GetOrganiser)

		// Organiser dashboard routes
		dashboard := organiserRoutes.Group("")
		dashboard.Use(middleware.JWTAuth(cfg), middleware.RequireRoles(middleware.RoleOrganiser, middleware.RoleAdmin))
		{
			dashboard.GET("/:id/events", controller.GetOrganiserEvents)
			dashboard.GET("/:id/bookings", controller.GetOrganiserBookings)
			dashboard.GET("/:id/stats", controller.GetOrganiserStats)
			dashboard.PUT("/:id", controller.UpdateOrganiser)
			dashboard.DELETE("/:id", controller.DeleteOrganiser)
		}
	}
}
