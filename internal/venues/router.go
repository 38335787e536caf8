package venues

import (
	"eventsync/internal/shared/config"
	"eventsync/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupVenueRoutes(router *gin.RouterGroup, cfg *config.Config, controller Controller) {
	venueRoutes := router.Group("/venues")
	{
		// Public browsing
		venueRoutes.GET("", controller.ListVenues)
		venueRoutes.GET("/:id", controller.GetVenue)

		// Management requires organiser or admin role
		managed := venueRoutes.Group("")
		managed.Use(middleware.JWTAuth(cfg), middleware.RequireRoles(middleware.RoleOrganiser, middleware.RoleAdmin))
		{
			managed.POST("", controller.CreateVenue)
			managed.PUT("/:id", controller.UpdateVenue)
			managed.DELETE("/:id", controller.DeleteVenue)
		}
	}
}
