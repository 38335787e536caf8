package bookings

import (
	"eventsync/internal/shared/config"
	"eventsync/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupBookingRoutes(router *gin.RouterGroup, cfg *config.Config, controller Controller) {
	bookingRoutes := router.Group("/bookings")
	bookingRoutes.Use(middleware.JWTAuth(cfg))
	{
		bookingRoutes.POST("", controller.CreateBooking)
		bookingRoutes.GET("/:id", controller.GetBooking)
		bookingRoutes.GET("/user/:cnic", controller.ListUserBookings)
		bookingRoutes.PUT("/:id/cancel", controller.CancelBooking)

		// Listing across users and forcing a status are back-office operations
		staff := bookingRoutes.Group("")
		staff.Use(middleware.RequireRoles(middleware.RoleOrganiser, middleware.RoleAdmin))
		{
			staff.GET("", controller.ListBookings)
			staff.GET("/event/:eventId", controller.ListEventBookings)
			staff.PUT("/:id/status", controller.UpdateBookingStatus)
		}
	}
}
