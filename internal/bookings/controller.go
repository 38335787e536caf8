package bookings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"eventsync/internal/shared/utils/response"
)

type Controller interface {
	CreateBooking(c *gin.Context)
	GetBooking(c *gin.Context)
	ListBookings(c *gin.Context)
	ListUserBookings(c *gin.Context)
	ListEventBookings(c *gin.Context)
	UpdateBookingStatus(c *gin.Context)
	CancelBooking(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	booking, err := ctrl.service.TryBook(c.Request.Context(), &req)
	if err != nil {
		ctrl.respondBookingError(c, err)
		return
	}
	response.Created(c, "Booking confirmed successfully", booking)
}

// respondBookingError maps admission failures onto HTTP statuses.
// Seat exhaustion is a 400 like any other rejected booking request.
func (ctrl *controller) respondBookingError(c *gin.Context, err error) {
	var insufficientErr *InsufficientSeatsError
	switch {
	case errors.Is(err, ErrEventNotFound):
		response.Error(c, http.StatusNotFound, "Event not found", nil)
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "User not found", nil)
	case errors.Is(err, ErrEventNotBookable):
		response.Error(c, http.StatusBadRequest, "Event is not available for booking", nil)
	case errors.Is(err, ErrSoldOut):
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
	case errors.As(err, &insufficientErr):
		response.Error(c, http.StatusBadRequest, insufficientErr.Error(), gin.H{
			"remaining": insufficientErr.Remaining,
			"requested": insufficientErr.Requested,
		})
	default:
		response.Error(c, http.StatusInternalServerError, "Failed to create booking", nil)
	}
}

func (ctrl *controller) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking ID", err.Error())
		return
	}

	booking, err := ctrl.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.Error(c, http.StatusNotFound, "Booking not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to fetch booking", nil)
		return
	}
	response.Success(c, "Booking retrieved successfully", booking)
}

func (ctrl *controller) ListBookings(c *gin.Context) {
	bookings, err := ctrl.service.ListBookings(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch bookings", nil)
		return
	}
	response.Success(c, "Bookings retrieved successfully", bookings)
}

func (ctrl *controller) ListUserBookings(c *gin.Context) {
	cnic := c.Param("cnic")
	bookings, err := ctrl.service.ListUserBookings(c.Request.Context(), cnic)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch user bookings", nil)
		return
	}
	response.Success(c, "User bookings retrieved successfully", bookings)
}

func (ctrl *controller) ListEventBookings(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid event ID", err.Error())
		return
	}

	bookings, err := ctrl.service.ListEventBookings(c.Request.Context(), eventID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch event bookings", nil)
		return
	}
	response.Success(c, "Event bookings retrieved successfully", bookings)
}

func (ctrl *controller) UpdateBookingStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking ID", err.Error())
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := ctrl.service.SetStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "Invalid booking status", nil)
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "Booking not found", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update booking status", nil)
		}
		return
	}
	response.Success(c, "Booking status updated successfully", nil)
}

func (ctrl *controller) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking ID", err.Error())
		return
	}

	booking, err := ctrl.service.Cancel(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "Booking not found", nil)
		case errors.Is(err, ErrAlreadyCancelled):
			response.Error(c, http.StatusConflict, "Booking is already cancelled", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to cancel booking", nil)
		}
		return
	}
	response.Success(c, "Booking cancelled successfully", booking)
}
