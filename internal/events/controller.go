package events

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"eventsync/internal/shared/utils/response"
)

type Controller interface {
	ListEvents(c *gin.Context)
	ListUpcomingEvents(c *gin.Context)
	GetEvent(c *gin.Context)
	CreateEvent(c *gin.Context)
	UpdateEvent(c *gin.Context)
	DeleteEvent(c *gin.Context)
	GetSeatAvailability(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) ListEvents(c *gin.Context) {
	events, err := ctrl.service.ListEvents(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch events", nil)
		return
	}
	response.Success(c, "Events retrieved successfully", events)
}

func (ctrl *controller) ListUpcomingEvents(c *gin.Context) {
	events, err := ctrl.service.ListUpcomingEvents(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch upcoming events", nil)
		return
	}
	response.Success(c, "Upcoming events retrieved successfully", events)
}

func (ctrl *controller) GetEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid event ID", err.Error())
		return
	}

	event, err := ctrl.service.GetEvent(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			response.Error(c, http.StatusNotFound, "Event not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to fetch event", nil)
		return
	}
	response.Success(c, "Event retrieved successfully", event)
}

func (ctrl *controller) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	event, err := ctrl.service.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	response.Created(c, "Event created successfully", event)
}

func (ctrl *controller) UpdateEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid event ID", err.Error())
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	event, err := ctrl.service.UpdateEvent(c.Request.Context(), id, &req)
	if err != nil {
		var capacityErr *CapacityBelowSoldError
		switch {
		case errors.Is(err, ErrEventNotFound):
			response.Error(c, http.StatusNotFound, "Event not found", nil)
		case errors.As(err, &capacityErr):
			response.Error(c, http.StatusBadRequest, capacityErr.Error(), nil)
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update event", nil)
		}
		return
	}
	response.Success(c, "Event updated successfully", event)
}

func (ctrl *controller) DeleteEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid event ID", err.Error())
		return
	}

	if err := ctrl.service.DeleteEvent(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrEventNotFound) {
			response.Error(c, http.StatusNotFound, "Event not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete event", nil)
		return
	}
	response.Success(c, "Event deleted successfully", nil)
}

func (ctrl *controller) GetSeatAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid event ID", err.Error())
		return
	}

	availability, err := ctrl.service.GetSeatAvailability(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			response.Error(c, http.StatusNotFound, "Event not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to fetch seat availability", nil)
		return
	}
	response.Success(c, "Seat availability retrieved successfully", availability)
}
