package venues

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"eventsync/internal/shared/utils/response"
)

type Controller interface {
	ListVenues(c *gin.Context)
	GetVenue(c *gin.Context)
	CreateVenue(c *gin.Context)
	UpdateVenue(c *gin.Context)
	DeleteVenue(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) ListVenues(c *gin.Context) {
	venues, err := ctrl.service.ListVenues(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch venues", nil)
		return
	}
	response.Success(c, "Venues retrieved successfully", venues)
}

func (ctrl *controller) GetVenue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid venue ID", err.Error())
		return
	}

	venue, err := ctrl.service.GetVenue(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			response.Error(c, http.StatusNotFound, "Venue not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to fetch venue", nil)
		return
	}
	response.Success(c, "Venue retrieved successfully", venue)
}

func (ctrl *controller) CreateVenue(c *gin.Context) {
	var req CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	venue, err := ctrl.service.CreateVenue(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create venue", nil)
		return
	}
	response.Created(c, "Venue created successfully", venue)
}

func (ctrl *controller) UpdateVenue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid venue ID", err.Error())
		return
	}

	var req UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	venue, err := ctrl.service.UpdateVenue(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			response.Error(c, http.StatusNotFound, "Venue not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to update venue", nil)
		return
	}
	response.Success(c, "Venue updated successfully", venue)
}

func (ctrl *controller) DeleteVenue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid venue ID", err.Error())
		return
	}

	if err := ctrl.service.DeleteVenue(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			response.Error(c, http.StatusNotFound, "Venue not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete venue", nil)
		return
	}
	response.Success(c, "Venue deleted successfully", nil)
}
