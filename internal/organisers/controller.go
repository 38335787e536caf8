package organisers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"eventsync/internal/shared/utils/response"
)

type Controller interface {
	ListOrganisers(c *gin.Context)
	GetOrganiser(c *gin.Context)
	CreateOrganiser(c *gin.Context)
	Login(c *gin.Context)
	UpdateOrganiser(c *gin.Context)
	DeleteOrganiser(c *gin.Context)
	GetOrganiserEvents(c *gin.Context)
	GetOrganiserBookings(c *gin.Context)
	GetOrganiserStats(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) ListOrganisers(c *gin.Context) {
	organisers, err := ctrl.service.ListOrganisers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch organisers", nil)
		return
	}
	response.Success(c, "Organisers retrieved successfully", organisers)
}

func (ctrl *controller) GetOrganiser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	organiser, err := ctrl.service.GetOrganiser(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch organiser")
		return
	}
	response.Success(c, "Organiser retrieved successfully", organiser)
}

func (ctrl *controller) CreateOrganiser(c *gin.Context) {
	var req CreateOrganiserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	organiser, err := ctrl.service.CreateOrganiser(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrOrganiserAlreadyExists) {
			response.Error(c, http.StatusConflict, "Organiser already exists", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to create organiser", nil)
		return
	}
	response.Created(c, "Organiser created successfully", organiser)
}

func (ctrl *controller) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	auth, err := ctrl.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Invalid email or password", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to log in", nil)
		return
	}
	response.Success(c, "Login successful", auth)
}

func (ctrl *controller) UpdateOrganiser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateOrganiserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	organiser, err := ctrl.service.UpdateOrganiser(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrOrganiserNotFound):
			response.Error(c, http.StatusNotFound, "Organiser not found", nil)
		case errors.Is(err, ErrOrganiserAlreadyExists):
			response.Error(c, http.StatusConflict, "Email already in use", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update organiser", nil)
		}
		return
	}
	response.Success(c, "Organiser updated successfully", organiser)
}

func (ctrl *controller) DeleteOrganiser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctrl.service.DeleteOrganiser(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Failed to delete organiser")
		return
	}
	response.Success(c, "Organiser deleted successfully", nil)
}

func (ctrl *controller) GetOrganiserEvents(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	events, err := ctrl.service.GetOrganiserEvents(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch organiser events")
		return
	}
	response.Success(c, "Organiser events retrieved successfully", events)
}

func (ctrl *controller) GetOrganiserBookings(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	bookings, err := ctrl.service.GetOrganiserBookings(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch organiser bookings")
		return
	}
	response.Success(c, "Organiser bookings retrieved successfully", bookings)
}

func (ctrl *controller) GetOrganiserStats(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	stats, err := ctrl.service.GetOrganiserStats(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch organiser stats")
		return
	}
	response.Success(c, "Organiser stats retrieved successfully", stats)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid organiser ID", err.Error())
		return uuid.Nil, false
	}
	return id, true
}

func respondServiceError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, ErrOrganiserNotFound) {
		response.Error(c, http.StatusNotFound, "Organiser not found", nil)
		return
	}
	response.Error(c, http.StatusInternalServerError, fallback, nil)
}
