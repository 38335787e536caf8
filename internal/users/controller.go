package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventsync/internal/shared/utils/response"
)

type Controller interface {
	ListUsers(c *gin.Context)
	GetUser(c *gin.Context)
	Register(c *gin.Context)
	Login(c *gin.Context)
	UpdateUser(c *gin.Context)
	DeleteUser(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) ListUsers(c *gin.Context) {
	users, err := ctrl.service.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch users", nil)
		return
	}
	response.Success(c, "Users retrieved successfully", users)
}

func (ctrl *controller) GetUser(c *gin.Context) {
	cnic := c.Param("cnic")

	user, err := ctrl.service.GetUser(c.Request.Context(), cnic)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to fetch user", nil)
		return
	}
	response.Success(c, "User retrieved successfully", user)
}

func (ctrl *controller) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	auth, err := ctrl.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			response.Error(c, http.StatusConflict, "User already exists", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to register user", nil)
		return
	}
	response.Created(c, "User registered successfully", auth)
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

func (ctrl *controller) UpdateUser(c *gin.Context) {
	cnic := c.Param("cnic")

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	user, err := ctrl.service.UpdateUser(c.Request.Context(), cnic, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "User not found", nil)
		case errors.Is(err, ErrUserAlreadyExists):
			response.Error(c, http.StatusConflict, "Email already in use", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update user", nil)
		}
		return
	}
	response.Success(c, "User updated successfully", user)
}

func (ctrl *controller) DeleteUser(c *gin.Context) {
	cnic := c.Param("cnic")

	if err := ctrl.service.DeleteUser(c.Request.Context(), cnic); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete user", nil)
		return
	}
	response.Success(c, "User deleted successfully", nil)
}
