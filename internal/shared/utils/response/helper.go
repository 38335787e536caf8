package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// Success writes a 200 success envelope
func Success(c *gin.Context, message string, data interface{}) {
	RespondJSON(c, "success", http.StatusOK, message, data, nil)
}

// Created writes a 201 success envelope
func Created(c *gin.Context, message string, data interface{}) {
	RespondJSON(c, "success", http.StatusCreated, message, data, nil)
}

// Error writes an error envelope with the given status code
func Error(c *gin.Context, code int, message string, errors interface{}) {
	RespondJSON(c, "error", code, message, nil, errors)
}
