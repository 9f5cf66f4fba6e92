package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the uniform envelope for the non-GraphQL endpoints.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success writes a 200 envelope.
func Success(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error writes an error envelope with the given status.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error:   message,
	})
}

// BadRequest writes a 400 envelope.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// ServiceUnavailable writes a 503 envelope.
func ServiceUnavailable(c *gin.Context, message string) {
	Error(c, http.StatusServiceUnavailable, message)
}

// FromError writes an error envelope using the taxonomy's status mapping.
func FromError(c *gin.Context, err error) {
	Error(c, StatusForError(err), err.Error())
}
