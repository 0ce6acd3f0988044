package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResponse sends a success JSON response: {"message": ..., ...data}
func SuccessResponse(c *gin.Context, statusCode int, message string, data gin.H) {
	body := gin.H{"message": message}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// MessageResponse sends a success response carrying only a message
func MessageResponse(c *gin.Context, statusCode int, message string) {
	SuccessResponse(c, statusCode, message, nil)
}

// ErrorResponse sends an error JSON response: {"error": {"code", "message"}}
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"error": gin.H{
			"code":    statusCode,
			"message": message,
		},
	})
}

// InvalidIDResponse reports a malformed path id, echoing the offending value
func InvalidIDResponse(c *gin.Context, message, id string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": gin.H{
			"code":    http.StatusBadRequest,
			"message": message,
			"id":      id,
		},
	})
}

// FieldError describes a single failed validation rule
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidationErrorResponse reports request validation failures with field-level details
func ValidationErrorResponse(c *gin.Context, details []FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": gin.H{
			"code":    http.StatusBadRequest,
			"message": "Request validation failed",
			"details": details,
		},
	})
}
