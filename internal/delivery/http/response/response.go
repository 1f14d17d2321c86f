package response

import (
	"github.com/gin-gonic/gin"
)

// MessageResponse is the body of a successful API call
type MessageResponse struct {
	Message string `json:"message" example:"Message sent!"`
}

// ErrorResponse is the body of a failed API call
type ErrorResponse struct {
	Error string `json:"error" example:"Name must be at least 2 characters"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Message: message})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// Abort sends an error response and stops the handler chain
func Abort(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, ErrorResponse{Error: message})
}
