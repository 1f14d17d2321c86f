package middleware

import (
	"errors"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

const genericFailure = "Failed to send message"

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		requestID := c.GetString(RequestIDKey)

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("Request failed",
					"request_id", requestID,
					"kind", appErr.Kind,
					"error", appErr.Message,
					"cause", appErr.Err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		// Never expose internal error details; log them server-side instead.
		logger.Log.Error("Internal Server Error", "request_id", requestID, "error", err)
		response.Error(c, http.StatusInternalServerError, genericFailure)
	}
}

// Recovery turns a panic anywhere in the chain into the generic JSON failure.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Log.Error("Recovered from panic",
			"request_id", c.GetString(RequestIDKey),
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		response.Abort(c, http.StatusInternalServerError, genericFailure)
	})
}
