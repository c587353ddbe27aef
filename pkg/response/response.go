package response

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-events/pkg/apperror"
)

// Error writes the standardized {error, message} body for err. Unexpected
// errors are logged and surfaced as a plain 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(apperror.MapErrorToStatus(appErr), gin.H{
			"error":   appErr.Label,
			"message": appErr.Message,
		})
		return
	}

	log.Printf("[Internal Error] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal server error",
		"message": err.Error(),
	})
}

// ValidationError writes a 400 for a gin binding failure.
func ValidationError(c *gin.Context, label, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   label,
		"message": message,
	})
}
