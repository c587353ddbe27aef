package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"campus-events/pkg/response"
	"campus-events/pkg/validator"
)

// idParam parses the :id path segment. A non-numeric value parses to 0,
// which no row ever has, so lookups fall through to the resource's own
// not-found response.
func idParam(c *gin.Context) uint {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id)
}

func bindError(c *gin.Context, err error) {
	response.ValidationError(c, "Validation failed", validator.FormatValidationError(err))
}
