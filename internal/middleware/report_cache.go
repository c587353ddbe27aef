package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-events/pkg/cache"
)

// InvalidateReports bumps the report cache revision after any successful
// write. Every mutation in the API goes through a non-GET verb, so this
// one hook keeps cached reports consistent with the database.
func InvalidateReports(reportCache *cache.ReportCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		reportCache.BumpRevision(c.Request.Context())
	}
}
