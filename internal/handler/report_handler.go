package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-events/internal/service"
	"campus-events/pkg/response"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(service service.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Serve returns the handler for one named report. Each report gets its
// own route so unknown report paths fall through to the 404 handler.
func (h *ReportHandler) Serve(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := h.service.Generate(c.Request.Context(), name)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
	}
}
