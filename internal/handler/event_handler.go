package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-events/internal/dto"
	"campus-events/internal/middleware"
	"campus-events/internal/service"
	"campus-events/pkg/response"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Access denied",
			"message": "No token provided",
		})
		return
	}

	event, err := h.service.Create(c.Request.Context(), claims.ID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event created successfully",
		"event":   event,
	})
}

func (h *EventHandler) GetAll(c *gin.Context) {
	var filter dto.EventFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		bindError(c, err)
		return
	}

	events, err := h.service.GetAll(c.Request.Context(), &filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"count":  len(events),
	})
}

func (h *EventHandler) GetByID(c *gin.Context) {
	event, err := h.service.GetByID(c.Request.Context(), idParam(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

func (h *EventHandler) Update(c *gin.Context) {
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	event, err := h.service.Update(c.Request.Context(), idParam(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully",
		"event":   event,
	})
}

func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), idParam(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event deleted successfully",
		"changes": 1,
	})
}

// UploadPoster accepts a multipart form with a "poster" file field.
func (h *EventHandler) UploadPoster(c *gin.Context) {
	fileHeader, err := c.FormFile("poster")
	if err != nil {
		response.ValidationError(c, "Validation failed", "poster file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	event, err := h.service.UploadPoster(c.Request.Context(), idParam(c), file, fileHeader.Filename)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Poster uploaded successfully",
		"event":   event,
	})
}
