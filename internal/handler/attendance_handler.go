package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-events/internal/dto"
	"campus-events/internal/service"
	"campus-events/pkg/response"
)

type AttendanceHandler struct {
	service service.AttendanceService
}

func NewAttendanceHandler(service service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	attendance, err := h.service.Mark(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Attendance marked successfully",
		"attendance": attendance,
	})
}

func (h *AttendanceHandler) GetAll(c *gin.Context) {
	attendance, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"attendance": attendance,
		"count":      len(attendance),
	})
}

func (h *AttendanceHandler) GetByID(c *gin.Context) {
	attendance, err := h.service.GetByID(c.Request.Context(), idParam(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"attendance": attendance})
}

func (h *AttendanceHandler) Update(c *gin.Context) {
	var req dto.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), idParam(c), req.Status); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Attendance updated successfully",
		"changes": 1,
	})
}
