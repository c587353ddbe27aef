package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-events/internal/dto"
	"campus-events/internal/middleware"
	"campus-events/internal/service"
	"campus-events/pkg/response"
)

type RegistrationHandler struct {
	service service.RegistrationService
}

func NewRegistrationHandler(service service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

func (h *RegistrationHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
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

	registration, err := h.service.Register(c.Request.Context(), claims.ID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Student registered successfully",
		"registration": registration,
	})
}

func (h *RegistrationHandler) GetAll(c *gin.Context) {
	registrations, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"registrations": registrations,
		"count":         len(registrations),
	})
}

func (h *RegistrationHandler) GetByID(c *gin.Context) {
	registration, err := h.service.GetByID(c.Request.Context(), idParam(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"registration": registration})
}

func (h *RegistrationHandler) Cancel(c *gin.Context) {
	if err := h.service.Cancel(c.Request.Context(), idParam(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Registration cancelled successfully",
		"changes": 1,
	})
}
