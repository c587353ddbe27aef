package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-events/internal/dto"
	"campus-events/internal/service"
	"campus-events/pkg/response"
)

type CollegeHandler struct {
	service service.CollegeService
}

func NewCollegeHandler(service service.CollegeService) *CollegeHandler {
	return &CollegeHandler{service: service}
}

func (h *CollegeHandler) Create(c *gin.Context) {
	var req dto.CreateCollegeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	college, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "College created successfully",
		"college": college,
	})
}

func (h *CollegeHandler) GetAll(c *gin.Context) {
	colleges, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"colleges": colleges,
		"count":    len(colleges),
	})
}

func (h *CollegeHandler) GetByID(c *gin.Context) {
	college, err := h.service.GetByID(c.Request.Context(), idParam(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"college": college})
}
