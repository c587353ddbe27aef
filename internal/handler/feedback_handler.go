package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-events/internal/dto"
	"campus-events/internal/service"
	"campus-events/pkg/response"
)

type FeedbackHandler struct {
	service service.FeedbackService
}

func NewFeedbackHandler(service service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req dto.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	feedback, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Feedback submitted successfully",
		"feedback": feedback,
	})
}

func (h *FeedbackHandler) GetAll(c *gin.Context) {
	feedback, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"feedback": feedback,
		"count":    len(feedback),
	})
}

func (h *FeedbackHandler) GetByID(c *gin.Context) {
	feedback, err := h.service.GetByID(c.Request.Context(), idParam(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"feedback": feedback})
}

func (h *FeedbackHandler) Update(c *gin.Context) {
	var req dto.UpdateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.service.Update(c.Request.Context(), idParam(c), &req); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Feedback updated successfully",
		"changes": 1,
	})
}
