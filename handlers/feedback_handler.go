package handlers

import (
	"errors"
	"net/http"

	"productsiksha-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// fallbackFeedback is shown whenever the AI service fails; the caller
// never sees a raw transport error.
const fallbackFeedback = "Unable to get AI feedback at this time. Please try again."

// FeedbackHandler handles POST /api/feedback.
type FeedbackHandler struct {
	feedbackService *service.FeedbackService
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

type feedbackRequest struct {
	Question string                 `json:"question"`
	Answer   string                 `json:"answer"`
	Prompt   string                 `json:"prompt"`
	Files    []service.AttachedFile `json:"files"`
}

// GetFeedback handles POST /api/feedback
func (h *FeedbackHandler) GetFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question is required"})
		return
	}

	result, err := h.feedbackService.GetFeedback(c.Request.Context(), service.FeedbackRequest{
		Question: req.Question,
		Answer:   req.Answer,
		Prompt:   req.Prompt,
		Files:    req.Files,
	})
	if errors.Is(err, service.ErrQuestionRequired) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question is required"})
		return
	}
	if err != nil {
		logrus.Errorf("Gemini API error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":    "AI service error: " + err.Error(),
			"feedback": fallbackFeedback,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"feedback":        result.Feedback,
		"model":           result.Model,
		"files_processed": result.FilesProcessed,
	})
}
