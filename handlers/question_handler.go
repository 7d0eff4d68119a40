package handlers

import (
	"net/http"
	"strconv"

	"productsiksha-backend/auth"
	"productsiksha-backend/service"

	"github.com/gin-gonic/gin"
)

// QuestionHandler handles the category, company, question listing and
// completion toggle endpoints.
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// GetCategories handles GET /api/categories
func (h *QuestionHandler) GetCategories(c *gin.Context) {
	categories, err := h.questionService.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCompanies handles GET /api/companies?category=&from_date=&to_date=
func (h *QuestionHandler) GetCompanies(c *gin.Context) {
	companies, err := h.questionService.ListCompanies(c.Request.Context(), service.ListCompaniesRequest{
		CategorySlug: c.Query("category"),
		FromDate:     c.Query("from_date"),
		ToDate:       c.Query("to_date"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, companies)
}

// GetQuestions handles GET /api/questions/:category (bearer auth).
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	userID, _, ok := auth.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
		return
	}

	result, err := h.questionService.ListQuestions(c.Request.Context(), service.ListQuestionsRequest{
		UserID:       userID,
		CategorySlug: c.Param("category"),
		Company:      c.Query("company"),
		FromDate:     c.Query("from_date"),
		ToDate:       c.Query("to_date"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category":  result.Category,
		"count":     result.Count,
		"questions": result.Questions,
	})
}

// ToggleCompletion handles POST /api/questions/:id/toggle (bearer auth).
func (h *QuestionHandler) ToggleCompletion(c *gin.Context) {
	userID, _, ok := auth.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
		return
	}

	questionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question ID"})
		return
	}

	result, err := h.questionService.ToggleCompletion(c.Request.Context(), userID, questionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"question_id":  result.QuestionID,
		"is_completed": result.IsCompleted,
	})
}
