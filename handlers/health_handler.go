package handlers

import (
	"net/http"
	"time"

	"productsiksha-backend/repository"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness and a configuration summary.
type HealthHandler struct {
	store            repository.Store
	geminiConfigured bool
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store repository.Store, geminiConfigured bool) *HealthHandler {
	return &HealthHandler{
		store:            store,
		geminiConfigured: geminiConfigured,
	}
}

// Health handles GET /health and GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":            "healthy",
		"timestamp":         time.Now().UTC().Format(time.RFC3339),
		"gemini_configured": h.geminiConfigured,
		"database":          h.store.Backend(),
	})
}
