package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/souhail4real/freelanci-catalog/internal/catalog"
	"github.com/souhail4real/freelanci-catalog/internal/store"
)

// HealthHandler предоставляет endpoint для проверки здоровья сервиса.
type HealthHandler struct {
	store *store.Store
}

// NewHealthHandler создаёт новый health handler.
func NewHealthHandler(s *store.Store) *HealthHandler {
	return &HealthHandler{store: s}
}

// HealthResponse представляет ответ health check.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// Health обрабатывает GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	checks := make(map[string]string)

	cached := 0
	for _, cat := range catalog.AllCategories() {
		if h.store.Has(cat) {
			cached++
		}
	}
	if cached == 0 {
		checks["cache"] = "empty"
	} else {
		checks["cache"] = "warm"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Checks:    checks,
	})
}
