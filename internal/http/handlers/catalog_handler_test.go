package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/souhail4real/freelanci-catalog/internal/catalog"
	"github.com/souhail4real/freelanci-catalog/internal/http/middleware"
	"github.com/souhail4real/freelanci-catalog/internal/service"
	"github.com/souhail4real/freelanci-catalog/internal/store"
)

// stubLoader не обращается к сети: отдаёт заранее заданные записи.
type stubLoader struct {
	store   *store.Store
	records []catalog.Freelancer
}

func (l *stubLoader) LoadCategory(ctx context.Context, cat catalog.Category) ([]catalog.Freelancer, error) {
	l.store.SetCategory(cat, l.records)
	return l.records, nil
}

func newCatalogRouter(t *testing.T, records []catalog.Freelancer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.New()
	svc := service.NewCatalogService(s, &stubLoader{store: s, records: records})
	handler := NewCatalogHandler(svc, s, 28)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/catalog/categories", handler.ListCategories)
	r.GET("/catalog/freelancers", handler.BrowseFreelancers)
	r.GET("/catalog/meta", handler.GetMeta)
	return r
}

func TestCatalogHandler_ListCategories(t *testing.T) {
	r := newCatalogRouter(t, nil)

	req, _ := http.NewRequest("GET", "/catalog/categories", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Categories []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	require.Len(t, body.Categories, 5)
	assert.Equal(t, "web-development", body.Categories[0].ID)
	assert.Equal(t, "Web Development", body.Categories[0].Name)
}

func TestCatalogHandler_BrowseUnknownCategory(t *testing.T) {
	r := newCatalogRouter(t, nil)

	req, _ := http.NewRequest("GET", "/catalog/freelancers?category=gardening", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandler_BrowseInvalidPage(t *testing.T) {
	r := newCatalogRouter(t, nil)

	req, _ := http.NewRequest("GET", "/catalog/freelancers?page=0", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandler_BrowseDefaultCategory(t *testing.T) {
	r := newCatalogRouter(t, []catalog.Freelancer{
		{Username: "alice", Price: 50},
		{Username: "bob", Price: 30},
	})

	req, _ := http.NewRequest("GET", "/catalog/freelancers", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Category    string               `json:"category"`
		Freelancers []catalog.Freelancer `json:"freelancers"`
		Page        int                  `json:"page"`
		TotalPages  int                  `json:"total_pages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "web-development", body.Category)
	assert.Len(t, body.Freelancers, 2)
	assert.Equal(t, 1, body.Page)
	assert.Equal(t, 1, body.TotalPages)
}

func TestCatalogHandler_Meta(t *testing.T) {
	r := newCatalogRouter(t, nil)

	req, _ := http.NewRequest("GET", "/catalog/meta", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Metadata catalog.Metadata `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "souhail4real", body.Metadata.UpdatedBy)
}
