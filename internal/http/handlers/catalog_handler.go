package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/souhail4real/freelanci-catalog/internal/catalog"
	"github.com/souhail4real/freelanci-catalog/internal/http/handlers/common"
	"github.com/souhail4real/freelanci-catalog/internal/service"
	"github.com/souhail4real/freelanci-catalog/internal/store"
)

type CatalogHandler struct {
	catalog  *service.CatalogService
	store    *store.Store
	pageSize int
}

func NewCatalogHandler(catalogService *service.CatalogService, s *store.Store, pageSize int) *CatalogHandler {
	if pageSize <= 0 {
		pageSize = service.DefaultPageSize
	}
	return &CatalogHandler{catalog: catalogService, store: s, pageSize: pageSize}
}

// ListCategories GET /catalog/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories := make([]gin.H, 0, len(catalog.AllCategories()))
	for _, cat := range catalog.AllCategories() {
		categories = append(categories, gin.H{
			"id":   cat,
			"name": cat.DisplayName(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// BrowseFreelancers GET /catalog/freelancers
// Отдаёт страницу категории; категория подгружается лениво при первом
// обращении. Ошибка upstream деградирует до пустой страницы.
func (h *CatalogHandler) BrowseFreelancers(c *gin.Context) {
	cat, err := catalog.ParseCategory(c.DefaultQuery("category", string(catalog.DefaultCategory)))
	if err != nil {
		// Ответ сформирует централизованный error handler.
		_ = c.Error(err)
		return
	}

	page, pageSize := common.GetPageParams(c, h.pageSize)
	if page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "номер страницы должен начинаться с 1"})
		return
	}

	records, totalPages := h.catalog.Browse(c.Request.Context(), cat, page, pageSize)
	if records == nil {
		records = []catalog.Freelancer{}
	}

	c.JSON(http.StatusOK, gin.H{
		"category":    cat,
		"freelancers": records,
		"page":        page,
		"total_pages": totalPages,
		"metadata":    h.store.Metadata(),
	})
}

// GetMeta GET /catalog/meta
func (h *CatalogHandler) GetMeta(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"metadata": h.store.Metadata()})
}
