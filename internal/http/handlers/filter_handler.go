package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/souhail4real/freelanci-catalog/internal/catalog"
	"github.com/souhail4real/freelanci-catalog/internal/http/handlers/common"
	"github.com/souhail4real/freelanci-catalog/internal/service"
)

type FilterHandler struct {
	engine   *service.FilterEngine
	pageSize int
}

func NewFilterHandler(engine *service.FilterEngine, pageSize int) *FilterHandler {
	if pageSize <= 0 {
		pageSize = service.DefaultPageSize
	}
	return &FilterHandler{engine: engine, pageSize: pageSize}
}

// Filter GET /catalog/filter
// Применяет критерии к кэшу каталога и возвращает результаты вместе со
// списком активных фильтров. Нечисловые цены игнорируются как
// отсутствующие. Если передан page, результат дополнительно постранично
// нарезается.
func (h *FilterHandler) Filter(c *gin.Context) {
	criteria, err := service.ParseCriteria(
		c.Query("category"),
		c.Query("min_price"),
		c.Query("max_price"),
		c.Query("skills"),
	)
	if err != nil {
		_ = c.Error(err)
		return
	}

	results, activeFilters := h.engine.Apply(criteria)
	if results == nil {
		results = []catalog.TaggedFreelancer{}
	}
	if activeFilters == nil {
		activeFilters = []service.ActiveFilter{}
	}

	response := gin.H{
		"results":        results,
		"active_filters": activeFilters,
		"total":          len(results),
	}

	if c.Query("page") != "" {
		page, pageSize := common.GetPageParams(c, h.pageSize)
		if page < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "номер страницы должен начинаться с 1"})
			return
		}
		pageRecords, totalPages := service.Paginate(results, pageSize, page)
		if pageRecords == nil {
			pageRecords = []catalog.TaggedFreelancer{}
		}
		response["results"] = pageRecords
		response["page"] = page
		response["total_pages"] = totalPages
	}

	c.JSON(http.StatusOK, response)
}
