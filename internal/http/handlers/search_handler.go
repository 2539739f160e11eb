package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/souhail4real/freelanci-catalog/internal/catalog"
	"github.com/souhail4real/freelanci-catalog/internal/upstream"
)

// Searcher ищет фрилансеров через upstream с локальным fallback.
type Searcher interface {
	Search(ctx context.Context, query string) (upstream.SearchResult, error)
}

type SearchHandler struct {
	searcher Searcher
}

func NewSearchHandler(searcher Searcher) *SearchHandler {
	return &SearchHandler{searcher: searcher}
}

// Search GET /catalog/search
// Пустой запрос и недоступный upstream при пустом кэше дают пустой
// результат со статусом 200: поиск никогда не падает наружу.
func (h *SearchHandler) Search(c *gin.Context) {
	result, err := h.searcher.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		// Единственный источник ошибки — недоступный upstream при пустом
		// кэше; отдаём пустой список.
		result = upstream.SearchResult{}
	}

	results := result.Results
	if results == nil {
		results = []catalog.TaggedFreelancer{}
	}

	c.JSON(http.StatusOK, gin.H{
		"results":  results,
		"total":    len(results),
		"fallback": result.Fallback,
	})
}
