package common

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseIntQuery safely reads an integer query parameter with a fallback value
func ParseIntQuery(c *gin.Context, key string, fallback int) int {
	if v := c.Query(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

// GetPageParams извлекает page и page_size из параметров запроса.
// page по умолчанию 1, page_size — дефолт сервиса.
func GetPageParams(c *gin.Context, defaultPageSize int) (page, pageSize int) {
	page = ParseIntQuery(c, "page", 1)
	pageSize = ParseIntQuery(c, "page_size", defaultPageSize)
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return
}
