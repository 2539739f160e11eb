package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/souhail4real/freelanci-catalog/internal/service"
)

type SkillsHandler struct {
	extractor *service.SkillExtractor
}

func NewSkillsHandler(extractor *service.SkillExtractor) *SkillsHandler {
	return &SkillsHandler{extractor: extractor}
}

// ListSkills GET /catalog/skills
// Навыки, найденные в описаниях кэшированных фрилансеров. Пустой кэш даёт
// пустой список, загрузка не инициируется.
func (h *SkillsHandler) ListSkills(c *gin.Context) {
	skills := h.extractor.Extract()
	if skills == nil {
		skills = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"skills": skills})
}
