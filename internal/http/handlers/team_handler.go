package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/souhail4real/freelanci-catalog/internal/team"
)

// TeamFinder подбирает команду по описанию проекта.
type TeamFinder interface {
	FindTeam(ctx context.Context, project string) ([]team.Member, error)
}

type TeamHandler struct {
	finder TeamFinder
}

func NewTeamHandler(finder TeamFinder) *TeamHandler {
	return &TeamHandler{finder: finder}
}

type findTeamRequest struct {
	Project string `json:"project" binding:"required"`
}

// FindTeam POST /team
// Единственный маршрут, показывающий пользователю текст ошибки: сообщение
// upstream передаётся дословно, прочие сбои — общий fallback-текст.
func (h *TeamHandler) FindTeam(c *gin.Context) {
	var req findTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "описание проекта обязательно"})
		return
	}

	members, err := h.finder.FindTeam(c.Request.Context(), req.Project)
	if err != nil {
		var reqErr *team.RequestError
		if errors.As(err, &reqErr) {
			c.JSON(reqErr.StatusCode, gin.H{"message": reqErr.Message})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"message": "An unexpected error occurred"})
		return
	}

	if members == nil {
		members = []team.Member{}
	}
	c.JSON(http.StatusOK, gin.H{"team": members})
}
