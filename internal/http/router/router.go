package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/souhail4real/freelanci-catalog/internal/config"
	"github.com/souhail4real/freelanci-catalog/internal/http/handlers"
	"github.com/souhail4real/freelanci-catalog/internal/http/middleware"
)

func SetupRouter(
	cfg *config.Config,
	catalogHandler *handlers.CatalogHandler,
	filterHandler *handlers.FilterHandler,
	searchHandler *handlers.SearchHandler,
	skillsHandler *handlers.SkillsHandler,
	teamHandler *handlers.TeamHandler,
	healthHandler *handlers.HealthHandler,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// Каталог (публичный)
	api.GET("/catalog/categories", catalogHandler.ListCategories)
	api.GET("/catalog/freelancers", catalogHandler.BrowseFreelancers)
	api.GET("/catalog/meta", catalogHandler.GetMeta)
	api.GET("/catalog/filter", filterHandler.Filter)
	api.GET("/catalog/search", searchHandler.Search)
	api.GET("/catalog/skills", skillsHandler.ListSkills)

	// Подбор команды дороже остальных маршрутов, ограничиваем частоту.
	teamGroup := api.Group("/team")
	teamGroup.Use(middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod))
	{
		teamGroup.POST("", teamHandler.FindTeam)
	}

	return r
}
