package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/souhail4real/freelanci-catalog/internal/catalog"
	"github.com/souhail4real/freelanci-catalog/internal/config"
	httpHandlers "github.com/souhail4real/freelanci-catalog/internal/http/handlers"
	httpRouter "github.com/souhail4real/freelanci-catalog/internal/http/router"
	"github.com/souhail4real/freelanci-catalog/internal/logger"
	"github.com/souhail4real/freelanci-catalog/internal/service"
	"github.com/souhail4real/freelanci-catalog/internal/store"
	"github.com/souhail4real/freelanci-catalog/internal/team"
	"github.com/souhail4real/freelanci-catalog/internal/upstream"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	logLevel := "info"
	if cfg.Env == "development" {
		logLevel = "debug"
		logger.Init(logLevel)
		logger.SetTextFormatter()
	} else {
		logger.Init(logLevel)
	}

	// Словарь навыков: встроенный или из файла.
	vocab := catalog.DefaultVocabulary()
	if cfg.VocabularyPath != "" {
		vocab, err = catalog.LoadVocabulary(cfg.VocabularyPath)
		if err != nil {
			log.Fatalf("main: ошибка загрузки словаря навыков: %v", err)
		}
	}

	// Кэш каталога и клиенты upstream сервисов.
	catalogStore := store.New()
	upstreamClient := upstream.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout, catalogStore)
	teamClient := team.NewClient(cfg.TeamAPIURL, cfg.TeamTimeout)

	// Сервисы.
	catalogService := service.NewCatalogService(catalogStore, upstreamClient)
	filterEngine := service.NewFilterEngine(catalogStore)
	skillExtractor := service.NewSkillExtractor(catalogStore, vocab)

	// Первичная загрузка каталога. Ошибка не фатальна: категории будут
	// подгружаться лениво по мере обращений.
	loadCtx, cancel := context.WithTimeout(ctx, cfg.UpstreamTimeout)
	if err := upstreamClient.LoadAll(loadCtx); err != nil {
		logger.Log.WithError(err).Warn("main: первичная загрузка каталога не удалась, продолжаем с пустым кэшем")
	}
	cancel()

	// HTTP хэндлеры.
	catalogHandler := httpHandlers.NewCatalogHandler(catalogService, catalogStore, cfg.PageSize)
	filterHandler := httpHandlers.NewFilterHandler(filterEngine, cfg.PageSize)
	searchHandler := httpHandlers.NewSearchHandler(upstreamClient)
	skillsHandler := httpHandlers.NewSkillsHandler(skillExtractor)
	teamHandler := httpHandlers.NewTeamHandler(teamClient)
	healthHandler := httpHandlers.NewHealthHandler(catalogStore)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, catalogHandler, filterHandler, searchHandler, skillsHandler, teamHandler, healthHandler)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	}()

	log.Printf("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}
