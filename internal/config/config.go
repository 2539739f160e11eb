package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config хранит все параметры запуска сервиса.
type Config struct {
	Env             string
	HTTPPort        string
	UpstreamBaseURL string
	UpstreamTimeout time.Duration
	TeamAPIURL      string
	TeamTimeout     time.Duration
	PageSize        int
	VocabularyPath  string
	AllowedOrigins  []string
	RateLimitLimit  int64
	RateLimitPeriod time.Duration
}

// Load читает переменные окружения и возвращает готовую конфигурацию.
func Load() (*Config, error) {
	// Загружаем .env только если он существует, иначе используем системные переменные.
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("config: .env не найден, используем переменные окружения: %v", err)
	}

	env := getEnv("APP_ENV", "development")

	cfg := &Config{
		Env:             env,
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "http://localhost:8000/api"),
		TeamAPIURL:      getEnv("TEAM_API_URL", "http://127.0.0.1:8000"),
		VocabularyPath:  getEnv("CATALOG_VOCABULARY_PATH", ""),
	}

	if env == "production" {
		if getEnv("UPSTREAM_BASE_URL", "") == "" {
			return nil, fmt.Errorf("config: UPSTREAM_BASE_URL обязателен в production")
		}
		if getEnv("TEAM_API_URL", "") == "" {
			return nil, fmt.Errorf("config: TEAM_API_URL обязателен в production")
		}
	}

	// CORS allowed origins
	originsStr := getEnv("CORS_ALLOWED_ORIGINS", "")
	if originsStr == "" {
		if env == "production" {
			return nil, fmt.Errorf("config: CORS_ALLOWED_ORIGINS обязателен в production")
		}
		cfg.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5500"}
	} else {
		cfg.AllowedOrigins = strings.Split(originsStr, ",")
		for i, origin := range cfg.AllowedOrigins {
			cfg.AllowedOrigins[i] = strings.TrimSpace(origin)
		}
	}

	cfg.UpstreamTimeout = mustParseDuration(getEnv("UPSTREAM_TIMEOUT", "15s"))
	cfg.TeamTimeout = mustParseDuration(getEnv("TEAM_TIMEOUT", "60s"))

	cfg.PageSize = int(mustParseInt64(getEnv("PAGE_SIZE", "28")))
	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("config: PAGE_SIZE должен быть положительным")
	}

	// Rate limiting настройки
	cfg.RateLimitLimit = mustParseInt64(getEnv("RATE_LIMIT_LIMIT", "10"))
	cfg.RateLimitPeriod = mustParseDuration(getEnv("RATE_LIMIT_PERIOD", "1m"))

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или дефолт.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// mustParseDuration безопасно парсит строку в duration.
func mustParseDuration(v string) time.Duration {
	dur, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: не удалось распарсить длительность %q: %v", v, err)
	}
	return dur
}

// mustParseInt64 безопасно парсит строку в int64.
func mustParseInt64(v string) int64 {
	num, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Fatalf("config: не удалось распарсить число %q: %v", v, err)
	}
	return num
}
