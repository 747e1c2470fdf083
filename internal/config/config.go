package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	SourceFixture  = "fixture"
	SourceHostaway = "hostaway"

	devAdminToken = "admin"
)

// Config хранит все параметры запуска приложения.
type Config struct {
	Env            string
	HTTPPort       string
	LogLevel       string
	AllowedOrigins []string

	ReviewSource        string
	HostawayBaseURL     string
	HostawayAccessToken string
	HostawayTimeout     time.Duration

	AdminToken    string
	JWTSecret     string
	AdminTokenTTL time.Duration
}

// IsProduction сообщает, запущено ли приложение в production.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Load читает .env (если он есть) и переменные окружения.
func Load() (*Config, error) {
	// Загружаем .env только если он существует, иначе используем системные переменные.
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("config: не удалось прочитать .env: %v", err)
	}
	return FromEnv()
}

// FromEnv собирает конфигурацию из текущего окружения без чтения .env.
func FromEnv() (*Config, error) {
	env := getEnv("APP_ENV", EnvDevelopment)
	if env != EnvDevelopment && env != EnvProduction {
		return nil, fmt.Errorf("config: неизвестное окружение APP_ENV=%q", env)
	}

	defaultLevel := "info"
	if env == EnvDevelopment {
		defaultLevel = "debug"
	}

	cfg := &Config{
		Env:                 env,
		HTTPPort:            getEnv("HTTP_PORT", "3000"),
		LogLevel:            getEnv("LOG_LEVEL", defaultLevel),
		ReviewSource:        strings.ToLower(getEnv("REVIEW_SOURCE", SourceFixture)),
		HostawayBaseURL:     getEnv("HOSTAWAY_BASE_URL", "https://api.hostaway.com/v1"),
		HostawayAccessToken: getEnv("HOSTAWAY_ACCESS_TOKEN", ""),
		AdminToken:          getEnv("ADMIN_TOKEN", ""),
		JWTSecret:           getEnv("JWT_SECRET", ""),
	}

	var err error
	if cfg.HostawayTimeout, err = parseDuration("HOSTAWAY_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.AdminTokenTTL, err = parseDuration("ADMIN_TOKEN_TTL", "12h"); err != nil {
		return nil, err
	}

	switch cfg.ReviewSource {
	case SourceFixture:
	case SourceHostaway:
		if cfg.HostawayAccessToken == "" {
			return nil, fmt.Errorf("config: HOSTAWAY_ACCESS_TOKEN обязателен для REVIEW_SOURCE=%s", SourceHostaway)
		}
	default:
		return nil, fmt.Errorf("config: неизвестный REVIEW_SOURCE=%q", cfg.ReviewSource)
	}

	if err := cfg.applySecrets(); err != nil {
		return nil, err
	}

	// CORS allowed origins
	originsStr := getEnv("CORS_ALLOWED_ORIGINS", "")
	if originsStr == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("config: CORS_ALLOWED_ORIGINS обязателен в production")
		}
		cfg.AllowedOrigins = []string{"*"}
	} else {
		for _, origin := range strings.Split(originsStr, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	return cfg, nil
}

// applySecrets проверяет админский токен и секрет подписи.
func (c *Config) applySecrets() error {
	if c.IsProduction() {
		if len(c.AdminToken) < 16 {
			return fmt.Errorf("config: ADMIN_TOKEN обязателен и должен быть не менее 16 символов в production")
		}
		if c.JWTSecret != "" && len(c.JWTSecret) < 32 {
			return fmt.Errorf("config: JWT_SECRET должен быть не менее 32 символов в production")
		}
		return nil
	}

	if c.AdminToken == "" {
		c.AdminToken = devAdminToken
		log.Printf("config: WARNING - используется дефолтный ADMIN_TOKEN, измените в production!")
	}
	return nil
}

// getEnv возвращает значение переменной окружения или дефолт, если она пуста.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// parseDuration читает длительность из окружения.
func parseDuration(key, fallback string) (time.Duration, error) {
	v := getEnv(key, fallback)
	dur, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: не удалось распарсить %s=%q: %w", key, v, err)
	}
	if dur <= 0 {
		return 0, fmt.Errorf("config: %s должен быть положительным, получено %q", key, v)
	}
	return dur, nil
}
