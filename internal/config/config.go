package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Pagination PaginationConfig
	Worker     WorkerConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	CORSOrigins []string
}

type DatabaseConfig struct {
	AutoMigrate    bool
	MigrationsPath string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
	CacheTTL int // minutes
}

// JWTConfig - admin guard. Khi Enabled = false, route không yêu cầu token
// (auth do gateway/filter bên ngoài đảm nhiệm)
type JWTConfig struct {
	Enabled   bool
	Secret    string
	AccessTTL int // hours
}

type PaginationConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

type WorkerConfig struct {
	Concurrency   int
	ReconcileCron string
	HealthPort    string
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Course Admin API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		},
		Database: DatabaseConfig{
			AutoMigrate:    getEnvBool("DB_AUTO_MIGRATE", false),
			MigrationsPath: getEnv("DB_MIGRATIONS_PATH", "file://migrations"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			CacheTTL: getEnvInt("REDIS_CACHE_TTL_MINUTES", 15),
		},
		JWT: JWTConfig{
			Enabled:   getEnvBool("AUTH_ENABLED", false),
			Secret:    getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			AccessTTL: getEnvInt("JWT_ACCESS_TTL_HOURS", 24),
		},
		Pagination: PaginationConfig{
			DefaultPageSize: getEnvInt("PAGINATION_DEFAULT_SIZE", 10),
			MaxPageSize:     getEnvInt("PAGINATION_MAX_SIZE", 100),
		},
		Worker: WorkerConfig{
			Concurrency:   getEnvInt("WORKER_CONCURRENCY", 10),
			ReconcileCron: getEnv("WORKER_RECONCILE_CRON", "0 3 * * *"), // 3 AM hằng ngày
			HealthPort:    getEnv("WORKER_HEALTH_PORT", "9999"),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	if c.Pagination.DefaultPageSize <= 0 {
		return fmt.Errorf("PAGINATION_DEFAULT_SIZE must be positive")
	}
	if c.Pagination.MaxPageSize < c.Pagination.DefaultPageSize {
		return fmt.Errorf("PAGINATION_MAX_SIZE must be >= PAGINATION_DEFAULT_SIZE")
	}

	// Production environment phải có JWT secret nếu bật auth
	if c.App.Environment == "production" && c.JWT.Enabled {
		if c.JWT.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
