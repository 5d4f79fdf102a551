package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// MaxScanBatchLimit - верхняя граница числа кандидатов, обрабатываемых за одно сканирование
	MaxScanBatchLimit = 200
	// MaxSearchLimit - верхняя граница выдачи полнотекстового поиска
	MaxSearchLimit = 100
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL      string `env:"DATABASE_URL"`
	DatabaseMaxConns int    `env:"DB_MAX_CONNS" envDefault:"10"`
	HTTPPort         string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"LOG_FORMAT" envDefault:"json"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Rainfall Config
	RainfallAPIURL    string        `env:"RAINFALL_API_URL" envDefault:"https://api.open-meteo.com/v1"`
	RainfallOriginLat float64       `env:"RAINFALL_ORIGIN_LAT" envDefault:"-13.9626"`
	RainfallOriginLng float64       `env:"RAINFALL_ORIGIN_LNG" envDefault:"33.75"`
	RainfallGridStep  float64       `env:"RAINFALL_GRID_STEP" envDefault:"0.7"`
	RainfallCacheTTL  time.Duration `env:"RAINFALL_CACHE_TTL" envDefault:"15m"`
	RainfallRateLimit float64       `env:"RAINFALL_RATE_LIMIT" envDefault:"1"`

	// Регион, покрываемый сеткой осадков и выборкой слоев по умолчанию
	RegionMinLat float64 `env:"REGION_MIN_LAT" envDefault:"-16.0"`
	RegionMaxLat float64 `env:"REGION_MAX_LAT" envDefault:"-9.25"`
	RegionMinLng float64 `env:"REGION_MIN_LNG" envDefault:"32.67"`
	RegionMaxLng float64 `env:"REGION_MAX_LNG" envDefault:"35.92"`

	// Scan / Enrichment Config
	ScanBatchLimit     int           `env:"SCAN_BATCH_LIMIT" envDefault:"80"`
	ScanCandidateLimit int           `env:"SCAN_CANDIDATE_LIMIT" envDefault:"200"`
	EnrichConcurrency  int           `env:"ENRICH_CONCURRENCY" envDefault:"8"`
	LookupTimeout      time.Duration `env:"LOOKUP_TIMEOUT" envDefault:"3s"`

	// Search Config
	SearchLimit       int `env:"SEARCH_LIMIT" envDefault:"50"`
	TopAreasLimit     int `env:"TOP_AREAS_LIMIT" envDefault:"5"`
	LayerFeatureLimit int `env:"LAYER_FEATURE_LIMIT" envDefault:"2000"`

	// Alert webhook Config
	AlertWebhookURL     string        `env:"ALERT_WEBHOOK_URL"`
	AlertWebhookSecret  string        `env:"ALERT_WEBHOOK_SECRET"`
	AlertWebhookTimeout time.Duration `env:"ALERT_WEBHOOK_TIMEOUT" envDefault:"5s"`
	AlertMaxRetries     int           `env:"ALERT_MAX_RETRIES" envDefault:"3"`
	AlertBaseDelay      time.Duration `env:"ALERT_BASE_DELAY" envDefault:"1s"`
	AlertMinRisk        int           `env:"ALERT_MIN_RISK" envDefault:"75"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		DatabaseMaxConns:    getEnvAsInt("DB_MAX_CONNS", 10),
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "json"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		RainfallAPIURL:      getEnv("RAINFALL_API_URL", "https://api.open-meteo.com/v1"),
		RainfallOriginLat:   getEnvAsFloat("RAINFALL_ORIGIN_LAT", -13.9626),
		RainfallOriginLng:   getEnvAsFloat("RAINFALL_ORIGIN_LNG", 33.75),
		RainfallGridStep:    getEnvAsFloat("RAINFALL_GRID_STEP", 0.7),
		RainfallCacheTTL:    getEnvAsDuration("RAINFALL_CACHE_TTL", 15*time.Minute),
		RainfallRateLimit:   getEnvAsFloat("RAINFALL_RATE_LIMIT", 1),
		RegionMinLat:        getEnvAsFloat("REGION_MIN_LAT", -16.0),
		RegionMaxLat:        getEnvAsFloat("REGION_MAX_LAT", -9.25),
		RegionMinLng:        getEnvAsFloat("REGION_MIN_LNG", 32.67),
		RegionMaxLng:        getEnvAsFloat("REGION_MAX_LNG", 35.92),
		ScanBatchLimit:      getEnvAsInt("SCAN_BATCH_LIMIT", 80),
		ScanCandidateLimit:  getEnvAsInt("SCAN_CANDIDATE_LIMIT", 200),
		EnrichConcurrency:   getEnvAsInt("ENRICH_CONCURRENCY", 8),
		LookupTimeout:       getEnvAsDuration("LOOKUP_TIMEOUT", 3*time.Second),
		SearchLimit:         getEnvAsInt("SEARCH_LIMIT", 50),
		TopAreasLimit:       getEnvAsInt("TOP_AREAS_LIMIT", 5),
		LayerFeatureLimit:   getEnvAsInt("LAYER_FEATURE_LIMIT", 2000),
		AlertWebhookURL:     os.Getenv("ALERT_WEBHOOK_URL"),
		AlertWebhookSecret:  os.Getenv("ALERT_WEBHOOK_SECRET"),
		AlertWebhookTimeout: getEnvAsDuration("ALERT_WEBHOOK_TIMEOUT", 5*time.Second),
		AlertMaxRetries:     getEnvAsInt("ALERT_MAX_RETRIES", 3),
		AlertBaseDelay:      getEnvAsDuration("ALERT_BASE_DELAY", time.Second),
		AlertMinRisk:        getEnvAsInt("ALERT_MIN_RISK", 75),
	}

	cfg.normalize()

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.RegionMinLat >= cfg.RegionMaxLat || cfg.RegionMinLng >= cfg.RegionMaxLng {
		return nil, fmt.Errorf("region bounds are empty: lat [%v, %v], lng [%v, %v]",
			cfg.RegionMinLat, cfg.RegionMaxLat, cfg.RegionMinLng, cfg.RegionMaxLng)
	}
	if cfg.RainfallGridStep <= 0 {
		return nil, fmt.Errorf("RAINFALL_GRID_STEP must be positive, got %v", cfg.RainfallGridStep)
	}

	return cfg, nil
}

// normalize приводит лимиты к допустимым диапазонам
func (c *Config) normalize() {
	c.ScanBatchLimit = clampInt(c.ScanBatchLimit, 1, MaxScanBatchLimit)
	if c.ScanCandidateLimit < c.ScanBatchLimit {
		c.ScanCandidateLimit = c.ScanBatchLimit
	}
	c.SearchLimit = clampInt(c.SearchLimit, 1, MaxSearchLimit)
	if c.TopAreasLimit < 1 {
		c.TopAreasLimit = 5
	}
	if c.EnrichConcurrency < 1 {
		c.EnrichConcurrency = 1
	}
	if c.LayerFeatureLimit < 1 {
		c.LayerFeatureLimit = 2000
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
