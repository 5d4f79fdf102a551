package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shenikar/flood_risk_system/internal/alert"
	"github.com/shenikar/flood_risk_system/internal/config"
	"github.com/shenikar/flood_risk_system/internal/metrics"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/shenikar/flood_risk_system/internal/rainfall"
	"github.com/shenikar/flood_risk_system/internal/repository"
	"github.com/shenikar/flood_risk_system/internal/service"
	"github.com/shenikar/flood_risk_system/pkg/postgres"
	redisclient "github.com/shenikar/flood_risk_system/pkg/redis"
	"github.com/sirupsen/logrus"
)

// App - собранные зависимости сервиса оценки риска
type App struct {
	Service  service.RiskService
	Recorder *metrics.Recorder
	Worker   *alert.Worker

	db    *pgxpool.Pool
	redis *goredis.Client
}

// New подключается к PostgreSQL и Redis и собирает сервис.
// Воркер оповещений создается только при заданном ALERT_WEBHOOK_URL и не запускается.
func New(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*App, error) {
	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL, int32(cfg.DatabaseMaxConns))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Info("Successfully connected to Redis")

	// Источник осадков: Open-Meteo за кэшем в Redis
	source := rainfall.NewCachedSource(
		rainfall.NewOpenMeteoClient(cfg.RainfallAPIURL, 0, cfg.RainfallRateLimit),
		redisclient.NewCache(redisClient),
		cfg.RainfallCacheTTL,
		log,
	)
	sampler := rainfall.NewSampler(
		source,
		models.Location{Lat: cfg.RainfallOriginLat, Lng: cfg.RainfallOriginLng},
		models.BBox{
			MinLat: cfg.RegionMinLat,
			MinLng: cfg.RegionMinLng,
			MaxLat: cfg.RegionMaxLat,
			MaxLng: cfg.RegionMaxLng,
		},
		cfg.RainfallGridStep,
	)

	a := &App{
		Recorder: metrics.NewRecorder(),
		db:       dbpool,
		redis:    redisClient,
	}

	var publisher alert.Publisher
	if cfg.AlertWebhookURL != "" {
		publisher = alert.NewRedisPublisher(redisClient)
		a.Worker = alert.NewWorker(redisClient, log, alert.WorkerConfig{
			URL:        cfg.AlertWebhookURL,
			Secret:     cfg.AlertWebhookSecret,
			Timeout:    cfg.AlertWebhookTimeout,
			MaxRetries: cfg.AlertMaxRetries,
			BaseDelay:  cfg.AlertBaseDelay,
		})
	} else {
		log.Warn("ALERT_WEBHOOK_URL is not set, alerts are disabled")
	}

	repo := repository.NewSpatialRepository(dbpool)
	a.Service = service.NewRiskService(repo, sampler, publisher, a.Recorder, cfg, log)

	return a, nil
}

// Close освобождает соединения
func (a *App) Close() {
	if err := a.redis.Close(); err != nil {
		logrus.WithError(err).Warn("Failed to close Redis client")
	}
	a.db.Close()
}
