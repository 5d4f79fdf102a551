package rainfall

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Cache - минимальное key/value хранилище с TTL
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedSource кэширует ответы источника по координатам.
// Ошибки кэша не фатальны: запрос уходит в источник напрямую.
type CachedSource struct {
	source Source
	cache  Cache
	ttl    time.Duration
	logger *logrus.Logger
}

// NewCachedSource оборачивает источник кэшем
func NewCachedSource(source Source, cache Cache, ttl time.Duration, logger *logrus.Logger) *CachedSource {
	return &CachedSource{source: source, cache: cache, ttl: ttl, logger: logger}
}

func cacheKey(lat, lng float64) string {
	return fmt.Sprintf("rainfall:%.4f:%.4f", lat, lng)
}

// Current возвращает прогноз из кэша или из источника
func (s *CachedSource) Current(ctx context.Context, lat, lng float64) (models.RainfallReading, error) {
	log := s.logger.WithFields(logrus.Fields{"component": "rainfall_cache", "key": cacheKey(lat, lng)})

	if raw, ok, err := s.cache.Get(ctx, cacheKey(lat, lng)); err != nil {
		log.WithError(err).Warn("Failed to read rainfall cache")
	} else if ok {
		var reading models.RainfallReading
		if err := json.Unmarshal(raw, &reading); err == nil {
			log.Debug("Rainfall cache hit")
			return reading, nil
		}
		log.Warn("Discarding malformed rainfall cache entry")
	}

	reading, err := s.source.Current(ctx, lat, lng)
	if err != nil {
		return models.RainfallReading{}, err
	}

	if payload, err := json.Marshal(reading); err == nil {
		if err := s.cache.Set(ctx, cacheKey(lat, lng), payload, s.ttl); err != nil {
			log.WithError(err).Warn("Failed to write rainfall cache")
		}
	}
	return reading, nil
}
