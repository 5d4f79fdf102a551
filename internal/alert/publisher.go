package alert

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/flood_risk_system/internal/models"
)

const (
	// QueueKey - список Redis, через который оповещения уходят воркеру
	QueueKey = "flood_alerts"
)

//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks

// Publisher - интерфейс для публикации оповещений
type Publisher interface {
	Publish(ctx context.Context, event models.AlertEvent) error
}

// RedisPublisher - реализация Publisher, использующая Redis
type RedisPublisher struct {
	redisClient redis.Cmdable
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client redis.Cmdable) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует оповещение в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event models.AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// LPUSH в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, QueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
