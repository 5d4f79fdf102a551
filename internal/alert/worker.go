// Package alert доставляет оповещения о высоком риске во внешний вебхук
// через очередь в Redis.
package alert

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/sirupsen/logrus"
)

// SignatureHeader - заголовок с HMAC-SHA256 подписью тела запроса
const SignatureHeader = "X-Webhook-Signature"

// WorkerConfig - параметры доставки
type WorkerConfig struct {
	URL        string
	Secret     string
	Timeout    time.Duration
	MaxRetries int
	BaseDelay  time.Duration
}

// Worker - обработчик очереди оповещений
type Worker struct {
	redisClient redis.Cmdable
	logger      *logrus.Logger
	cfg         WorkerConfig
	httpClient  *http.Client
	sleep       func(ctx context.Context, d time.Duration)
}

// NewWorker создает новый Worker
func NewWorker(redisClient redis.Cmdable, logger *logrus.Logger, cfg WorkerConfig) *Worker {
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		sleep: sleepCtx,
	}
}

// Start запускает горутину для обработки очереди оповещений
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting alert worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping alert worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка, 0 - без таймаута
				result, err := w.redisClient.BRPop(ctx, 0, QueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop alert event from Redis")
					w.sleep(ctx, w.cfg.Timeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event models.AlertEvent
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal alert event from Redis")
					continue
				}

				w.Deliver(ctx, event, payload)
			}
		}
	}()
}

// Deliver отправляет оповещение с экспоненциальной задержкой между попытками.
// Возвращает true при успешной доставке.
func (w *Worker) Deliver(ctx context.Context, event models.AlertEvent, rawPayload string) bool {
	log := w.logger.WithFields(logrus.Fields{
		"alert_id": event.ID,
		"area":     event.Area,
		"risk":     event.Risk,
	})
	log.Debug("Processing alert event...")

	if w.cfg.URL == "" {
		log.Warn("Alert webhook URL is not configured. Skipping delivery.")
		return false
	}

	delay := w.cfg.BaseDelay
	for i := 0; i < w.cfg.MaxRetries; i++ {
		left := w.cfg.MaxRetries - 1 - i

		status, err := w.post(ctx, rawPayload)
		switch {
		case err != nil:
			log.WithError(err).Warnf("Failed to send alert webhook. Retrying in %v. Retries left: %d", delay, left)
		case status >= 200 && status < 300:
			log.Info("Alert webhook delivered successfully.")
			return true
		default:
			log.Warnf("Alert webhook failed with status code %d. Retrying in %v. Retries left: %d", status, delay, left)
		}

		if left == 0 || ctx.Err() != nil {
			break
		}
		w.sleep(ctx, delay)
		delay *= 2
	}

	log.Errorf("Failed to deliver alert webhook after %d attempts.", w.cfg.MaxRetries)
	return false
}

func (w *Worker) post(ctx context.Context, rawPayload string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.URL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	// Подпись добавляется, только если задан секрет
	if w.cfg.Secret != "" {
		req.Header.Set(SignatureHeader, Sign(rawPayload, w.cfg.Secret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

// Sign генерирует HMAC-SHA256 подпись для данных
func Sign(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
