package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(url, secret string, retries int) *Worker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	w := NewWorker(nil, logger, WorkerConfig{
		URL:        url,
		Secret:     secret,
		Timeout:    time.Second,
		MaxRetries: retries,
		BaseDelay:  time.Millisecond,
	})
	w.sleep = func(context.Context, time.Duration) {}
	return w
}

func testEvent() models.AlertEvent {
	return models.AlertEvent{
		ID:        uuid.New(),
		Level:     "high",
		Area:      "Nsanje",
		District:  "Nsanje",
		Risk:      92,
		Message:   "High risk: move to higher ground and follow local authority orders",
		Location:  models.Location{Lat: -16.9, Lng: 35.26},
		Timestamp: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestDeliver_SignsPayload(t *testing.T) {
	event := testEvent()
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var gotSignature string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get(SignatureHeader)
		gotBody, _ = io.ReadAll(r.Body)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	ok := newTestWorker(srv.URL, "s3cret", 3).Deliver(context.Background(), event, string(payload))

	require.True(t, ok)
	assert.Equal(t, string(payload), string(gotBody))
	assert.Equal(t, Sign(string(payload), "s3cret"), gotSignature)
}

func TestDeliver_NoSecretNoSignature(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(SignatureHeader))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	assert.True(t, newTestWorker(srv.URL, "", 1).Deliver(context.Background(), testEvent(), "{}"))
}

func TestDeliver_RetriesUntilSuccess(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ok := newTestWorker(srv.URL, "", 5).Deliver(context.Background(), testEvent(), "{}")

	assert.True(t, ok)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDeliver_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ok := newTestWorker(srv.URL, "", 3).Deliver(context.Background(), testEvent(), "{}")

	assert.False(t, ok)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDeliver_NoURL(t *testing.T) {
	assert.False(t, newTestWorker("", "", 3).Deliver(context.Background(), testEvent(), "{}"))
}

func TestSign_Deterministic(t *testing.T) {
	assert.Equal(t, Sign("payload", "key"), Sign("payload", "key"))
	assert.NotEqual(t, Sign("payload", "key"), Sign("payload", "other"))
	assert.Len(t, Sign("payload", "key"), 64)
}

type fakeQueue struct {
	redis.Cmdable
	key    string
	values []interface{}
}

func (f *fakeQueue) LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd {
	f.key = key
	f.values = append(f.values, values...)
	return redis.NewIntResult(int64(len(f.values)), nil)
}

func TestRedisPublisher_Publish(t *testing.T) {
	q := &fakeQueue{}
	event := testEvent()

	err := NewRedisPublisher(q).Publish(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, QueueKey, q.key)
	require.Len(t, q.values, 1)

	var decoded models.AlertEvent
	require.NoError(t, json.Unmarshal(q.values[0].([]byte), &decoded))
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, 92, decoded.Risk)
}
