package rainfall

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	reading models.RainfallReading
	err     error
	calls   int
}

func (s *stubSource) Current(_ context.Context, lat, lng float64) (models.RainfallReading, error) {
	s.calls++
	if s.err != nil {
		return models.RainfallReading{}, s.err
	}
	r := s.reading
	r.Location = models.Location{Lat: lat, Lng: lng}
	return r, nil
}

type memCache struct {
	mu     sync.Mutex
	items  map[string][]byte
	getErr error
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.items[key]
	return v, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	return nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(&bytes.Buffer{})
	return l
}

func TestSampler_Field(t *testing.T) {
	src := &stubSource{reading: models.RainfallReading{Intensity: 4}}
	s := NewSampler(src, models.Location{Lat: -13.9626, Lng: 33.75}, malawi, 0.7).
		WithRand(func() *rand.Rand { return testRand() })

	field, err := s.Field(context.Background())
	require.NoError(t, err)
	assert.Len(t, field.Points, 50)
	assert.Equal(t, -13.9626, field.Origin.Lat)
}

func TestSampler_SourceFailure(t *testing.T) {
	src := &stubSource{err: errors.New("upstream down")}
	s := NewSampler(src, models.Location{}, malawi, 0.7)

	_, err := s.Field(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream down")
}

func TestCachedSource_HitsCacheOnSecondCall(t *testing.T) {
	src := &stubSource{reading: models.RainfallReading{Intensity: 1.5, Time: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}}
	cache := &memCache{items: map[string][]byte{}}
	cs := NewCachedSource(src, cache, time.Minute, quietLogger())

	first, err := cs.Current(context.Background(), -13.9626, 33.75)
	require.NoError(t, err)
	second, err := cs.Current(context.Background(), -13.9626, 33.75)
	require.NoError(t, err)

	assert.Equal(t, 1, src.calls)
	assert.Equal(t, first.Intensity, second.Intensity)
	assert.True(t, first.Time.Equal(second.Time))
	assert.Contains(t, cache.items, "rainfall:-13.9626:33.7500")
}

func TestCachedSource_CacheErrorFallsThrough(t *testing.T) {
	src := &stubSource{reading: models.RainfallReading{Intensity: 2}}
	cache := &memCache{items: map[string][]byte{}, getErr: errors.New("redis down")}
	cs := NewCachedSource(src, cache, time.Minute, quietLogger())

	reading, err := cs.Current(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, reading.Intensity)
	assert.Equal(t, 1, src.calls)
}

func TestCachedSource_MalformedEntryRefetched(t *testing.T) {
	src := &stubSource{reading: models.RainfallReading{Intensity: 3}}
	cache := &memCache{items: map[string][]byte{cacheKey(1, 2): []byte("{not json")}}
	cs := NewCachedSource(src, cache, time.Minute, quietLogger())

	reading, err := cs.Current(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, reading.Intensity)
	assert.Equal(t, 1, src.calls)
}
