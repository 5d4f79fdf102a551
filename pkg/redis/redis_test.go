package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCmdable struct {
	redis.Cmdable
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
}

func (f *fakeCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeCmdable) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.data[key] = string(value.([]byte))
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func newFake() *fakeCmdable {
	return &fakeCmdable{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func TestCache_SetThenGet(t *testing.T) {
	fake := newFake()
	c := NewCache(fake)

	require.NoError(t, c.Set(context.Background(), "k", []byte("v"), time.Minute))
	assert.Equal(t, time.Minute, fake.ttls["k"])

	val, ok, err := c.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), val)
}

func TestCache_Miss(t *testing.T) {
	val, ok, err := NewCache(newFake()).Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestCache_Error(t *testing.T) {
	fake := newFake()
	fake.getErr = errors.New("connection refused")

	_, ok, err := NewCache(fake).Get(context.Background(), "k")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "connection refused")
}
