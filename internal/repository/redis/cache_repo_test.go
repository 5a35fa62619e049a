package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRedisClient подменяет только команды, которые использует IncrWindow
type MockRedisClient struct {
	redis.UniversalClient
	mock.Mock
}

func (m *MockRedisClient) Incr(ctx context.Context, key string) *redis.IntCmd {
	args := m.Called(ctx, key)
	return redis.NewIntResult(args.Get(0).(int64), args.Error(1))
}

func (m *MockRedisClient) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	args := m.Called(ctx, key, expiration)
	return redis.NewBoolResult(args.Bool(0), args.Error(1))
}

func (m *MockRedisClient) TTL(ctx context.Context, key string) *redis.DurationCmd {
	args := m.Called(ctx, key)
	return redis.NewDurationResult(args.Get(0).(time.Duration), args.Error(1))
}

func newTestCacheRepo(t *testing.T) (*CacheRepo, *MockRedisClient) {
	t.Helper()
	client := new(MockRedisClient)
	repo, err := NewCacheRepo(client)
	require.NoError(t, err)
	return repo, client
}

func TestCacheRepo_IncrWindow_FirstHitSetsTTL(t *testing.T) {
	ctx := context.Background()
	repo, client := newTestCacheRepo(t)
	client.On("Incr", ctx, "rl:key").Return(int64(1), nil).Once()
	client.On("Expire", ctx, "rl:key", time.Minute).Return(true, nil).Once()

	count, ttl, err := repo.IncrWindow(ctx, "rl:key", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, time.Minute, ttl)
	client.AssertExpectations(t)
}

func TestCacheRepo_IncrWindow_ReturnsRemainingTTL(t *testing.T) {
	ctx := context.Background()
	repo, client := newTestCacheRepo(t)
	client.On("Incr", ctx, "rl:key").Return(int64(3), nil).Once()
	client.On("TTL", ctx, "rl:key").Return(20*time.Second, nil).Once()

	count, ttl, err := repo.IncrWindow(ctx, "rl:key", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Equal(t, 20*time.Second, ttl)
	client.AssertNotCalled(t, "Expire", mock.Anything, mock.Anything, mock.Anything)
}

func TestCacheRepo_IncrWindow_RestoresMissingTTL(t *testing.T) {
	ctx := context.Background()
	repo, client := newTestCacheRepo(t)
	client.On("Incr", ctx, "rl:key").Return(int64(5), nil).Once()
	// -1: ключ существует, но без срока жизни
	client.On("TTL", ctx, "rl:key").Return(time.Duration(-1), nil).Once()
	client.On("Expire", ctx, "rl:key", time.Minute).Return(true, nil).Once()

	count, ttl, err := repo.IncrWindow(ctx, "rl:key", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
	assert.Equal(t, time.Minute, ttl)
	client.AssertExpectations(t)
}

func TestCacheRepo_IncrWindow_RestoreTTLError(t *testing.T) {
	ctx := context.Background()
	repo, client := newTestCacheRepo(t)
	client.On("Incr", ctx, "rl:key").Return(int64(5), nil).Once()
	client.On("TTL", ctx, "rl:key").Return(time.Duration(-1), nil).Once()
	client.On("Expire", ctx, "rl:key", time.Minute).Return(false, errors.New("connection reset")).Once()

	count, _, err := repo.IncrWindow(ctx, "rl:key", time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "restore TTL")
	assert.Equal(t, int64(5), count)
}

func TestCacheRepo_IncrWindow_TTLErrorFallsBackToWindow(t *testing.T) {
	ctx := context.Background()
	repo, client := newTestCacheRepo(t)
	client.On("Incr", ctx, "rl:key").Return(int64(2), nil).Once()
	client.On("TTL", ctx, "rl:key").Return(time.Duration(0), errors.New("timeout")).Once()

	count, ttl, err := repo.IncrWindow(ctx, "rl:key", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, time.Minute, ttl)
}

func TestCacheRepo_IncrWindow_IncrError(t *testing.T) {
	ctx := context.Background()
	repo, client := newTestCacheRepo(t)
	client.On("Incr", ctx, "rl:key").Return(int64(0), errors.New("down")).Once()

	_, _, err := repo.IncrWindow(ctx, "rl:key", time.Minute)
	assert.Error(t, err)
}

func TestNewCacheRepo_NilClient(t *testing.T) {
	_, err := NewCacheRepo(nil)
	assert.Error(t, err)
}
