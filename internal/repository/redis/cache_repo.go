package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// CacheRepo реализует repository.CacheRepository поверх Redis
type CacheRepo struct {
	client redis.UniversalClient
}

// NewCacheRepo создает новый репозиторий кеша
func NewCacheRepo(client redis.UniversalClient) (*CacheRepo, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil for CacheRepo")
	}
	return &CacheRepo{client: client}, nil
}

// SetJSON сохраняет значение в кеше в виде JSON
func (r *CacheRepo) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, expiration).Err()
}

// GetJSON читает JSON из кеша в dest. Отсутствие ключа: apperrors.ErrNotFound.
func (r *CacheRepo) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

// Delete удаляет значение из кеша
func (r *CacheRepo) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// IncrWindow увеличивает счетчик и при первом инкременте устанавливает TTL окна
func (r *CacheRepo) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, 0, err
	}

	if count == 1 {
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			return count, window, fmt.Errorf("failed to set TTL for %s: %w", key, err)
		}
		return count, window, nil
	}

	ttl, err := r.client.TTL(ctx, key).Result()
	if err != nil {
		log.Printf("[CacheRepo] Не удалось получить TTL для %s: %v", key, err)
		return count, window, nil
	}
	if ttl < 0 {
		// Ключ остался без TTL (предыдущий Expire не прошел): восстанавливаем окно
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			return count, window, fmt.Errorf("failed to restore TTL for %s: %w", key, err)
		}
		return count, window, nil
	}
	return count, ttl, nil
}

// Ping проверяет доступность Redis
func (r *CacheRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
