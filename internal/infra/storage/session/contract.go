package session

import (
	"context"
	"time"
)

// Store key-value хранилище с временем жизни записей.
// Take читает и удаляет за один шаг, значение можно получить только один раз.
type Store interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Take(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Close() error
}
