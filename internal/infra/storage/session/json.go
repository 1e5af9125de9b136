package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// PutJSON сериализует значение в JSON и сохраняет под ключом
func PutJSON(ctx context.Context, store Store, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return store.Set(ctx, key, data, ttl)
}

// GetJSON читает значение и декодирует его в dst
func GetJSON(ctx context.Context, store Store, key string, dst interface{}) error {
	data, err := store.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: key=%s: %v", ErrDecode, key, err)
	}
	return nil
}

// TakeJSON читает, удаляет и декодирует значение
func TakeJSON(ctx context.Context, store Store, key string, dst interface{}) error {
	data, err := store.Take(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: key=%s: %v", ErrDecode, key, err)
	}
	return nil
}
