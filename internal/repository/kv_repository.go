package repository

import "context"

// KVStore - строковое key-value хранилище, в котором лежит сериализованное состояние
type KVStore interface {
	// Get возвращает found=false, если ключа нет
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}
