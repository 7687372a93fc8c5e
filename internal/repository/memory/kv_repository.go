package memory

import (
	"context"
	"sync"
)

// KVRepository хранит значения в памяти процесса; состояние теряется при перезапуске
type KVRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewKVRepository() *KVRepository {
	return &KVRepository{values: make(map[string]string)}
}

func (r *KVRepository) Get(_ context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, found := r.values[key]
	return value, found, nil
}

func (r *KVRepository) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}
