package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/bagdasarian/devteam-dashboard/internal/domain"
	"github.com/bagdasarian/devteam-dashboard/internal/metrics"
	"github.com/bagdasarian/devteam-dashboard/internal/notify"
	"github.com/bagdasarian/devteam-dashboard/internal/repository"
	"go.uber.org/zap"
)

// Store - единственный владелец записей дашборда.
// Состояние читается и сохраняется целиком под одним ключом.
type Store struct {
	mu       sync.RWMutex
	state    *domain.State
	kv       repository.KVStore
	key      string
	notifier notify.Notifier
	logger   *zap.Logger
}

func New(kv repository.KVStore, key string, notifier notify.Notifier, logger *zap.Logger) *Store {
	return &Store{
		state:    domain.DefaultState(),
		kv:       kv,
		key:      key,
		notifier: notifier,
		logger:   logger,
	}
}

// Load читает сохраненное состояние. Отсутствующее или поврежденное значение
// заменяется начальным набором данных, ошибка чтения хранилища возвращается.
func (s *Store) Load(ctx context.Context) error {
	raw, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return domain.NewPersistenceError("read", err)
	}

	state := domain.DefaultState()
	if found {
		if decoded, err := decode(raw); err != nil {
			s.logger.Warn("persisted state is malformed, using default dataset",
				zap.String("key", s.key), zap.Error(err))
		} else {
			state = decoded
		}
	} else {
		s.logger.Info("no persisted state, using default dataset", zap.String("key", s.key))
	}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	s.observeRecords(state)
	return nil
}

func decode(raw string) (*domain.State, error) {
	var state *domain.State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, err
	}
	if state == nil {
		return nil, errNullState
	}
	return state.Clone(), nil
}

var errNullState = errors.New("state is null")

// Save сериализует состояние целиком и записывает его в хранилище.
// Откат изменений в памяти при ошибке записи не выполняется.
func (s *Store) Save(ctx context.Context) error {
	s.mu.RLock()
	data, err := json.Marshal(s.state)
	snapshot := s.state.Clone()
	s.mu.RUnlock()
	if err != nil {
		return domain.NewPersistenceError("encode", err)
	}

	start := time.Now()
	err = s.kv.Set(ctx, s.key, string(data))
	metrics.PersistDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.PersistFailuresTotal.Inc()
		s.logger.Error("failed to persist state", zap.String("key", s.key), zap.Error(err))
		return domain.NewPersistenceError("write", err)
	}

	s.observeRecords(snapshot)
	s.notifier.Notify(ctx, notify.SavedMessage)
	return nil
}

// GetAll возвращает копию коллекции в порядке хранения
func (s *Store) GetAll(c domain.Collection) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := s.state.Clone()
	switch c {
	case domain.CollectionTeams:
		return state.Teams, nil
	case domain.CollectionProjects:
		return state.Projects, nil
	case domain.CollectionTasks:
		return state.Tasks, nil
	}
	return nil, domain.NewBadRequestError("unknown collection " + string(c))
}

// Snapshot возвращает независимую копию всего состояния
func (s *Store) Snapshot() *domain.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Mutate применяет fn к копии состояния и фиксирует ее, только если fn не вернула ошибку
func (s *Store) Mutate(fn func(state *domain.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.state.Clone()
	if err := fn(draft); err != nil {
		return err
	}
	s.state = draft
	return nil
}

func (s *Store) observeRecords(state *domain.State) {
	for _, c := range []domain.Collection{domain.CollectionTeams, domain.CollectionProjects, domain.CollectionTasks} {
		metrics.Records.WithLabelValues(string(c)).Set(float64(state.Len(c)))
	}
}
