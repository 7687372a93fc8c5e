package service

import (
	"context"
	"errors"
	"sync"

	"github.com/bagdasarian/devteam-dashboard/internal/domain"
	"github.com/bagdasarian/devteam-dashboard/internal/metrics"
	"github.com/bagdasarian/devteam-dashboard/internal/notify"
	"github.com/bagdasarian/devteam-dashboard/internal/view"
	"go.uber.org/zap"
)

// StateStore - операции хранилища, которые нужны сервисам
type StateStore interface {
	Snapshot() *domain.State
	Mutate(fn func(state *domain.State) error) error
	Save(ctx context.Context) error
}

const (
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// mutator выполняет изменение, сохранение и перерисовку.
// writeMu общий для всех сервисов: изменения не пересекаются.
type mutator struct {
	store   StateStore
	writeMu *sync.Mutex
	logger  *zap.Logger
}

func (m *mutator) commit(ctx context.Context, c domain.Collection, op string, target domain.View, fn func(state *domain.State) error) (*view.Page, error) {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	return m.commitLocked(ctx, c, op, target, fn)
}

func (m *mutator) commitLocked(ctx context.Context, c domain.Collection, op string, target domain.View, fn func(state *domain.State) error) (*view.Page, error) {
	if err := m.store.Mutate(fn); err != nil {
		m.observe(c, op, err)
		return nil, err
	}

	if err := m.store.Save(ctx); err != nil {
		m.observe(c, op, err)
		return nil, err
	}
	m.observe(c, op, nil)

	page := view.Render(target, m.store.Snapshot())
	page.Notice = notify.SavedMessage
	return page, nil
}

func (m *mutator) observe(c domain.Collection, op string, err error) {
	outcome := metrics.OutcomeOK
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrValidation):
		outcome = metrics.OutcomeInvalid
	case errors.Is(err, domain.ErrNotFound):
		outcome = metrics.OutcomeNotFound
	default:
		outcome = metrics.OutcomeError
	}
	metrics.MutationsTotal.WithLabelValues(string(c), op, outcome).Inc()

	if err != nil {
		m.logger.Debug("mutation rejected",
			zap.String("collection", string(c)), zap.String("op", op), zap.Error(err))
		return
	}
	m.logger.Debug("mutation applied", zap.String("collection", string(c)), zap.String("op", op))
}

func (m *mutator) reject(c domain.Collection, op string, err error) (*view.Page, error) {
	m.observe(c, op, err)
	return nil, err
}

func opFor(id *int) string {
	if id == nil {
		return opCreate
	}
	return opUpdate
}

// set перезаписывает поле, только если значение передано
func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func valueOr[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}
