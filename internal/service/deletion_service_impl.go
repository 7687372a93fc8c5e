package service

import (
	"context"
	"sync"
	"time"

	"github.com/bagdasarian/devteam-dashboard/internal/domain"
	"github.com/bagdasarian/devteam-dashboard/internal/metrics"
	"github.com/bagdasarian/devteam-dashboard/internal/view"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type deletionService struct {
	mutator
	ttl time.Duration
	now func() time.Time

	pendingMu sync.Mutex
	pending   map[string]PendingDeletion
}

// NewDeletionService создает новый экземпляр DeletionService
func NewDeletionService(store StateStore, writeMu *sync.Mutex, ttl time.Duration, logger *zap.Logger) DeletionService {
	return &deletionService{
		mutator: mutator{store: store, writeMu: writeMu, logger: logger},
		ttl:     ttl,
		now:     time.Now,
		pending: make(map[string]PendingDeletion),
	}
}

func (s *deletionService) RequestDelete(_ context.Context, c domain.Collection, id int, active domain.View) (*PendingDeletion, error) {
	c, err := domain.ParseCollection(string(c))
	if err != nil {
		return nil, err
	}

	now := s.now()
	p := PendingDeletion{
		Token:      uuid.NewString(),
		Collection: c,
		ID:         id,
		ActiveView: domain.ParseView(string(active)),
		Prompt:     DeletePrompt,
		ExpiresAt:  now.Add(s.ttl),
	}

	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()
	for token, old := range s.pending {
		if !now.Before(old.ExpiresAt) {
			delete(s.pending, token)
		}
	}
	s.pending[p.Token] = p

	return &p, nil
}

func (s *deletionService) CompleteDelete(ctx context.Context, token string, confirmed bool) (*view.Page, error) {
	s.pendingMu.Lock()
	p, ok := s.pending[token]
	delete(s.pending, token)
	s.pendingMu.Unlock()

	if !ok || !s.now().Before(p.ExpiresAt) {
		return nil, domain.NewNotFoundError("pending deletion " + token)
	}

	if !confirmed {
		return s.decline(p.Collection, p.ActiveView), nil
	}
	return s.commit(ctx, p.Collection, opDelete, p.ActiveView, removeFn(p.Collection, p.ID))
}

func (s *deletionService) Delete(ctx context.Context, c domain.Collection, id int, active domain.View, confirmer Confirmer) (*view.Page, error) {
	c, err := domain.ParseCollection(string(c))
	if err != nil {
		return nil, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	confirmed, err := confirmer.Confirm(ctx, DeletePrompt)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return s.decline(c, active), nil
	}
	return s.commitLocked(ctx, c, opDelete, active, removeFn(c, id))
}

func (s *deletionService) decline(c domain.Collection, active domain.View) *view.Page {
	metrics.MutationsTotal.WithLabelValues(string(c), opDelete, metrics.OutcomeDeclined).Inc()
	return view.Render(active, s.store.Snapshot())
}

// removeFn не трогает задачи, ссылающиеся на удаляемую запись
func removeFn(c domain.Collection, id int) func(state *domain.State) error {
	return func(state *domain.State) error {
		_, err := state.Remove(c, id)
		return err
	}
}
