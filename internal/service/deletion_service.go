package service

import (
	"context"
	"time"

	"github.com/bagdasarian/devteam-dashboard/internal/domain"
	"github.com/bagdasarian/devteam-dashboard/internal/view"
)

// DeletePrompt - вопрос, который показывается перед удалением
const DeletePrompt = "Are you sure you want to delete this item?"

// Confirmer запрашивает у пользователя подтверждение да/нет
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// PendingDeletion - удаление, ожидающее решения пользователя
type PendingDeletion struct {
	Token      string
	Collection domain.Collection
	ID         int
	ActiveView domain.View
	Prompt     string
	ExpiresAt  time.Time
}

type DeletionService interface {
	// RequestDelete регистрирует удаление и возвращает токен; состояние не меняется
	RequestDelete(ctx context.Context, c domain.Collection, id int, active domain.View) (*PendingDeletion, error)
	// CompleteDelete применяет решение пользователя по токену. Токен одноразовый.
	CompleteDelete(ctx context.Context, token string, confirmed bool) (*view.Page, error)
	// Delete - синхронный вариант: ждет решения confirmer, не допуская других изменений
	Delete(ctx context.Context, c domain.Collection, id int, active domain.View, confirmer Confirmer) (*view.Page, error)
}
