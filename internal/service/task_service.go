package service

import (
	"context"

	"github.com/bagdasarian/devteam-dashboard/internal/domain"
	"github.com/bagdasarian/devteam-dashboard/internal/view"
)

type TaskService interface {
	SaveTask(ctx context.Context, id *int, in domain.TaskInput) (*view.Page, error)
}
