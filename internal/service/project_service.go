package service

import (
	"context"

	"github.com/bagdasarian/devteam-dashboard/internal/domain"
	"github.com/bagdasarian/devteam-dashboard/internal/view"
)

type ProjectService interface {
	SaveProject(ctx context.Context, id *int, in domain.ProjectInput) (*view.Page, error)
}
