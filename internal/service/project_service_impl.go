package service

import (
	"context"
	"strconv"
	"sync"

	"github.com/bagdasarian/devteam-dashboard/internal/domain"
	"github.com/bagdasarian/devteam-dashboard/internal/view"
	"go.uber.org/zap"
)

type projectService struct {
	mutator
}

// NewProjectService создает новый экземпляр ProjectService
func NewProjectService(store StateStore, writeMu *sync.Mutex, logger *zap.Logger) ProjectService {
	return &projectService{mutator{store: store, writeMu: writeMu, logger: logger}}
}

// SaveProject создает или обновляет проект. Статус может быть произвольной строкой.
func (s *projectService) SaveProject(ctx context.Context, id *int, in domain.ProjectInput) (*view.Page, error) {
	op := opFor(id)
	if missing := domain.MissingRequired(id == nil, domain.RequiredField{Name: "name", Value: in.Name}); len(missing) > 0 {
		return s.reject(domain.CollectionProjects, op, domain.NewValidationError(missing...))
	}

	return s.commit(ctx, domain.CollectionProjects, op, domain.ViewProjects, func(state *domain.State) error {
		if id == nil {
			state.Projects = append(state.Projects, domain.Project{
				ID:          domain.NextID(state.Projects, func(p domain.Project) int { return p.ID }),
				Name:        valueOr(in.Name, ""),
				Description: valueOr(in.Description, ""),
				Status:      valueOr(in.Status, domain.ProjectStatusActive),
				Deadline:    valueOr(in.Deadline, ""),
			})
			return nil
		}

		project, ok := state.FindProject(*id)
		if !ok {
			return domain.NewNotFoundError("project with id " + strconv.Itoa(*id))
		}
		set(&project.Name, in.Name)
		set(&project.Description, in.Description)
		set(&project.Status, in.Status)
		set(&project.Deadline, in.Deadline)
		return nil
	})
}
