package service

import (
	"context"
	"strconv"
	"sync"

	"github.com/bagdasarian/devteam-dashboard/internal/domain"
	"github.com/bagdasarian/devteam-dashboard/internal/view"
	"go.uber.org/zap"
)

type taskService struct {
	mutator
}

// NewTaskService создает новый экземпляр TaskService
func NewTaskService(store StateStore, writeMu *sync.Mutex, logger *zap.Logger) TaskService {
	return &taskService{mutator{store: store, writeMu: writeMu, logger: logger}}
}

// SaveTask создает или обновляет задачу.
// Ссылки на проект и исполнителя не проверяются: отсутствующая запись отображается заглушкой.
func (s *taskService) SaveTask(ctx context.Context, id *int, in domain.TaskInput) (*view.Page, error) {
	op := opFor(id)
	if missing := domain.MissingRequired(id == nil, domain.RequiredField{Name: "title", Value: in.Title}); len(missing) > 0 {
		return s.reject(domain.CollectionTasks, op, domain.NewValidationError(missing...))
	}

	return s.commit(ctx, domain.CollectionTasks, op, domain.ViewTasks, func(state *domain.State) error {
		if id == nil {
			state.Tasks = append(state.Tasks, domain.Task{
				ID:         domain.NextID(state.Tasks, func(t domain.Task) int { return t.ID }),
				ProjectID:  valueOr(in.ProjectID, 0),
				Title:      valueOr(in.Title, ""),
				AssigneeID: valueOr(in.AssigneeID, 0),
				Priority:   valueOr(in.Priority, domain.PriorityHigh),
				Status:     valueOr(in.Status, domain.TaskStatusToDo),
			})
			return nil
		}

		task, ok := state.FindTask(*id)
		if !ok {
			return domain.NewNotFoundError("task with id " + strconv.Itoa(*id))
		}
		set(&task.Title, in.Title)
		set(&task.ProjectID, in.ProjectID)
		set(&task.AssigneeID, in.AssigneeID)
		set(&task.Priority, in.Priority)
		set(&task.Status, in.Status)
		return nil
	})
}
