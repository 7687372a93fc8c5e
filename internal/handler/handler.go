package handler

import (
	"github.com/bagdasarian/devteam-dashboard/internal/domain"
	"github.com/bagdasarian/devteam-dashboard/internal/service"
	"go.uber.org/zap"
)

// StateReader - чтение состояния для отрисовки представлений
type StateReader interface {
	Snapshot() *domain.State
	GetAll(c domain.Collection) (any, error)
}

type Handler struct {
	state           StateReader
	memberService   service.MemberService
	projectService  service.ProjectService
	taskService     service.TaskService
	deletionService service.DeletionService
	logger          *zap.Logger
}

func NewHandler(
	state StateReader,
	memberService service.MemberService,
	projectService service.ProjectService,
	taskService service.TaskService,
	deletionService service.DeletionService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		state:           state,
		memberService:   memberService,
		projectService:  projectService,
		taskService:     taskService,
		deletionService: deletionService,
		logger:          logger,
	}
}
