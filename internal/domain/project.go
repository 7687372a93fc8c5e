package domain

type Project struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Deadline    string `json:"deadline,omitempty"`
}

const (
	ProjectStatusActive     = "Active"
	ProjectStatusInProgress = "In Progress"
	ProjectStatusPlanning   = "Planning"
	ProjectStatusCompleted  = "Completed"
)

// ProjectStatuses - варианты статуса в порядке формы; статус может быть и произвольной строкой
var ProjectStatuses = []string{
	ProjectStatusActive,
	ProjectStatusInProgress,
	ProjectStatusPlanning,
	ProjectStatusCompleted,
}
