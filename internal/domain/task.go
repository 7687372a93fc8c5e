package domain

type Task struct {
	ID         int    `json:"id"`
	ProjectID  int    `json:"projectId"`
	Title      string `json:"title"`
	AssigneeID int    `json:"assigneeId"`
	Status     string `json:"status"`
	Priority   string `json:"priority"`
}

const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

const (
	TaskStatusToDo       = "To Do"
	TaskStatusInProgress = "In Progress"
	TaskStatusCompleted  = "Completed"
)

var TaskPriorities = []string{PriorityHigh, PriorityMedium, PriorityLow}

var TaskStatuses = []string{TaskStatusToDo, TaskStatusInProgress, TaskStatusCompleted}
