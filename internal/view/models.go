package view

import "github.com/bagdasarian/devteam-dashboard/internal/domain"

// StatusCategory - отображаемая категория статуса, не зависит от сохраненной строки
type StatusCategory string

const (
	CategoryCompleted StatusCategory = "completed"
	CategoryActive    StatusCategory = "active"
	CategoryPending   StatusCategory = "pending"
)

const (
	UnknownProject = "Unknown"
	Unassigned     = "Unassigned"
)

// Page - результат отрисовки навигационного представления.
// Заполнено ровно одно из полей Dashboard, Projects, Tasks, Team.
type Page struct {
	View          domain.View    `json:"view"`
	Title         string         `json:"title"`
	ShowAddButton bool           `json:"showAddButton"`
	Notice        string         `json:"notice,omitempty"`
	Dashboard     *DashboardView `json:"dashboard,omitempty"`
	Projects      []ProjectCard  `json:"projects,omitempty"`
	Tasks         []TaskRow      `json:"tasks,omitempty"`
	Team          []MemberCard   `json:"team,omitempty"`
}

type DashboardView struct {
	Stats       Stats        `json:"stats"`
	RecentTasks []RecentTask `json:"recentTasks"`
}

type Stats struct {
	TotalProjects int `json:"totalProjects"`
	PendingTasks  int `json:"pendingTasks"`
	TeamSize      int `json:"teamSize"`
}

type RecentTask struct {
	ID       int            `json:"id"`
	Title    string         `json:"title"`
	Project  string         `json:"project"`
	Assignee string         `json:"assignee"`
	Status   string         `json:"status"`
	Category StatusCategory `json:"category"`
}

type ProjectCard struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	Status         string         `json:"status"`
	Category       StatusCategory `json:"category"`
	Description    string         `json:"description"`
	Deadline       string         `json:"deadline,omitempty"`
	TaskCount      int            `json:"taskCount"`
	CompletedCount int            `json:"completedCount"`
	Progress       int            `json:"progress"`
}

type TaskRow struct {
	ID            int            `json:"id"`
	Title         string         `json:"title"`
	ProjectID     int            `json:"projectId"`
	Project       string         `json:"project"`
	Priority      string         `json:"priority"`
	PriorityColor Color          `json:"priorityColor"`
	AssigneeID    int            `json:"assigneeId"`
	Assignee      string         `json:"assignee"`
	Status        string         `json:"status"`
	Category      StatusCategory `json:"category"`
}

type MemberCard struct {
	ID     int    `json:"id"`
	Avatar string `json:"avatar"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Email  string `json:"email"`
}

type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// FormView - модель формы создания или редактирования записи
type FormView struct {
	Collection domain.Collection `json:"collection"`
	ID         *int              `json:"id,omitempty"`
	Title      string            `json:"title"`
	Fields     []FormField       `json:"fields"`
}

type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldEmail    FieldKind = "email"
	FieldTextarea FieldKind = "textarea"
	FieldSelect   FieldKind = "select"
	FieldDate     FieldKind = "date"
)

type FormField struct {
	Name    string       `json:"name"`
	Label   string       `json:"label"`
	Kind    FieldKind    `json:"kind"`
	Value   string       `json:"value"`
	Options []FormOption `json:"options,omitempty"`
}

type FormOption struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}
