package domain

import "slices"

// State - все записи дашборда; сериализуется целиком под одним ключом
type State struct {
	Teams    []TeamMember `json:"teams"`
	Projects []Project    `json:"projects"`
	Tasks    []Task       `json:"tasks"`
}

// Clone возвращает независимую копию состояния
func (s *State) Clone() *State {
	return &State{
		Teams:    cloneOrEmpty(s.Teams),
		Projects: cloneOrEmpty(s.Projects),
		Tasks:    cloneOrEmpty(s.Tasks),
	}
}

func cloneOrEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return slices.Clone(items)
}

// FindMember ищет участника по id
func (s *State) FindMember(id int) (*TeamMember, bool) {
	i := slices.IndexFunc(s.Teams, func(m TeamMember) bool { return m.ID == id })
	if i < 0 {
		return nil, false
	}
	return &s.Teams[i], true
}

// FindProject ищет проект по id
func (s *State) FindProject(id int) (*Project, bool) {
	i := slices.IndexFunc(s.Projects, func(p Project) bool { return p.ID == id })
	if i < 0 {
		return nil, false
	}
	return &s.Projects[i], true
}

// FindTask ищет задачу по id
func (s *State) FindTask(id int) (*Task, bool) {
	i := slices.IndexFunc(s.Tasks, func(t Task) bool { return t.ID == id })
	if i < 0 {
		return nil, false
	}
	return &s.Tasks[i], true
}

// Remove удаляет запись с указанным id из коллекции. Отсутствие записи не ошибка.
func (s *State) Remove(c Collection, id int) (bool, error) {
	switch c {
	case CollectionTeams:
		return removeByID(&s.Teams, id, func(m TeamMember) int { return m.ID }), nil
	case CollectionProjects:
		return removeByID(&s.Projects, id, func(p Project) int { return p.ID }), nil
	case CollectionTasks:
		return removeByID(&s.Tasks, id, func(t Task) int { return t.ID }), nil
	default:
		return false, NewBadRequestError("unknown collection " + string(c))
	}
}

func removeByID[T any](items *[]T, id int, idOf func(T) int) bool {
	before := len(*items)
	*items = slices.DeleteFunc(*items, func(item T) bool { return idOf(item) == id })
	return len(*items) != before
}

// NextID возвращает max(id) + 1, для пустой коллекции 1
func NextID[T any](items []T, idOf func(T) int) int {
	maxID := 0
	for _, item := range items {
		maxID = max(maxID, idOf(item))
	}
	return maxID + 1
}

// Len возвращает размер коллекции
func (s *State) Len(c Collection) int {
	switch c {
	case CollectionTeams:
		return len(s.Teams)
	case CollectionProjects:
		return len(s.Projects)
	case CollectionTasks:
		return len(s.Tasks)
	}
	return 0
}

// DefaultState возвращает начальный набор данных
func DefaultState() *State {
	return &State{
		Teams: []TeamMember{
			{ID: 1, Name: "Sarah Connor", Role: "Frontend Lead", Email: "sarah@devteam.io", Avatar: "SC"},
			{ID: 2, Name: "John Reese", Role: "Backend Engineer", Email: "john@devteam.io", Avatar: "JR"},
			{ID: 3, Name: "Harold Finch", Role: "Product Manager", Email: "harold@devteam.io", Avatar: "HF"},
			{ID: 4, Name: "Sameen Shaw", Role: "DevOps Engineer", Email: "shaw@devteam.io", Avatar: "SS"},
		},
		Projects: []Project{
			{ID: 1, Name: "Website Redesign", Description: "Overhaul of the corporate website.", Status: ProjectStatusActive, Deadline: "2023-12-31"},
			{ID: 2, Name: "Mobile App Beta", Description: "First release of the iOS app.", Status: ProjectStatusInProgress, Deadline: "2023-11-15"},
			{ID: 3, Name: "API Migration", Description: "Migrate legacy API to GraphQL.", Status: ProjectStatusPlanning, Deadline: "2024-02-20"},
		},
		Tasks: []Task{
			{ID: 1, ProjectID: 1, Title: "Design Homepage Mockups", AssigneeID: 1, Status: TaskStatusCompleted, Priority: PriorityHigh},
			{ID: 2, ProjectID: 1, Title: "Implement Responsive Nav", AssigneeID: 1, Status: TaskStatusInProgress, Priority: PriorityMedium},
			{ID: 3, ProjectID: 2, Title: "Setup CI/CD Pipeline", AssigneeID: 4, Status: TaskStatusToDo, Priority: PriorityHigh},
			{ID: 4, ProjectID: 3, Title: "Database Schema Design", AssigneeID: 2, Status: TaskStatusInProgress, Priority: PriorityHigh},
		},
	}
}
