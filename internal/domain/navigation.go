package domain

// Collection - имя коллекции в сохраненном состоянии
type Collection string

const (
	CollectionTeams    Collection = "teams"
	CollectionProjects Collection = "projects"
	CollectionTasks    Collection = "tasks"
)

// View - навигационный сигнал
type View string

const (
	ViewDashboard View = "dashboard"
	ViewProjects  View = "projects"
	ViewTasks     View = "tasks"
	ViewTeam      View = "team"
)

// ParseCollection принимает также имя представления "team"
func ParseCollection(s string) (Collection, error) {
	switch s {
	case string(CollectionTeams), string(ViewTeam):
		return CollectionTeams, nil
	case string(CollectionProjects):
		return CollectionProjects, nil
	case string(CollectionTasks):
		return CollectionTasks, nil
	}
	return "", NewBadRequestError("unknown collection " + s)
}

// ParseView возвращает dashboard для неизвестных значений
func ParseView(s string) View {
	switch v := View(s); v {
	case ViewDashboard, ViewProjects, ViewTasks, ViewTeam:
		return v
	}
	return ViewDashboard
}

// View возвращает представление, которое показывает коллекцию
func (c Collection) View() View {
	switch c {
	case CollectionTeams:
		return ViewTeam
	case CollectionProjects:
		return ViewProjects
	case CollectionTasks:
		return ViewTasks
	}
	return ViewDashboard
}
