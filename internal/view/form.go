package view

import "github.com/bagdasarian/devteam-dashboard/internal/domain"

// Form строит форму создания (id == nil) или редактирования записи
func Form(state *domain.State, c domain.Collection, id *int) (*FormView, error) {
	switch c {
	case domain.CollectionTeams:
		return memberForm(state, id)
	case domain.CollectionProjects:
		return projectForm(state, id)
	case domain.CollectionTasks:
		return taskForm(state, id)
	}
	return nil, domain.NewBadRequestError("unknown collection " + string(c))
}

func memberForm(state *domain.State, id *int) (*FormView, error) {
	member := &domain.TeamMember{}
	title := "Add Team Member"
	if id != nil {
		found, ok := state.FindMember(*id)
		if !ok {
			return nil, domain.NewNotFoundError("team member with id " + itoa(*id))
		}
		member = found
		title = "Edit Team Member"
	}

	return &FormView{
		Collection: domain.CollectionTeams,
		ID:         id,
		Title:      title,
		Fields: []FormField{
			{Name: "name", Label: "Name", Kind: FieldText, Value: member.Name},
			{Name: "role", Label: "Role", Kind: FieldText, Value: member.Role},
			{Name: "email", Label: "Email", Kind: FieldEmail, Value: member.Email},
		},
	}, nil
}

func projectForm(state *domain.State, id *int) (*FormView, error) {
	project := &domain.Project{}
	title := "New Project"
	if id != nil {
		found, ok := state.FindProject(*id)
		if !ok {
			return nil, domain.NewNotFoundError("project with id " + itoa(*id))
		}
		project = found
		title = "Edit Project"
	}

	return &FormView{
		Collection: domain.CollectionProjects,
		ID:         id,
		Title:      title,
		Fields: []FormField{
			{Name: "name", Label: "Project Name", Kind: FieldText, Value: project.Name},
			{Name: "status", Label: "Status", Kind: FieldSelect, Value: project.Status, Options: fixedOptions(domain.ProjectStatuses, project.Status)},
			{Name: "description", Label: "Description", Kind: FieldTextarea, Value: project.Description},
			{Name: "deadline", Label: "Deadline", Kind: FieldDate, Value: project.Deadline},
		},
	}, nil
}

func taskForm(state *domain.State, id *int) (*FormView, error) {
	task := &domain.Task{}
	title := "New Task"
	if id != nil {
		found, ok := state.FindTask(*id)
		if !ok {
			return nil, domain.NewNotFoundError("task with id " + itoa(*id))
		}
		task = found
		title = "Edit Task"
	}

	projectOptions := make([]FormOption, 0, len(state.Projects))
	for _, p := range state.Projects {
		projectOptions = append(projectOptions, FormOption{Value: itoa(p.ID), Label: p.Name, Selected: id != nil && p.ID == task.ProjectID})
	}
	assigneeOptions := make([]FormOption, 0, len(state.Teams))
	for _, m := range state.Teams {
		assigneeOptions = append(assigneeOptions, FormOption{Value: itoa(m.ID), Label: m.Name, Selected: id != nil && m.ID == task.AssigneeID})
	}

	return &FormView{
		Collection: domain.CollectionTasks,
		ID:         id,
		Title:      title,
		Fields: []FormField{
			{Name: "title", Label: "Task Title", Kind: FieldText, Value: task.Title},
			{Name: "projectId", Label: "Project", Kind: FieldSelect, Value: referenceValue(id, task.ProjectID), Options: projectOptions},
			{Name: "assigneeId", Label: "Assignee", Kind: FieldSelect, Value: referenceValue(id, task.AssigneeID), Options: assigneeOptions},
			{Name: "priority", Label: "Priority", Kind: FieldSelect, Value: task.Priority, Options: fixedOptions(domain.TaskPriorities, task.Priority)},
			{Name: "status", Label: "Status", Kind: FieldSelect, Value: task.Status, Options: fixedOptions(domain.TaskStatuses, task.Status)},
		},
	}, nil
}

func fixedOptions(values []string, current string) []FormOption {
	options := make([]FormOption, 0, len(values))
	for _, v := range values {
		options = append(options, FormOption{Value: v, Label: v, Selected: v == current})
	}
	return options
}

func referenceValue(id *int, ref int) string {
	if id == nil {
		return ""
	}
	return itoa(ref)
}
