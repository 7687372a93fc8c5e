package view

import (
	"math"
	"strconv"

	"github.com/bagdasarian/devteam-dashboard/internal/domain"
)

const recentTasksLimit = 5

var titles = map[domain.View]string{
	domain.ViewDashboard: "Dashboard",
	domain.ViewProjects:  "Projects",
	domain.ViewTasks:     "Tasks",
	domain.ViewTeam:      "Team Members",
}

// Render строит страницу для навигационного сигнала; неизвестный сигнал дает dashboard
func Render(v domain.View, state *domain.State) *Page {
	v = domain.ParseView(string(v))
	page := &Page{
		View:          v,
		Title:         titles[v],
		ShowAddButton: v != domain.ViewDashboard,
	}

	switch v {
	case domain.ViewProjects:
		page.Projects = Projects(state)
	case domain.ViewTasks:
		page.Tasks = Tasks(state)
	case domain.ViewTeam:
		page.Team = Team(state)
	default:
		page.Dashboard = Dashboard(state)
	}
	return page
}

func Dashboard(state *domain.State) *DashboardView {
	pending := 0
	for _, task := range state.Tasks {
		if task.Status != domain.TaskStatusCompleted {
			pending++
		}
	}

	recent := state.Tasks[:min(recentTasksLimit, len(state.Tasks))]
	rows := make([]RecentTask, 0, len(recent))
	for _, task := range recent {
		rows = append(rows, RecentTask{
			ID:       task.ID,
			Title:    task.Title,
			Project:  projectName(state, task.ProjectID),
			Assignee: assigneeName(state, task.AssigneeID),
			Status:   task.Status,
			Category: NormalizeStatus(task.Status),
		})
	}

	return &DashboardView{
		Stats: Stats{
			TotalProjects: len(state.Projects),
			PendingTasks:  pending,
			TeamSize:      len(state.Teams),
		},
		RecentTasks: rows,
	}
}

func Projects(state *domain.State) []ProjectCard {
	cards := make([]ProjectCard, 0, len(state.Projects))
	for _, project := range state.Projects {
		total, completed := 0, 0
		for _, task := range state.Tasks {
			if task.ProjectID != project.ID {
				continue
			}
			total++
			if task.Status == domain.TaskStatusCompleted {
				completed++
			}
		}

		cards = append(cards, ProjectCard{
			ID:             project.ID,
			Name:           project.Name,
			Status:         project.Status,
			Category:       NormalizeStatus(project.Status),
			Description:    project.Description,
			Deadline:       project.Deadline,
			TaskCount:      total,
			CompletedCount: completed,
			Progress:       Progress(completed, total),
		})
	}
	return cards
}

// Progress возвращает процент выполненных задач; без задач прогресс 0
func Progress(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

func Tasks(state *domain.State) []TaskRow {
	rows := make([]TaskRow, 0, len(state.Tasks))
	for _, task := range state.Tasks {
		rows = append(rows, TaskRow{
			ID:            task.ID,
			Title:         task.Title,
			ProjectID:     task.ProjectID,
			Project:       projectName(state, task.ProjectID),
			Priority:      task.Priority,
			PriorityColor: PriorityColor(task.Priority),
			AssigneeID:    task.AssigneeID,
			Assignee:      assigneeName(state, task.AssigneeID),
			Status:        task.Status,
			Category:      NormalizeStatus(task.Status),
		})
	}
	return rows
}

func Team(state *domain.State) []MemberCard {
	cards := make([]MemberCard, 0, len(state.Teams))
	for _, member := range state.Teams {
		cards = append(cards, MemberCard{
			ID:     member.ID,
			Avatar: member.Avatar,
			Name:   member.Name,
			Role:   member.Role,
			Email:  member.Email,
		})
	}
	return cards
}

// Висячие ссылки не ошибка: вместо имени показывается заглушка
func projectName(state *domain.State, id int) string {
	if project, ok := state.FindProject(id); ok {
		return project.Name
	}
	return UnknownProject
}

func assigneeName(state *domain.State, id int) string {
	if member, ok := state.FindMember(id); ok {
		return member.Name
	}
	return Unassigned
}

func itoa(id int) string {
	return strconv.Itoa(id)
}
