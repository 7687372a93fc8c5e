package view

import "github.com/bagdasarian/devteam-dashboard/internal/domain"

// NormalizeStatus относит статус проекта или задачи к одной из трех категорий
func NormalizeStatus(status string) StatusCategory {
	switch status {
	case domain.ProjectStatusActive, domain.TaskStatusCompleted, "Done":
		return CategoryCompleted
	case domain.TaskStatusInProgress:
		return CategoryActive
	default:
		return CategoryPending
	}
}

var (
	ColorRed   = Color{Name: "red", Hex: "#EF4444"}
	ColorAmber = Color{Name: "amber", Hex: "#F59E0B"}
	ColorGreen = Color{Name: "green", Hex: "#10B981"}
)

// PriorityColor: неизвестный приоритет отображается как Low
func PriorityColor(priority string) Color {
	switch priority {
	case domain.PriorityHigh:
		return ColorRed
	case domain.PriorityMedium:
		return ColorAmber
	default:
		return ColorGreen
	}
}
