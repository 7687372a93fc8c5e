package domain

import (
	"strconv"
	"strings"
)

// Form - пользовательский ввод в виде строк "поле" -> "значение"
type Form map[string]string

// String возвращает nil, если поле не передано
func (f Form) String(key string) *string {
	v, ok := f[key]
	if !ok {
		return nil
	}
	return &v
}

// Int разбирает числовое поле. Пустое значение считается непереданным.
func (f Form) Int(key string) (*int, error) {
	v, ok := f[key]
	if !ok || strings.TrimSpace(v) == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return nil, NewInvalidFieldError(key, "must be an integer")
	}
	return &n, nil
}

type MemberInput struct {
	Name  *string
	Role  *string
	Email *string
}

type ProjectInput struct {
	Name        *string
	Description *string
	Status      *string
	Deadline    *string
}

type TaskInput struct {
	Title      *string
	ProjectID  *int
	AssigneeID *int
	Priority   *string
	Status     *string
}

func NewMemberInput(f Form) MemberInput {
	return MemberInput{
		Name:  f.String("name"),
		Role:  f.String("role"),
		Email: f.String("email"),
	}
}

func NewProjectInput(f Form) ProjectInput {
	return ProjectInput{
		Name:        f.String("name"),
		Description: f.String("description"),
		Status:      f.String("status"),
		Deadline:    f.String("deadline"),
	}
}

func NewTaskInput(f Form) (TaskInput, error) {
	projectID, err := f.Int("projectId")
	if err != nil {
		return TaskInput{}, err
	}
	assigneeID, err := f.Int("assigneeId")
	if err != nil {
		return TaskInput{}, err
	}

	return TaskInput{
		Title:      f.String("title"),
		ProjectID:  projectID,
		AssigneeID: assigneeID,
		Priority:   f.String("priority"),
		Status:     f.String("status"),
	}, nil
}

// MissingRequired возвращает обязательные поля, которые не заполнены.
// При создании поле должно быть передано, при обновлении переданное поле не может быть пустым.
func MissingRequired(isCreate bool, fields ...RequiredField) []string {
	var missing []string
	for _, field := range fields {
		if field.Value == nil {
			if isCreate {
				missing = append(missing, field.Name)
			}
			continue
		}
		if strings.TrimSpace(*field.Value) == "" {
			missing = append(missing, field.Name)
		}
	}
	return missing
}

type RequiredField struct {
	Name  string
	Value *string
}
