package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskInput(t *testing.T) {
	t.Run("числовые ссылки разбираются в int", func(t *testing.T) {
		in, err := NewTaskInput(Form{"title": "Write docs", "projectId": "2", "assigneeId": " 3 "})

		require.NoError(t, err)
		require.NotNil(t, in.ProjectID)
		require.NotNil(t, in.AssigneeID)
		assert.Equal(t, 2, *in.ProjectID)
		assert.Equal(t, 3, *in.AssigneeID)
		assert.Equal(t, "Write docs", *in.Title)
		assert.Nil(t, in.Priority)
	})

	t.Run("пустая ссылка считается непереданной", func(t *testing.T) {
		in, err := NewTaskInput(Form{"title": "x", "assigneeId": ""})

		require.NoError(t, err)
		assert.Nil(t, in.AssigneeID)
	})

	t.Run("ошибка: ссылка не число", func(t *testing.T) {
		_, err := NewTaskInput(Form{"title": "x", "projectId": "abc"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))
		var domainErr *DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, []string{"projectId"}, domainErr.Fields)
	})
}

func TestMissingRequired(t *testing.T) {
	name := "Sarah"
	blank := "  "

	t.Run("создание требует все поля", func(t *testing.T) {
		missing := MissingRequired(true,
			RequiredField{Name: "name", Value: &name},
			RequiredField{Name: "role", Value: nil},
		)
		assert.Equal(t, []string{"role"}, missing)
	})

	t.Run("обновление допускает непереданные поля", func(t *testing.T) {
		missing := MissingRequired(false,
			RequiredField{Name: "name", Value: nil},
			RequiredField{Name: "role", Value: nil},
		)
		assert.Empty(t, missing)
	})

	t.Run("пустое значение запрещено всегда", func(t *testing.T) {
		missing := MissingRequired(false, RequiredField{Name: "name", Value: &blank})
		assert.Equal(t, []string{"name"}, missing)
	})
}
