package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextID(t *testing.T) {
	idOf := func(p Project) int { return p.ID }

	t.Run("пустая коллекция", func(t *testing.T) {
		assert.Equal(t, 1, NextID([]Project{}, idOf))
	})

	t.Run("максимум плюс один, дыры не заполняются", func(t *testing.T) {
		projects := []Project{{ID: 7}, {ID: 2}, {ID: 4}}
		assert.Equal(t, 8, NextID(projects, idOf))
	})
}

func TestState_Remove(t *testing.T) {
	t.Run("удаление существующей записи", func(t *testing.T) {
		state := DefaultState()

		removed, err := state.Remove(CollectionProjects, 2)

		require.NoError(t, err)
		assert.True(t, removed)
		assert.Len(t, state.Projects, 2)
		_, found := state.FindProject(2)
		assert.False(t, found)
	})

	t.Run("повторное удаление ничего не меняет", func(t *testing.T) {
		state := DefaultState()
		_, err := state.Remove(CollectionTasks, 3)
		require.NoError(t, err)
		before := state.Clone()

		removed, err := state.Remove(CollectionTasks, 3)

		require.NoError(t, err)
		assert.False(t, removed)
		assert.Equal(t, before, state)
	})

	t.Run("удаление участника не трогает задачи", func(t *testing.T) {
		state := DefaultState()

		_, err := state.Remove(CollectionTeams, 1)

		require.NoError(t, err)
		assert.Equal(t, DefaultState().Tasks, state.Tasks)
	})

	t.Run("неизвестная коллекция", func(t *testing.T) {
		state := DefaultState()

		_, err := state.Remove(Collection("users"), 1)

		assert.True(t, errors.Is(err, ErrBadRequest))
	})
}

func TestState_Clone(t *testing.T) {
	state := DefaultState()
	clone := state.Clone()

	clone.Teams[0].Name = "changed"
	clone.Tasks = append(clone.Tasks, Task{ID: 99})

	assert.Equal(t, "Sarah Connor", state.Teams[0].Name)
	assert.Len(t, state.Tasks, 4)

	empty := (&State{}).Clone()
	assert.NotNil(t, empty.Teams)
	assert.NotNil(t, empty.Projects)
	assert.NotNil(t, empty.Tasks)
}

func TestParseView(t *testing.T) {
	assert.Equal(t, ViewTeam, ParseView("team"))
	assert.Equal(t, ViewTasks, ParseView("tasks"))
	assert.Equal(t, ViewDashboard, ParseView("settings"))
	assert.Equal(t, ViewDashboard, ParseView(""))
}

func TestParseCollection(t *testing.T) {
	c, err := ParseCollection("team")
	require.NoError(t, err)
	assert.Equal(t, CollectionTeams, c)
	assert.Equal(t, ViewTeam, c.View())

	_, err = ParseCollection("dashboard")
	assert.True(t, errors.Is(err, ErrBadRequest))
}
