package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bagdasarian/devteam-dashboard/internal/handler"
	"github.com/bagdasarian/devteam-dashboard/internal/notify"
	"github.com/bagdasarian/devteam-dashboard/internal/repository/memory"
	"github.com/bagdasarian/devteam-dashboard/internal/service"
	"github.com/bagdasarian/devteam-dashboard/internal/store"
	"github.com/bagdasarian/devteam-dashboard/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupServer собирает приложение поверх хранилища в памяти
func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := zap.NewNop()
	st := store.New(memory.NewKVRepository(), "devTeamData", notify.NewLogNotifier(logger), logger)
	require.NoError(t, st.Load(context.Background()))

	writeMu := &sync.Mutex{}
	h := handler.NewHandler(
		st,
		service.NewMemberService(st, writeMu, logger),
		service.NewProjectService(st, writeMu, logger),
		service.NewTaskService(st, writeMu, logger),
		service.NewDeletionService(st, writeMu, time.Minute, logger),
		logger,
	)

	ts := httptest.NewServer(NewServer(h, ":0", logger).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url, body string, out any) int {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestRoutes_Views(t *testing.T) {
	ts := setupServer(t)

	var page view.Page
	status := doJSON(t, http.MethodGet, ts.URL+"/api/views/dashboard", "", &page)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Dashboard", page.Title)
	require.NotNil(t, page.Dashboard)
	assert.Equal(t, view.Stats{TotalProjects: 3, PendingTasks: 3, TeamSize: 4}, page.Dashboard.Stats)

	status = doJSON(t, http.MethodGet, ts.URL+"/api/views/team", "", &page)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Team Members", page.Title)
	assert.Len(t, page.Team, 4)
}

func TestRoutes_CreateAndUpdate(t *testing.T) {
	ts := setupServer(t)

	t.Run("создание задачи из JSON", func(t *testing.T) {
		var page view.Page
		status := doJSON(t, http.MethodPost, ts.URL+"/api/tasks",
			`{"title":"Load testing","projectId":"2","assigneeId":"2","priority":"Medium","status":"To Do"}`, &page)

		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, notify.SavedMessage, page.Notice)
		require.Len(t, page.Tasks, 5)
		assert.Equal(t, "John Reese", page.Tasks[4].Assignee)
	})

	t.Run("создание участника из urlencoded-формы", func(t *testing.T) {
		form := url.Values{"name": {"Root Admin"}, "role": {"SRE"}, "email": {"root@devteam.io"}}
		resp, err := http.PostForm(ts.URL+"/api/team", form)
		require.NoError(t, err)
		defer resp.Body.Close()

		var page view.Page
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "RA", page.Team[4].Avatar)
	})

	t.Run("обновление проекта", func(t *testing.T) {
		var page view.Page
		status := doJSON(t, http.MethodPut, ts.URL+"/api/projects/3", `{"status":"In Progress"}`, &page)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "In Progress", page.Projects[2].Status)
		assert.Equal(t, view.CategoryActive, page.Projects[2].Category)
		assert.Equal(t, "API Migration", page.Projects[2].Name)
	})

	t.Run("ошибка валидации", func(t *testing.T) {
		var resp handler.ErrorResponse
		status := doJSON(t, http.MethodPost, ts.URL+"/api/team", `{"email":"a@b.c"}`, &resp)

		require.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
		assert.Equal(t, []string{"name", "role"}, resp.Error.Fields)
	})

	t.Run("ошибка: нечисловая ссылка", func(t *testing.T) {
		var resp handler.ErrorResponse
		status := doJSON(t, http.MethodPost, ts.URL+"/api/tasks", `{"title":"x","assigneeId":"bob"}`, &resp)

		require.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, []string{"assigneeId"}, resp.Error.Fields)
	})

	t.Run("ошибка: запись не найдена", func(t *testing.T) {
		var resp handler.ErrorResponse
		status := doJSON(t, http.MethodPut, ts.URL+"/api/tasks/999", `{"title":"x"}`, &resp)

		require.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	})

	t.Run("ошибка: неизвестная коллекция", func(t *testing.T) {
		var resp handler.ErrorResponse
		status := doJSON(t, http.MethodPost, ts.URL+"/api/users", `{}`, &resp)

		require.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "BAD_REQUEST", resp.Error.Code)
	})

	t.Run("ошибка: тело не JSON", func(t *testing.T) {
		var resp handler.ErrorResponse
		status := doJSON(t, http.MethodPost, ts.URL+"/api/tasks", `[1,2]`, &resp)

		require.Equal(t, http.StatusBadRequest, status)
	})
}

func TestRoutes_DeleteMemberKeepsTasks(t *testing.T) {
	ts := setupServer(t)

	var pending handler.DeleteRequestResponse
	status := doJSON(t, http.MethodPost, ts.URL+"/api/teams/1/delete?view=tasks", "", &pending)
	require.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, service.DeletePrompt, pending.Prompt)
	require.NotEmpty(t, pending.Token)

	var page view.Page
	status = doJSON(t, http.MethodPost, ts.URL+"/api/deletions/"+pending.Token, `{"confirm":true}`, &page)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "tasks", string(page.View))
	require.Len(t, page.Tasks, 4)
	assert.Equal(t, view.Unassigned, page.Tasks[1].Assignee)
	assert.Equal(t, "In Progress", page.Tasks[1].Status)

	var members []map[string]any
	status = doJSON(t, http.MethodGet, ts.URL+"/api/teams", "", &members)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, members, 3)

	var resp handler.ErrorResponse
	status = doJSON(t, http.MethodPost, ts.URL+"/api/deletions/"+pending.Token, `{"confirm":true}`, &resp)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRoutes_Forms(t *testing.T) {
	ts := setupServer(t)

	var form view.FormView
	status := doJSON(t, http.MethodGet, ts.URL+"/api/forms/tasks?id=2", "", &form)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Edit Task", form.Title)

	var resp handler.ErrorResponse
	status = doJSON(t, http.MethodGet, ts.URL+"/api/forms/projects?id=9", "", &resp)
	assert.Equal(t, http.StatusNotFound, status)

	status = doJSON(t, http.MethodGet, ts.URL+"/api/forms/projects?id=abc", "", &resp)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestRoutes_Infra(t *testing.T) {
	ts := setupServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
