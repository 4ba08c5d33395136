package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artembredak/todocli/internal/client/models"
	"github.com/artembredak/todocli/internal/logging"
)

func newClient(t *testing.T, handler http.Handler) (*HTTPClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	log := logging.NewTextLogger(io.Discard, slog.LevelDebug)
	return NewHTTPClient(srv.URL, 5*time.Second, log), srv
}

func TestRegister_Success(t *testing.T) {
	var gotBody models.User
	var gotReqID string

	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users/register", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotReqID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(models.User{ID: 42, Username: gotBody.Username, Email: gotBody.Email})
	}))

	user, err := c.Register(context.Background(), "artem", "artem@example.com", "secret1")
	require.NoError(t, err)

	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "artem", user.Username)
	assert.Equal(t, models.User{Username: "artem", Email: "artem@example.com", Password: "secret1"}, gotBody)
	assert.NotEmpty(t, gotReqID)
}

func TestLogin_SendsCredentialsAsQuery(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users/login", r.URL.Path)
		require.Equal(t, "artem@example.com", r.URL.Query().Get("email"))
		require.Equal(t, "secret1", r.URL.Query().Get("password"))
		// no body on login requests
		require.Empty(t, r.Header.Get("Content-Type"))

		_ = json.NewEncoder(w).Encode(models.User{ID: 1, Username: "artem", Email: "artem@example.com"})
	}))

	user, err := c.Login(context.Background(), "artem@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "artem", user.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
	}))

	_, err := c.Login(context.Background(), "artem@example.com", "wrong")
	require.Error(t, err)

	var re *RequestError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "Invalid credentials", re.Message)
	assert.Equal(t, http.StatusUnauthorized, re.StatusCode)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestListTasks_EmptyBodyFallbackMessage(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.ListTasks(context.Background(), models.OwnerKey{Username: "artem", Email: "a@b.c"})

	var re *RequestError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "Failed to fetch tasks", re.Message)
}

func TestListTasks_QueryAndDecode(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tasks", r.URL.Path)
		require.Equal(t, "artem", r.URL.Query().Get("username"))
		require.Equal(t, "artem@example.com", r.URL.Query().Get("email"))
		_, _ = w.Write([]byte(`[{"taskId":1,"title":"Buy milk","priority":"LOW","status":"TODO"}]`))
	}))

	tasks, err := c.ListTasks(context.Background(), models.OwnerKey{Username: "artem", Email: "artem@example.com"})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title)
	assert.Equal(t, models.StatusTodo, tasks[0].Status)
}

func TestListTasksByStatus_SendsStatus(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tasks/by-status", r.URL.Path)
		require.Equal(t, "COMPLETED", r.URL.Query().Get("status"))
		_, _ = w.Write([]byte(`[]`))
	}))

	tasks, err := c.ListTasksByStatus(context.Background(), models.OwnerKey{Username: "artem"}, models.StatusCompleted)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestCreateTask_ForcesStatusTodo(t *testing.T) {
	var gotDraft models.TaskDraft

	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/tasks/create", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotDraft))
		_ = json.NewEncoder(w).Encode(models.Task{
			ID:       7,
			Title:    gotDraft.Title,
			Priority: gotDraft.Priority,
			Status:   gotDraft.Status,
		})
	}))

	draft := models.TaskDraft{Title: "Buy milk", Priority: models.PriorityLow, Status: models.StatusCompleted}
	task, err := c.CreateTask(context.Background(), models.OwnerKey{Username: "artem"}, draft)
	require.NoError(t, err)

	assert.Equal(t, models.StatusTodo, gotDraft.Status, "draft status must be overridden before submission")
	assert.Equal(t, int64(7), task.ID)
	assert.Equal(t, models.StatusTodo, task.Status)
}

func TestUpdateTask_FullReplace(t *testing.T) {
	var gotDraft models.TaskDraft

	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/tasks/5", r.URL.Path)
		require.Equal(t, "5", r.URL.Query().Get("taskId"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotDraft))
		_ = json.NewEncoder(w).Encode(models.Task{
			ID:          5,
			Title:       gotDraft.Title,
			Description: gotDraft.Description,
			Priority:    gotDraft.Priority,
			Status:      gotDraft.Status,
		})
	}))

	draft := models.TaskDraft{Title: "Buy milk", Description: "2 liters", Priority: models.PriorityHigh, Status: models.StatusCompleted}
	task, err := c.UpdateTask(context.Background(), 5, draft)
	require.NoError(t, err)

	assert.Equal(t, draft, gotDraft)
	assert.Equal(t, int64(5), task.ID)
	assert.Equal(t, models.StatusCompleted, task.Status)
}

func TestDeleteTask_EmptySuccessBody(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/tasks/3", r.URL.Path)
		require.Equal(t, "3", r.URL.Query().Get("taskId"))
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, c.DeleteTask(context.Background(), 3))
}

func TestDeleteAccount(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/users/delete", r.URL.Path)
		require.Equal(t, "artem@example.com", r.URL.Query().Get("email"))
	}))

	require.NoError(t, c.DeleteAccount(context.Background(), "artem@example.com", "secret1"))
}

func TestTransportError_MapsToUnavailable(t *testing.T) {
	c, srv := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := c.ListTasks(context.Background(), models.OwnerKey{Username: "artem"})
	require.Error(t, err)

	var re *RequestError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 0, re.StatusCode)
	assert.Equal(t, "Failed to fetch tasks", re.Message)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestPing(t *testing.T) {
	t.Run("any response means alive", func(t *testing.T) {
		c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		require.NoError(t, c.Ping(context.Background()))
	})

	t.Run("transport failure reports unavailable", func(t *testing.T) {
		c, srv := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()
		require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
	})
}

func TestNotFound_Sentinel(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "User not found", http.StatusNotFound)
	}))

	_, err := c.Login(context.Background(), "nobody@example.com", "secret1")
	require.ErrorIs(t, err, ErrNotFound)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.EqualError(t, err, "User not found")
}
