package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artembredak/todocli/internal/client/models"
	"github.com/artembredak/todocli/internal/logging"
)

// HTTPClient is the concrete Client speaking the backend's HTTP JSON
// protocol. One instance is safe for concurrent use.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

// NewHTTPClient builds a client for the given base URL. The timeout covers
// the whole request/response round trip; there is no retry or abort path
// beyond it.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		log:     log.With("component", "api"),
	}
}

// do performs one round trip. Every request carries an X-Request-Id for
// server-side correlation; Content-Type is set only when a body is sent.
// A non-2xx status becomes a *RequestError with the body text as message,
// falling back to the per-operation default. An empty 2xx body leaves out
// untouched.
func (c *HTTPClient) do(ctx context.Context, op, method, path string, query url.Values, body, out any, fallback string) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "op", op, "method", method, "path", path, "err", err)
		return &RequestError{Op: op, Message: fallback}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", op, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := strings.TrimSpace(string(data))
		if msg == "" {
			msg = fallback
		}
		c.log.Debug(ctx, "server rejected request", "op", op, "status", resp.StatusCode, "msg", msg)
		return &RequestError{Op: op, StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func ownerQuery(owner models.OwnerKey) url.Values {
	q := url.Values{}
	q.Set("username", owner.Username)
	q.Set("email", owner.Email)
	return q
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	payload := models.User{Username: username, Email: email, Password: password}
	var user models.User
	if err := c.do(ctx, "register", http.MethodPost, "/users/register", nil, payload, &user, "Registration failed"); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	q := url.Values{}
	q.Set("email", email)
	q.Set("password", password)

	var user models.User
	if err := c.do(ctx, "login", http.MethodPost, "/users/login", q, nil, &user, "Login failed"); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) DeleteAccount(ctx context.Context, email, password string) error {
	q := url.Values{}
	q.Set("email", email)
	q.Set("password", password)

	return c.do(ctx, "delete account", http.MethodDelete, "/users/delete", q, nil, nil, "Delete user failed")
}

func (c *HTTPClient) ListTasks(ctx context.Context, owner models.OwnerKey) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.do(ctx, "list tasks", http.MethodGet, "/tasks", ownerQuery(owner), nil, &tasks, "Failed to fetch tasks"); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *HTTPClient) ListTasksByStatus(ctx context.Context, owner models.OwnerKey, status models.Status) ([]models.Task, error) {
	q := ownerQuery(owner)
	q.Set("status", string(status))

	var tasks []models.Task
	if err := c.do(ctx, "list tasks by status", http.MethodGet, "/tasks/by-status", q, nil, &tasks, "Failed to fetch tasks by status"); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask submits a new task. The status is force-set to TODO before
// submission regardless of what the draft carries; the server assigns the id.
func (c *HTTPClient) CreateTask(ctx context.Context, owner models.OwnerKey, draft models.TaskDraft) (*models.Task, error) {
	draft.Status = models.StatusTodo

	var task models.Task
	if err := c.do(ctx, "create task", http.MethodPost, "/tasks/create", ownerQuery(owner), draft, &task, "Failed to create task"); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask replaces every mutable field of the task; the server keeps
// nothing from the previous version.
func (c *HTTPClient) UpdateTask(ctx context.Context, taskID int64, draft models.TaskDraft) (*models.Task, error) {
	q := url.Values{}
	q.Set("taskId", strconv.FormatInt(taskID, 10))

	var task models.Task
	path := "/tasks/" + strconv.FormatInt(taskID, 10)
	if err := c.do(ctx, "update task", http.MethodPut, path, q, draft, &task, "Failed to update task"); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *HTTPClient) DeleteTask(ctx context.Context, taskID int64) error {
	q := url.Values{}
	q.Set("taskId", strconv.FormatInt(taskID, 10))

	path := "/tasks/" + strconv.FormatInt(taskID, 10)
	return c.do(ctx, "delete task", http.MethodDelete, path, q, nil, nil, "Failed to delete task")
}

// Ping checks whether the server is reachable at all. Any HTTP response
// counts as alive; only transport failures report ErrUnavailable.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("ping: build request: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return ErrUnavailable
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return nil
}
