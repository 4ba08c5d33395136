// Package api translates domain operations into HTTP requests against the
// todoapp backend and maps responses into typed results or typed failures.
package api

import (
	"context"

	"github.com/artembredak/todocli/internal/client/models"
)

// Client defines the remote operations used by the session and task layers.
//
// Contract:
//   - Every operation is a single request/response round trip; no retries.
//   - A non-2xx response is always surfaced as a *RequestError carrying the
//     response body text, or a per-operation fallback message.
//   - An empty response body on success decodes to "no value", never to a
//     parse error.
//
// All methods must honor context cancellation/timeouts.
type Client interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	DeleteAccount(ctx context.Context, email, password string) error

	ListTasks(ctx context.Context, owner models.OwnerKey) ([]models.Task, error)
	ListTasksByStatus(ctx context.Context, owner models.OwnerKey, status models.Status) ([]models.Task, error)
	CreateTask(ctx context.Context, owner models.OwnerKey, draft models.TaskDraft) (*models.Task, error)
	UpdateTask(ctx context.Context, taskID int64, draft models.TaskDraft) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID int64) error

	Ping(ctx context.Context) error
}
