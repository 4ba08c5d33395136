// Package tasks keeps the task list relevant to the authenticated user
// consistent with the server: every mutation goes to the server first and,
// on success, triggers a wholesale reload of the active view.
package tasks

import (
	"context"
	"strings"
	"sync"

	"github.com/artembredak/todocli/internal/client/api"
	"github.com/artembredak/todocli/internal/client/models"
	"github.com/artembredak/todocli/internal/logging"
)

// Cache is the per-client task collection. The list is never patched
// incrementally; Refresh replaces it as a whole. Concurrent refreshes are
// fenced with a sequence number: a response that arrives after a newer
// refresh has started is discarded.
type Cache struct {
	client api.Client
	log    logging.Logger

	mu     sync.Mutex
	items  []models.Task
	filter models.StatusFilter
	seq    uint64
}

func NewCache(client api.Client, log logging.Logger) *Cache {
	return &Cache{
		client: client,
		log:    log.With("component", "tasks"),
		filter: models.FilterAll,
	}
}

// Refresh fetches the full list (or the status-filtered list) for owner and
// replaces the cache wholesale. Stale responses lose: if another Refresh
// started after this one, its result wins and this one is dropped.
func (c *Cache) Refresh(ctx context.Context, owner models.OwnerKey, filter models.StatusFilter) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	var (
		items []models.Task
		err   error
	)
	if filter == models.FilterAll {
		items, err = c.client.ListTasks(ctx, owner)
	} else {
		items, err = c.client.ListTasksByStatus(ctx, owner, filter.Status())
	}
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		c.log.Debug(ctx, "discarding stale refresh", "seq", seq, "latest", c.seq)
		return nil
	}
	c.items = items
	c.filter = filter
	return nil
}

// Create validates the draft, submits it, and reloads the active view.
// On failure the cache is left untouched and the error propagates.
func (c *Cache) Create(ctx context.Context, owner models.OwnerKey, draft models.TaskDraft) error {
	if err := draft.Validate(); err != nil {
		return err
	}
	if _, err := c.client.CreateTask(ctx, owner, draft); err != nil {
		return err
	}
	return c.Refresh(ctx, owner, c.ActiveFilter())
}

// Update validates the draft, replaces the task on the server, and reloads
// the active view. The draft must carry all mutable fields.
func (c *Cache) Update(ctx context.Context, owner models.OwnerKey, id int64, draft models.TaskDraft) error {
	if err := draft.Validate(); err != nil {
		return err
	}
	if _, err := c.client.UpdateTask(ctx, id, draft); err != nil {
		return err
	}
	return c.Refresh(ctx, owner, c.ActiveFilter())
}

// Delete removes the task on the server and reloads the active view.
func (c *Cache) Delete(ctx context.Context, owner models.OwnerKey, id int64) error {
	if err := c.client.DeleteTask(ctx, id); err != nil {
		return err
	}
	return c.Refresh(ctx, owner, c.ActiveFilter())
}

// Project applies a client-side search and status filter over the cached
// list without touching the server or the cache. The match is a
// case-insensitive substring test over title and description; an empty
// search matches everything, and a task with no description can only match
// through its title.
func (c *Cache) Project(search string, filter models.StatusFilter) []models.Task {
	q := strings.ToLower(strings.TrimSpace(search))

	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.Task, 0, len(c.items))
	for _, t := range c.items {
		if !filter.Matches(t.Status) {
			continue
		}
		if q != "" && !matches(t, q) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matches(t models.Task, q string) bool {
	if strings.Contains(strings.ToLower(t.Title), q) {
		return true
	}
	return t.Description != "" && strings.Contains(strings.ToLower(t.Description), q)
}

// Snapshot returns a copy of the cached list as of the last completed
// refresh.
func (c *Cache) Snapshot() []models.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Task(nil), c.items...)
}

// Get looks a task up by id in the cached list.
func (c *Cache) Get(id int64) (models.Task, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.items {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

// ActiveFilter returns the filter the cache currently reflects.
func (c *Cache) ActiveFilter() models.StatusFilter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// SetFilter records the filter for subsequent reloads without fetching.
func (c *Cache) SetFilter(f models.StatusFilter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = f
}

// Reset drops the cached list and filter, e.g. on logout.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.filter = models.FilterAll
	c.seq++
}
