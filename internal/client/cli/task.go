package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/artembredak/todocli/internal/client/models"
)

func parseTaskID(arg string) (int64, error) {
	if arg == "" {
		return 0, fmt.Errorf("task id required")
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}

func (a *App) activeSearch() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.search
}

func (a *App) printTasks(items []models.Task) {
	if len(items) == 0 {
		fmt.Println("No tasks")
		return
	}
	for _, t := range items {
		line := fmt.Sprintf("%4d  %-11s  %-6s  %s", t.ID, t.Status, t.Priority, t.Title)
		if t.Description != "" {
			line += "  | " + t.Description
		}
		fmt.Println(line)
	}
}

// List reloads the active view from the server and prints it through the
// current search projection.
func (a *App) List(ctx context.Context) error {
	u, err := a.currentUser()
	if err != nil {
		return err
	}
	if err := a.cache.Refresh(ctx, u.Owner(), a.cache.ActiveFilter()); err != nil {
		return err
	}
	a.printTasks(a.cache.Project(a.activeSearch(), models.FilterAll))
	return nil
}

// Filter switches the server-side status filter and reloads. The selection
// is recorded first so later reloads honor it even if this fetch fails.
func (a *App) Filter(ctx context.Context, arg string) error {
	u, err := a.currentUser()
	if err != nil {
		return err
	}
	f, err := models.ParseStatusFilter(arg)
	if err != nil {
		return err
	}
	a.cache.SetFilter(f)
	if err := a.cache.Refresh(ctx, u.Owner(), f); err != nil {
		return err
	}
	a.printTasks(a.cache.Project(a.activeSearch(), models.FilterAll))
	return nil
}

// Search sets the client-side search text and reprints the cached view
// without refetching; an empty argument clears the search.
func (a *App) Search(ctx context.Context, arg string) error {
	if _, err := a.currentUser(); err != nil {
		return err
	}
	a.mu.Lock()
	a.search = arg
	a.mu.Unlock()

	a.printTasks(a.cache.Project(arg, models.FilterAll))
	return nil
}

// Add collects a draft interactively and creates the task. New tasks
// always start as TODO.
func (a *App) Add(ctx context.Context) error {
	u, err := a.currentUser()
	if err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return err
	}
	priorityRaw, err := GetTextWithDefault(a.reader, "Priority (HIGH|MEDIUM|LOW)", string(models.PriorityMedium), os.Stdout)
	if err != nil {
		return err
	}
	priority, err := models.ParsePriority(priorityRaw)
	if err != nil {
		return err
	}

	draft := models.TaskDraft{
		Title:       title,
		Description: description,
		Priority:    priority,
		Status:      models.StatusTodo,
	}
	if err := a.cache.Create(ctx, u.Owner(), draft); err != nil {
		return err
	}

	fmt.Println("Created")
	return nil
}

// Edit re-collects every field of an existing task (blank keeps the
// current value) and submits a full-replace update.
func (a *App) Edit(ctx context.Context, arg string) error {
	u, err := a.currentUser()
	if err != nil {
		return err
	}
	id, err := parseTaskID(arg)
	if err != nil {
		return err
	}
	task, ok := a.cache.Get(id)
	if !ok {
		return fmt.Errorf("task %d is not in the current view; run 'list' first", id)
	}

	title, err := GetTextWithDefault(a.reader, "Title", task.Title, os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetTextWithDefault(a.reader, "Description", task.Description, os.Stdout)
	if err != nil {
		return err
	}
	priorityRaw, err := GetTextWithDefault(a.reader, "Priority (HIGH|MEDIUM|LOW)", string(task.Priority), os.Stdout)
	if err != nil {
		return err
	}
	priority, err := models.ParsePriority(priorityRaw)
	if err != nil {
		return err
	}
	statusRaw, err := GetTextWithDefault(a.reader, "Status (TODO|IN_PROGRESS|COMPLETED)", string(task.Status), os.Stdout)
	if err != nil {
		return err
	}
	status, err := models.ParseStatus(statusRaw)
	if err != nil {
		return err
	}

	draft := models.TaskDraft{Title: title, Description: description, Priority: priority, Status: status}
	if err := a.cache.Update(ctx, u.Owner(), id, draft); err != nil {
		return err
	}

	fmt.Println("Updated")
	return nil
}

// Start marks a task as in progress.
func (a *App) Start(ctx context.Context, arg string) error {
	return a.setStatus(ctx, arg, models.StatusInProgress)
}

// Done marks a task as completed.
func (a *App) Done(ctx context.Context, arg string) error {
	return a.setStatus(ctx, arg, models.StatusCompleted)
}

// setStatus rebuilds a full draft from the cached task with only the
// status changed; the server has no partial update.
func (a *App) setStatus(ctx context.Context, arg string, status models.Status) error {
	u, err := a.currentUser()
	if err != nil {
		return err
	}
	id, err := parseTaskID(arg)
	if err != nil {
		return err
	}
	task, ok := a.cache.Get(id)
	if !ok {
		return fmt.Errorf("task %d is not in the current view; run 'list' first", id)
	}

	draft := models.DraftOf(task)
	draft.Status = status
	if err := a.cache.Update(ctx, u.Owner(), id, draft); err != nil {
		return err
	}

	fmt.Printf("Task %d is now %s\n", id, status)
	return nil
}

// Remove deletes a task by id.
func (a *App) Remove(ctx context.Context, arg string) error {
	u, err := a.currentUser()
	if err != nil {
		return err
	}
	id, err := parseTaskID(arg)
	if err != nil {
		return err
	}

	if err := a.cache.Delete(ctx, u.Owner(), id); err != nil {
		return err
	}

	fmt.Println("Deleted")
	return nil
}
