// Package models defines the domain types shared by the todocli client:
// users, tasks, drafts, and the client-side validation rules applied to
// them before anything is sent over the wire.
package models

import "fmt"

// Priority of a task, as defined by the backend enum.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Valid reports whether p is one of the known priority values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// ParsePriority converts a raw string into a Priority.
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown priority %q", s)
	}
	return p, nil
}

// Status of a task. The server accepts any of the three values directly,
// there is no enforced transition order.
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ParseStatus converts a raw string into a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return st, nil
}

// StatusFilter selects a subset of tasks by status. FilterAll matches
// every status.
type StatusFilter string

const FilterAll StatusFilter = "ALL"

// FilterFor returns the filter matching exactly the given status.
func FilterFor(s Status) StatusFilter {
	return StatusFilter(s)
}

// ParseStatusFilter converts a raw string into a StatusFilter.
func ParseStatusFilter(s string) (StatusFilter, error) {
	if StatusFilter(s) == FilterAll {
		return FilterAll, nil
	}
	st, err := ParseStatus(s)
	if err != nil {
		return "", fmt.Errorf("unknown status filter %q", s)
	}
	return FilterFor(st), nil
}

// Status returns the concrete status a non-ALL filter selects.
// For FilterAll the result is meaningless; check the filter first.
func (f StatusFilter) Status() Status {
	return Status(f)
}

// Matches reports whether a task with status s passes the filter.
func (f StatusFilter) Matches(s Status) bool {
	return f == FilterAll || Status(f) == s
}

// Task is a unit of work owned by exactly one user. ID is assigned by the
// server and is immutable once set; a Task fetched from the server always
// carries one.
type Task struct {
	ID          int64    `json:"taskId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
}

// TaskDraft is a client-constructed payload for create and update calls.
// Updates are full replaces: every field is sent, the server preserves
// nothing from the previous version.
type TaskDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
}

// DraftOf builds a full-replace draft from an existing task.
func DraftOf(t Task) TaskDraft {
	return TaskDraft{
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
	}
}
