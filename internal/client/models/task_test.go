package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatusFilter(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    StatusFilter
		wantErr bool
	}{
		{name: "all", in: "ALL", want: FilterAll},
		{name: "todo", in: "TODO", want: FilterFor(StatusTodo)},
		{name: "in progress", in: "IN_PROGRESS", want: FilterFor(StatusInProgress)},
		{name: "completed", in: "COMPLETED", want: FilterFor(StatusCompleted)},
		{name: "lowercase is rejected", in: "todo", wantErr: true},
		{name: "garbage", in: "DONE", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatusFilter(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusFilter_Matches(t *testing.T) {
	assert.True(t, FilterAll.Matches(StatusTodo))
	assert.True(t, FilterAll.Matches(StatusCompleted))
	assert.True(t, FilterFor(StatusTodo).Matches(StatusTodo))
	assert.False(t, FilterFor(StatusTodo).Matches(StatusCompleted))
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("MEDIUM")
	require.NoError(t, err)
	assert.Equal(t, PriorityMedium, p)

	_, err = ParsePriority("URGENT")
	require.Error(t, err)
}

func TestDraftOf_FullReplace(t *testing.T) {
	task := Task{
		ID:          7,
		Title:       "Buy milk",
		Description: "2 liters",
		Priority:    PriorityLow,
		Status:      StatusInProgress,
	}

	d := DraftOf(task)
	assert.Equal(t, TaskDraft{
		Title:       "Buy milk",
		Description: "2 liters",
		Priority:    PriorityLow,
		Status:      StatusInProgress,
	}, d)
}
