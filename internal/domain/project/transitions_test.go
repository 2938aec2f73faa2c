package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    TaskStatus
		to      TaskStatus
		allowed bool
	}{
		{"todo to in_progress", TaskTodo, TaskInProgress, true},
		{"in_progress back to todo", TaskInProgress, TaskTodo, true},
		{"in_progress to review", TaskInProgress, TaskReview, true},
		{"review to done", TaskReview, TaskDone, true},
		{"done reopened to review", TaskDone, TaskReview, true},
		{"todo straight to done", TaskTodo, TaskDone, false},
		{"todo straight to review", TaskTodo, TaskReview, false},
		{"done back to todo", TaskDone, TaskTodo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestProjectTransitions(t *testing.T) {
	assert.True(t, CanTransitionProject(ProjectOpen, ProjectInProgress))
	assert.True(t, CanTransitionProject(ProjectInProgress, ProjectDone))
	assert.True(t, CanTransitionProject(ProjectDone, ProjectArchived))

	// Archived is terminal
	assert.False(t, CanTransitionProject(ProjectArchived, ProjectOpen))
	assert.False(t, CanTransitionProject(ProjectArchived, ProjectInProgress))

	assert.False(t, CanTransitionProject(ProjectOpen, ProjectDone))
}
