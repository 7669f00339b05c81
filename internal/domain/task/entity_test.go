package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTask_Open(t *testing.T) {
	assert.True(t, Task{Status: StatusPending}.Open())
	assert.True(t, Task{Status: StatusInProgress}.Open())
	assert.True(t, Task{Status: StatusOverdue}.Open())
	assert.False(t, Task{Status: StatusCompleted}.Open())
}

func TestTask_CanTransition(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"pending to in_progress", StatusPending, StatusInProgress, true},
		{"overdue to in_progress", StatusOverdue, StatusInProgress, true},
		{"completed to in_progress", StatusCompleted, StatusInProgress, false},
		{"in_progress to in_progress", StatusInProgress, StatusInProgress, false},
		{"pending to completed", StatusPending, StatusCompleted, true},
		{"in_progress to completed", StatusInProgress, StatusCompleted, true},
		{"overdue to completed", StatusOverdue, StatusCompleted, true},
		{"completed to completed", StatusCompleted, StatusCompleted, false},
		{"in_progress to pending", StatusInProgress, StatusPending, false},
		{"pending to overdue", StatusPending, StatusOverdue, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Task{Status: tt.from}.CanTransition(tt.to))
		})
	}
}
