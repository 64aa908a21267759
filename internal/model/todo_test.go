package model

import (
	"testing"
	"time"
)

func TestTodo_IsOverdue(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		todo Todo
		want bool
	}{
		{
			name: "due in the future",
			todo: Todo{DueDate: now.Add(time.Hour)},
			want: false,
		},
		{
			name: "due in the past and incomplete",
			todo: Todo{DueDate: now.Add(-time.Hour)},
			want: true,
		},
		{
			name: "due in the past but complete",
			todo: Todo{DueDate: now.Add(-time.Hour), IsComplete: true},
			want: false,
		},
		{
			name: "due exactly now",
			todo: Todo{DueDate: now},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.todo.IsOverdue(now); got != tt.want {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.want)
			}
		})
	}
}
