package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeTask(title, status, priority string, projectID *int) *task {
	return &task{Title: title, Status: status, Priority: priority, ProjectID: projectID}
}

func TestFilterTasks(t *testing.T) {
	p1, p2 := 1, 2
	tasks := []*task{
		makeTask("a", "todo", "high", &p1),
		makeTask("b", "in_progress", "medium", &p1),
		makeTask("c", "completed", "high", &p2),
		makeTask("d", "completed", "low", nil),
	}

	titles := func(ts []*task) []string {
		out := []string{}
		for _, tk := range ts {
			out = append(out, tk.Title)
		}
		return out
	}

	tests := []struct {
		name   string
		filter taskFilter
		want   []string
	}{
		{"no filters", taskFilter{}, []string{"a", "b", "c", "d"}},
		{"by status", taskFilter{status: "completed"}, []string{"c", "d"}},
		{"by priority", taskFilter{priority: "high"}, []string{"a", "c"}},
		{"by project", taskFilter{projectID: &p1}, []string{"a", "b"}},
		{"status and priority", taskFilter{status: "completed", priority: "high"}, []string{"c"}},
		{"no match", taskFilter{status: "completed", priority: "medium"}, []string{}},
		{"nil project never matches a project filter", taskFilter{projectID: &p2, status: "completed"}, []string{"c"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, titles(filterTasks(tasks, tc.filter)))
		})
	}
}

func TestFilterTasksDoesNotMutateInput(t *testing.T) {
	tasks := []*task{
		makeTask("a", "todo", "high", nil),
		makeTask("b", "completed", "low", nil),
	}
	filtered := filterTasks(tasks, taskFilter{status: "completed"})
	assert.Len(t, filtered, 1)
	assert.Len(t, tasks, 2)
}
