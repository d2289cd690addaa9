package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeDashboardStats(t *testing.T) {
	now := time.Now()
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tasks := []*task{
		{Title: "a", Status: "completed", Priority: "high", DueDate: &future},
		{Title: "b", Status: "todo", Priority: "medium", DueDate: &past},
		{Title: "c", Status: "in_progress", Priority: "medium"},
	}
	projects := []*project{{Name: "p"}}

	stats := computeDashboardStats(tasks, projects, now)
	assert.Equal(t, 3, stats.TotalTasks)
	assert.Equal(t, 1, stats.TotalProjects)
	assert.Equal(t, map[string]int{"completed": 1, "todo": 1, "in_progress": 1}, stats.StatusDistribution)
	assert.Equal(t, map[string]int{"high": 1, "medium": 2}, stats.PriorityDistribution)
	assert.Equal(t, 1, stats.OverdueTasks)
	assert.InDelta(t, 33.333, stats.CompletionRate, 0.001)
}

func TestComputeDashboardStatsEmpty(t *testing.T) {
	stats := computeDashboardStats(nil, nil, time.Now())
	assert.Equal(t, 0, stats.TotalTasks)
	assert.Equal(t, 0, stats.OverdueTasks)
	assert.Zero(t, stats.CompletionRate)
}

func TestOverdueExcludesCompletedTasks(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	tasks := []*task{
		{Title: "late but done", Status: "completed", Priority: "low", DueDate: &past},
		{Title: "no due date", Status: "todo", Priority: "low"},
	}
	stats := computeDashboardStats(tasks, nil, now)
	assert.Equal(t, 0, stats.OverdueTasks)
	assert.InDelta(t, 50.0, stats.CompletionRate, 0.001)
}
