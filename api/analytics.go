package main

import (
	"net/http"
	"time"
)

type dashboardStats struct {
	TotalTasks           int            `json:"total_tasks"`
	TotalProjects        int            `json:"total_projects"`
	StatusDistribution   map[string]int `json:"status_distribution"`
	PriorityDistribution map[string]int `json:"priority_distribution"`
	OverdueTasks         int            `json:"overdue_tasks"`
	CompletionRate       float64        `json:"completion_rate"`
}

// computeDashboardStats aggregates an actor-scoped task and project
// collection. A task is overdue when it has a due date strictly before now
// and is not completed.
func computeDashboardStats(tasks []*task, projects []*project, now time.Time) dashboardStats {
	stats := dashboardStats{
		TotalTasks:           len(tasks),
		TotalProjects:        len(projects),
		StatusDistribution:   make(map[string]int),
		PriorityDistribution: make(map[string]int),
	}
	completed := 0
	for _, t := range tasks {
		stats.StatusDistribution[t.Status]++
		stats.PriorityDistribution[t.Priority]++
		if t.Status == "completed" {
			completed++
		}
		if t.DueDate != nil && t.Status != "completed" && t.DueDate.Before(now) {
			stats.OverdueTasks++
		}
	}
	if len(tasks) > 0 {
		stats.CompletionRate = float64(completed) / float64(len(tasks)) * 100
	}
	return stats
}

func (app *application) getDashboardAnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	u := getUserFromRequest(r)
	stats := computeDashboardStats(
		app.storage.tasksAssignedTo(u.ID),
		app.storage.projectsOwnedBy(u.ID),
		time.Now(),
	)
	writeJSON(w, http.StatusOK, stats)
}
