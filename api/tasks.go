package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"
)

type taskFilter struct {
	projectID *int
	status    string
	priority  string
}

// filterTasks returns the tasks matching every supplied filter, in the
// original order. Unsupplied filters match everything.
func filterTasks(tasks []*task, f taskFilter) []*task {
	filtered := make([]*task, 0, len(tasks))
	for _, t := range tasks {
		if f.projectID != nil && (t.ProjectID == nil || *t.ProjectID != *f.projectID) {
			continue
		}
		if f.status != "" && t.Status != f.status {
			continue
		}
		if f.priority != "" && t.Priority != f.priority {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

func (app *application) getTasksHandler(w http.ResponseWriter, r *http.Request) {
	u := getUserFromRequest(r)
	query := r.URL.Query()
	var f taskFilter
	if v := query.Get("project_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, errors.New("Invalid project"), http.StatusBadRequest)
			return
		}
		f.projectID = &id
	}
	f.status = query.Get("status")
	f.priority = query.Get("priority")

	userTasks := filterTasks(app.storage.tasksAssignedTo(u.ID), f)
	writeJSON(w, http.StatusOK, userTasks)
}

func (app *application) createTaskHandler(w http.ResponseWriter, r *http.Request) {
	u := getUserFromRequest(r)
	var input struct {
		Title       string     `json:"title"`
		Description string     `json:"description"`
		ProjectID   *int       `json:"project_id"`
		AssignedTo  *int       `json:"assigned_to"`
		Priority    string     `json:"priority"`
		Status      string     `json:"status"`
		DueDate     *time.Time `json:"due_date"`
		Tags        []string   `json:"tags"`
	}
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}
	if input.Priority == "" {
		input.Priority = "medium"
	}
	if input.Status == "" {
		input.Status = "todo"
	}
	v := newValidator()
	v.checkCond(input.Title != "", "Task title is required")
	v.checkPriority(input.Priority)
	if v.hasErrors() {
		writeError(w, v.toError(), http.StatusBadRequest)
		return
	}
	if input.ProjectID != nil && app.storage.getProject(*input.ProjectID) == nil {
		writeError(w, errors.New("Invalid project"), http.StatusBadRequest)
		return
	}
	assignedTo := u.ID
	if input.AssignedTo != nil {
		if app.storage.getUserByID(*input.AssignedTo) == nil {
			writeError(w, errors.New("Invalid assignee"), http.StatusBadRequest)
			return
		}
		assignedTo = *input.AssignedTo
	}
	t := app.storage.insertTask(&task{
		Title:       input.Title,
		Description: input.Description,
		ProjectID:   input.ProjectID,
		AssignedTo:  assignedTo,
		CreatedBy:   u.ID,
		Priority:    input.Priority,
		Status:      input.Status,
		DueDate:     input.DueDate,
		Tags:        input.Tags,
	})
	writeJSON(w, http.StatusCreated, t)
}

func (app *application) updateTaskHandler(w http.ResponseWriter, r *http.Request) {
	u := getUserFromRequest(r)
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, errors.New("Task not found"), http.StatusNotFound)
		return
	}
	t := app.storage.getTask(id)
	if t == nil {
		writeError(w, errors.New("Task not found"), http.StatusNotFound)
		return
	}
	if t.AssignedTo != u.ID && t.CreatedBy != u.ID {
		writeError(w, errors.New("Not authorized"), http.StatusForbidden)
		return
	}
	var patch taskPatch
	err = json.NewDecoder(r.Body).Decode(&patch)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}
	v := newValidator()
	if patch.Priority != nil {
		v.checkPriority(*patch.Priority)
	}
	if v.hasErrors() {
		writeError(w, v.toError(), http.StatusBadRequest)
		return
	}
	t, err = app.storage.updateTask(id, patch)
	if err != nil {
		writeError(w, errors.New("Task not found"), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (app *application) deleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	u := getUserFromRequest(r)
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, errors.New("Task not found"), http.StatusNotFound)
		return
	}
	t := app.storage.getTask(id)
	if t == nil {
		writeError(w, errors.New("Task not found"), http.StatusNotFound)
		return
	}
	if t.CreatedBy != u.ID {
		writeError(w, errors.New("Not authorized"), http.StatusForbidden)
		return
	}
	t, err = app.storage.deleteTask(id)
	if err != nil {
		writeError(w, errors.New("Task not found"), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, t)
}
