package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
)

func (app *application) getProjectsHandler(w http.ResponseWriter, r *http.Request) {
	u := getUserFromRequest(r)
	owned := app.storage.projectsOwnedBy(u.ID)
	type projectWithCount struct {
		*project
		TaskCount int `json:"task_count"`
	}
	result := make([]projectWithCount, 0, len(owned))
	for _, p := range owned {
		result = append(result, projectWithCount{
			project:   p,
			TaskCount: app.storage.countTasksForProject(p.ID),
		})
	}
	writeJSON(w, http.StatusOK, result)
}

func (app *application) createProjectHandler(w http.ResponseWriter, r *http.Request) {
	u := getUserFromRequest(r)
	var input struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}
	v := newValidator()
	v.checkCond(input.Name != "", "Project name is required")
	if v.hasErrors() {
		writeError(w, v.toError(), http.StatusBadRequest)
		return
	}
	p := app.storage.insertProject(&project{
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     u.ID,
		Status:      "active",
	})
	writeJSON(w, http.StatusCreated, p)
}

func (app *application) updateProjectHandler(w http.ResponseWriter, r *http.Request) {
	u := getUserFromRequest(r)
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, errors.New("Project not found"), http.StatusNotFound)
		return
	}
	p := app.storage.getProject(id)
	if p == nil {
		writeError(w, errors.New("Project not found"), http.StatusNotFound)
		return
	}
	if p.OwnerID != u.ID {
		writeError(w, errors.New("Not authorized"), http.StatusForbidden)
		return
	}
	var patch projectPatch
	err = json.NewDecoder(r.Body).Decode(&patch)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}
	p, err = app.storage.updateProject(id, patch)
	if err != nil {
		writeError(w, errors.New("Project not found"), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (app *application) deleteProjectHandler(w http.ResponseWriter, r *http.Request) {
	u := getUserFromRequest(r)
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, errors.New("Project not found"), http.StatusNotFound)
		return
	}
	p := app.storage.getProject(id)
	if p == nil {
		writeError(w, errors.New("Project not found"), http.StatusNotFound)
		return
	}
	if p.OwnerID != u.ID {
		writeError(w, errors.New("Not authorized"), http.StatusForbidden)
		return
	}
	p, err = app.storage.deleteProject(id)
	if err != nil {
		writeError(w, errors.New("Project not found"), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
