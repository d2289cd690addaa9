package main

import (
	"net/http"
)

func composeRoutes(app *application) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/healthcheck", app.healthCheckHandler)

	mux.HandleFunc("POST /auth/login", app.loginHandler)
	mux.HandleFunc("POST /auth/logout", app.requireAuth(app.logoutHandler))

	mux.HandleFunc("POST /users", app.createUserHandler)
	mux.HandleFunc("GET /users/profile", app.requireAuth(app.getProfileHandler))
	mux.HandleFunc("GET /users/{id}", app.getUserHandler)
	mux.HandleFunc("PUT /users/{id}", app.updateUserHandler)
	mux.HandleFunc("DELETE /users/{id}", app.deleteUserHandler)

	mux.HandleFunc("GET /projects", app.requireAuth(app.getProjectsHandler))
	mux.HandleFunc("POST /projects", app.requireAuth(app.createProjectHandler))
	mux.HandleFunc("PUT /projects/{id}", app.requireAuth(app.updateProjectHandler))
	mux.HandleFunc("DELETE /projects/{id}", app.requireAuth(app.deleteProjectHandler))

	mux.HandleFunc("GET /tasks", app.requireAuth(app.getTasksHandler))
	mux.HandleFunc("POST /tasks", app.requireAuth(app.createTaskHandler))
	mux.HandleFunc("PUT /tasks/{id}", app.requireAuth(app.updateTaskHandler))
	mux.HandleFunc("DELETE /tasks/{id}", app.requireAuth(app.deleteTaskHandler))

	mux.HandleFunc("GET /analytics/dashboard", app.requireAuth(app.getDashboardAnalyticsHandler))

	return app.logRequests(mux)
}
