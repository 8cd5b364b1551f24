package controllers

import "net/http"

// RegisterRoutes wires the HTTP routes for this controller.
func (c *TrainingRequestsController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/training-requests", c.RequireAuth(c.handleCreateRequest))
	mux.HandleFunc("GET /api/training-requests/my", c.RequireAuth(c.handleGetMyRequests))
	mux.HandleFunc("GET /api/training-requests/pending", c.RequireAuth(c.handleGetPendingRequests))
	mux.HandleFunc("PUT /api/training-requests/{id}/respond", c.RequireAuth(c.handleRespondToRequest))
}

func (c *TrainingsController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/trainings", c.RequireAuth(c.handleGetTrainings))
	mux.HandleFunc("GET /api/trainings/{id}", c.RequireAuth(c.handleGetTrainingById))
	mux.HandleFunc("POST /api/trainings", c.RequireAuth(c.handleCreateTraining))
}

func (c *AssignmentsController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/assignments/my", c.RequireAuth(c.handleGetMyAssignments))
}

func (c *DirectoryController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/directory", c.RequireAuth(c.handleUpsertEntry))
	mux.HandleFunc("GET /api/directory/reports", c.RequireAuth(c.handleGetReports))
}

func (c *UsersController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/users", c.RequireAuth(c.handleGetUsers))
	mux.HandleFunc("POST /api/users", c.RequireAuth(c.handleCreateUser))
	mux.HandleFunc("GET /api/users/{id}", c.RequireAuth(c.handleGetUserById))
	mux.HandleFunc("DELETE /api/users/{id}", c.RequireAuth(c.handleDeleteUser))
}

func (c *SessionController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/login", c.handleLogin)
	mux.HandleFunc("POST /api/logout", c.handleLogout)
}
