package controllers

import (
	"log/slog"
	"net/http"

	"github.com/crafthr/trainflow/internal/util"
	"github.com/crafthr/trainflow/pkg/trainflow/domain"
	"github.com/crafthr/trainflow/pkg/trainflow/models"
)

// AssignmentRepo defines the read interface for confirmed enrollments,
// matching repository.TrainingAssignmentRepository.
type AssignmentRepo interface {
	FindByEmployee(employeeEmpID string) (*[]domain.TrainingAssignment, error)
}

// AssignmentsController serves the enrollments created by approved requests.
type AssignmentsController struct {
	AuthController
	Assignments AssignmentRepo
}

func NewAssignmentsController(assignments AssignmentRepo, userRepo UserRepo) *AssignmentsController {
	return &AssignmentsController{
		Assignments: assignments,
		AuthController: AuthController{
			UserRepo: userRepo,
		},
	}
}

// handleGetMyAssignments returns the caller's confirmed enrollments.
func (c *AssignmentsController) handleGetMyAssignments(w http.ResponseWriter, r *http.Request) {
	username := usernameFromContext(r.Context())
	if username == "" {
		util.WriteJSONError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	assignments, err := c.Assignments.FindByEmployee(username)
	if err != nil {
		slog.Error("Failed to get assignments", "error", err)
		util.WriteJSONError(w, http.StatusInternalServerError, "Failed to get assignments")
		return
	}

	views := make([]models.TrainingAssignmentApiResponse, 0, len(*assignments))
	for _, a := range *assignments {
		views = append(views, models.TrainingAssignmentApiResponse{
			ID:            a.ID,
			TrainingID:    a.TrainingID,
			EmployeeEmpID: a.EmployeeEmpID,
			ManagerEmpID:  a.ManagerEmpID,
			AssignedDate:  a.AssignedDate,
		})
	}
	util.WriteJSONResponse(w, http.StatusOK, views)
}
