package controllers

import (
	"log/slog"
	"net/http"

	"github.com/crafthr/trainflow/internal/util"
	"github.com/crafthr/trainflow/pkg/trainflow/domain"
	"github.com/crafthr/trainflow/pkg/trainflow/models"
)

// DirectoryRepo defines the interface for the employee directory, matching
// repository.ManagerEmployeeRepository.
type DirectoryRepo interface {
	FindByEmployee(employeeEmpID string) (*domain.ManagerEmployee, error)
	FindByManager(managerEmpID string) (*[]domain.ManagerEmployee, error)
	Upsert(me *domain.ManagerEmployee) error
}

// DirectoryController maintains the employee->manager mapping the workflow
// resolves managers from.
type DirectoryController struct {
	AuthController
	Directory DirectoryRepo
}

func NewDirectoryController(directory DirectoryRepo, userRepo UserRepo) *DirectoryController {
	return &DirectoryController{
		Directory: directory,
		AuthController: AuthController{
			UserRepo: userRepo,
		},
	}
}

// handleUpsertEntry sets an employee's manager and display name.
func (c *DirectoryController) handleUpsertEntry(w http.ResponseWriter, r *http.Request) {
	req, err := util.DecodeJSONBody[models.UpsertDirectoryEntryRequest](r)
	if err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.EmployeeEmpID == "" || req.ManagerEmpID == "" || req.EmployeeName == "" {
		util.WriteJSONError(w, http.StatusBadRequest, "employeeEmpid, managerEmpid and employeeName are required")
		return
	}

	entry := domain.ManagerEmployee{
		EmployeeEmpID: req.EmployeeEmpID,
		ManagerEmpID:  req.ManagerEmpID,
		EmployeeName:  req.EmployeeName,
	}
	if err := c.Directory.Upsert(&entry); err != nil {
		slog.Error("Failed to upsert directory entry", "error", err)
		util.WriteJSONError(w, http.StatusInternalServerError, "Failed to update directory")
		return
	}

	util.WriteJSONResponse(w, http.StatusOK, entry)
}

// handleGetReports returns the caller's direct reports.
func (c *DirectoryController) handleGetReports(w http.ResponseWriter, r *http.Request) {
	username := usernameFromContext(r.Context())
	if username == "" {
		util.WriteJSONError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	reports, err := c.Directory.FindByManager(username)
	if err != nil {
		slog.Error("Failed to get direct reports", "error", err)
		util.WriteJSONError(w, http.StatusInternalServerError, "Failed to get direct reports")
		return
	}
	util.WriteJSONResponse(w, http.StatusOK, reports)
}
