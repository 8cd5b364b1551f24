package workflow

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/crafthr/trainflow/internal/repository"
	"github.com/crafthr/trainflow/pkg/trainflow/domain"
	"github.com/crafthr/trainflow/pkg/trainflow/models"
)

// RequestManager enforces the request/approve/reject state machine over the
// request store, the assignment store, the course catalog and the employee
// directory.
type RequestManager struct {
	Requests  RequestRepo
	Trainings CatalogRepo
	Directory DirectoryRepo
}

func NewRequestManager(requests RequestRepo, trainings CatalogRepo, directory DirectoryRepo) *RequestManager {
	return &RequestManager{
		Requests:  requests,
		Trainings: trainings,
		Directory: directory,
	}
}

// CreateRequest opens the approval workflow for an employee and a course.
// The manager is resolved from the directory at creation time and stored on
// the request, so later directory changes do not reroute it.
func (m *RequestManager) CreateRequest(ctx context.Context, employeeEmpID string, trainingID int64) (*models.TrainingRequestApiResponse, error) {
	if employeeEmpID == "" {
		return nil, ErrUnauthenticated
	}

	training, err := m.Trainings.FindByID(trainingID)
	if err != nil {
		return nil, err
	}
	if training == nil {
		return nil, &NotFoundError{What: "training"}
	}

	relation, err := m.Directory.FindByEmployee(employeeEmpID)
	if err != nil {
		return nil, err
	}
	if relation == nil {
		return nil, &NotFoundError{What: "manager"}
	}

	existing, err := m.Requests.FindByTrainingAndEmployee(trainingID, employeeEmpID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ConflictError{Reason: "duplicate request"}
	}

	req := &domain.TrainingRequest{
		TrainingID:    trainingID,
		EmployeeEmpID: employeeEmpID,
		ManagerEmpID:  relation.ManagerEmpID,
		Status:        domain.StatusPending,
	}
	if _, err := m.Requests.Save(req); err != nil {
		// The unique index closes the race two concurrent creators can win
		// against the existence check above.
		if errors.Is(err, repository.ErrDuplicateRequest) {
			return nil, &ConflictError{Reason: "duplicate request"}
		}
		return nil, err
	}

	slog.InfoContext(ctx, "Created training request",
		"requestId", req.ID, "trainingId", trainingID, "employee", employeeEmpID, "manager", relation.ManagerEmpID)

	view := projectRow(repository.TrainingRequestRow{Request: *req, Training: *training})
	return &view, nil
}

// ListMyRequests returns the caller's requests, newest first, joined with
// their courses. The employee sub-object carries only the login identity.
func (m *RequestManager) ListMyRequests(ctx context.Context, employeeEmpID string) ([]models.TrainingRequestApiResponse, error) {
	if employeeEmpID == "" {
		return nil, ErrUnauthenticated
	}
	rows, err := m.Requests.FindByEmployee(employeeEmpID)
	if err != nil {
		return nil, err
	}
	return projectRows(*rows), nil
}

// ListPendingRequests returns the requests awaiting the calling manager's
// decision, newest first. The employee display name comes from the
// directory, which is the only place it is stored.
func (m *RequestManager) ListPendingRequests(ctx context.Context, managerEmpID string) ([]models.TrainingRequestApiResponse, error) {
	if managerEmpID == "" {
		return nil, ErrUnauthenticated
	}
	rows, err := m.Requests.FindPendingByManager(managerEmpID)
	if err != nil {
		return nil, err
	}
	return projectRows(*rows), nil
}

// RespondToRequest applies the manager's decision. A pending request
// transitions exactly once; approval also creates the training assignment in
// the same storage transaction.
func (m *RequestManager) RespondToRequest(ctx context.Context, managerEmpID string, requestID int64, status string, notes string) (*models.TrainingRequestApiResponse, error) {
	if managerEmpID == "" {
		return nil, ErrUnauthenticated
	}
	if status != domain.StatusApproved && status != domain.StatusRejected {
		return nil, ErrInvalidStatus
	}

	req, err := m.Requests.FindByID(requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, &NotFoundError{What: "request"}
	}
	if req.ManagerEmpID != managerEmpID {
		return nil, ErrForbidden
	}
	if req.Status != domain.StatusPending {
		return nil, &ConflictError{Reason: "already responded"}
	}

	managerNotes := sql.NullString{String: notes, Valid: notes != ""}
	transitioned, err := m.Requests.Respond(requestID, status, managerNotes)
	if err != nil {
		return nil, err
	}
	if !transitioned {
		// A concurrent responder won the compare-and-swap.
		return nil, &ConflictError{Reason: "already responded"}
	}

	slog.InfoContext(ctx, "Responded to training request",
		"requestId", requestID, "status", status, "manager", managerEmpID)

	row, err := m.Requests.FindRowByID(requestID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		// Unreachable given the update just succeeded.
		return nil, &NotFoundError{What: "request"}
	}
	view := projectRow(*row)
	return &view, nil
}

// projectRow reshapes a joined request row into the nested API response.
// It is the single assembly point for both the manager listing and the
// respond operation; the directory name is included whenever the query
// supplied one.
func projectRow(row repository.TrainingRequestRow) models.TrainingRequestApiResponse {
	resp := models.TrainingRequestApiResponse{
		ID:            row.Request.ID,
		TrainingID:    row.Request.TrainingID,
		EmployeeEmpID: row.Request.EmployeeEmpID,
		ManagerEmpID:  row.Request.ManagerEmpID,
		RequestDate:   row.Request.RequestDate,
		Status:        row.Request.Status,
		Training: models.TrainingApiResponse{
			ID:    row.Training.ID,
			Title: row.Training.Title,
		},
		Employee: models.EmployeeApiResponse{
			Username: row.Request.EmployeeEmpID,
		},
	}
	if row.Request.ManagerNotes.Valid {
		resp.ManagerNotes = row.Request.ManagerNotes.String
	}
	if row.Request.ResponseDate.Valid {
		t := row.Request.ResponseDate.Time
		resp.ResponseDate = &t
	}
	if row.Training.Description.Valid {
		resp.Training.Description = row.Training.Description.String
	}
	if row.Training.Category.Valid {
		resp.Training.Category = row.Training.Category.String
	}
	if row.Training.DurationHours.Valid {
		resp.Training.DurationHours = row.Training.DurationHours.Int64
	}
	if row.EmployeeName.Valid {
		resp.Employee.Name = row.EmployeeName.String
	}
	return resp
}

func projectRows(rows []repository.TrainingRequestRow) []models.TrainingRequestApiResponse {
	results := make([]models.TrainingRequestApiResponse, 0, len(rows))
	for _, row := range rows {
		results = append(results, projectRow(row))
	}
	return results
}
