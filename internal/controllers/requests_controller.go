package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/crafthr/trainflow/internal/metrics"
	"github.com/crafthr/trainflow/internal/util"
	"github.com/crafthr/trainflow/pkg/trainflow/models"
)

// RequestWorkflow defines the interface for the approval workflow engine,
// matching workflow.RequestManager.
type RequestWorkflow interface {
	CreateRequest(ctx context.Context, employeeEmpID string, trainingID int64) (*models.TrainingRequestApiResponse, error)
	ListMyRequests(ctx context.Context, employeeEmpID string) ([]models.TrainingRequestApiResponse, error)
	ListPendingRequests(ctx context.Context, managerEmpID string) ([]models.TrainingRequestApiResponse, error)
	RespondToRequest(ctx context.Context, managerEmpID string, requestID int64, status string, notes string) (*models.TrainingRequestApiResponse, error)
}

// TrainingRequestsController holds dependencies for the training request
// HTTP endpoints.
type TrainingRequestsController struct {
	AuthController
	Workflow RequestWorkflow
}

func NewTrainingRequestsController(wf RequestWorkflow, userRepo UserRepo) *TrainingRequestsController {
	return &TrainingRequestsController{
		Workflow: wf,
		AuthController: AuthController{
			UserRepo: userRepo,
		},
	}
}

// handleCreateRequest lets an engineer request enrollment in a course,
// starting the approval workflow with their manager.
func (c *TrainingRequestsController) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	req, err := util.DecodeJSONBody[models.CreateTrainingRequestRequest](r)
	if err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.TrainingID <= 0 {
		util.WriteJSONError(w, http.StatusBadRequest, "trainingId is required")
		return
	}

	result, err := c.Workflow.CreateRequest(r.Context(), usernameFromContext(r.Context()), req.TrainingID)
	if err != nil {
		writeWorkflowError(w, err)
		return
	}

	metrics.RecordRequestCreated()
	util.WriteJSONResponse(w, http.StatusCreated, result)
}

// handleGetMyRequests returns all training requests made by the caller.
func (c *TrainingRequestsController) handleGetMyRequests(w http.ResponseWriter, r *http.Request) {
	results, err := c.Workflow.ListMyRequests(r.Context(), usernameFromContext(r.Context()))
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	util.WriteJSONResponse(w, http.StatusOK, results)
}

// handleGetPendingRequests returns the pending requests awaiting the calling
// manager's review.
func (c *TrainingRequestsController) handleGetPendingRequests(w http.ResponseWriter, r *http.Request) {
	results, err := c.Workflow.ListPendingRequests(r.Context(), usernameFromContext(r.Context()))
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	util.WriteJSONResponse(w, http.StatusOK, results)
}

// handleRespondToRequest lets a manager approve or reject a request.
func (c *TrainingRequestsController) handleRespondToRequest(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "id is an integer")
		return
	}

	req, err := util.DecodeJSONBody[models.RespondTrainingRequestRequest](r)
	if err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.Status == "" {
		util.WriteJSONError(w, http.StatusBadRequest, "status is required")
		return
	}

	result, err := c.Workflow.RespondToRequest(r.Context(), usernameFromContext(r.Context()), id, req.Status, req.ManagerNotes)
	if err != nil {
		writeWorkflowError(w, err)
		return
	}

	metrics.RecordRequestResponded(result.Status)
	util.WriteJSONResponse(w, http.StatusOK, result)
}
