package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/crafthr/trainflow/internal/util"
	"github.com/crafthr/trainflow/internal/workflow"
)

// writeWorkflowError maps the workflow error taxonomy onto HTTP statuses:
// Unauthenticated 401, Forbidden 403, NotFound 404, Conflict 409. Anything
// outside the taxonomy is a 500.
func writeWorkflowError(w http.ResponseWriter, err error) {
	var notFound *workflow.NotFoundError
	var conflict *workflow.ConflictError
	switch {
	case errors.Is(err, workflow.ErrUnauthenticated):
		util.WriteJSONError(w, http.StatusUnauthorized, "Could not validate credentials")
	case errors.Is(err, workflow.ErrForbidden):
		util.WriteJSONError(w, http.StatusForbidden, "You are not authorized to respond to this request")
	case errors.Is(err, workflow.ErrInvalidStatus):
		util.WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &notFound):
		util.WriteJSONError(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &conflict):
		util.WriteJSONError(w, http.StatusConflict, conflict.Error())
	default:
		slog.Error("Workflow operation failed", "error", err)
		util.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}
