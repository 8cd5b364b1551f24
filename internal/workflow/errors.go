// Package workflow implements the training-request approval workflow:
// an employee requests enrollment in a course, the request routes to their
// manager, and the manager approves or rejects it. Approval creates a
// training assignment.
package workflow

import (
	"errors"
	"fmt"
)

// Sentinel errors for workflow operations.
var (
	ErrUnauthenticated = errors.New("no authenticated caller identity")
	ErrForbidden       = errors.New("caller is not the manager for this request")
	ErrInvalidStatus   = errors.New("status must be approved or rejected")
)

// NotFoundError reports a missing referenced entity (training, manager,
// request).
type NotFoundError struct {
	What string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.What)
}

// ConflictError reports a request-state conflict: a duplicate request or a
// transition on an already-responded request.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}
