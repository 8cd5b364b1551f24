package models

import (
	"time"
)

// CreateTrainingRequestRequest is the payload for requesting enrollment in a
// course. The requesting employee comes from the authenticated context, not
// the payload.
type CreateTrainingRequestRequest struct {
	TrainingID int64 `json:"trainingId"`
}

// RespondTrainingRequestRequest is the payload for a manager's decision.
type RespondTrainingRequestRequest struct {
	Status       string `json:"status"`
	ManagerNotes string `json:"managerNotes,omitempty"`
}

// EmployeeApiResponse is the employee sub-object on a request response.
// Name is only populated on manager-facing views, where it is resolved from
// the directory rather than the employee's own user record.
type EmployeeApiResponse struct {
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// TrainingApiResponse is the course sub-object on a request response.
type TrainingApiResponse struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Category      string `json:"category,omitempty"`
	DurationHours int64  `json:"durationHours,omitempty"`
}

// TrainingRequestApiResponse represents the API response for a training
// request, joined with its course and employee identity.
type TrainingRequestApiResponse struct {
	ID            int64               `json:"id"`
	TrainingID    int64               `json:"trainingId"`
	EmployeeEmpID string              `json:"employeeEmpid"`
	ManagerEmpID  string              `json:"managerEmpid"`
	RequestDate   time.Time           `json:"requestDate"`
	Status        string              `json:"status"`
	ManagerNotes  string              `json:"managerNotes,omitempty"`
	ResponseDate  *time.Time          `json:"responseDate,omitempty"`
	Training      TrainingApiResponse `json:"training"`
	Employee      EmployeeApiResponse `json:"employee"`
}
