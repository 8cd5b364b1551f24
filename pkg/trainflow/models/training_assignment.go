package models

import "time"

// TrainingAssignmentApiResponse represents a confirmed enrollment.
type TrainingAssignmentApiResponse struct {
	ID            int64     `json:"id"`
	TrainingID    int64     `json:"trainingId"`
	EmployeeEmpID string    `json:"employeeEmpid"`
	ManagerEmpID  string    `json:"managerEmpid"`
	AssignedDate  time.Time `json:"assignedDate"`
}
