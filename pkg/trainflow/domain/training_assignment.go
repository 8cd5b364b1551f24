package domain

import "time"

// TrainingAssignment is a confirmed enrollment, created when a request is
// approved. The fields mirror the request they were copied from.
type TrainingAssignment struct {
	ID            int64
	TrainingID    int64
	EmployeeEmpID string
	ManagerEmpID  string
	AssignedDate  time.Time
}
