package domain

import "time"
import "database/sql"

// TrainingRequest status values. A request starts pending and transitions
// exactly once to approved or rejected.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type TrainingRequest struct {
	ID            int64
	TrainingID    int64
	EmployeeEmpID string
	ManagerEmpID  string
	RequestDate   time.Time
	Status        string
	ManagerNotes  sql.NullString
	ResponseDate  sql.NullTime
}
