package domain

// ManagerEmployee maps an employee to their manager. It is also the only
// place the employee display name is stored.
type ManagerEmployee struct {
	ID            int64
	EmployeeEmpID string
	ManagerEmpID  string
	EmployeeName  string
}
