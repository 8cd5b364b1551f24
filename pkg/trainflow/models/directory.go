package models

// UpsertDirectoryEntryRequest sets an employee's manager and display name in
// the directory.
type UpsertDirectoryEntryRequest struct {
	EmployeeEmpID string `json:"employeeEmpid"`
	ManagerEmpID  string `json:"managerEmpid"`
	EmployeeName  string `json:"employeeName"`
}
