package repository

import (
	"database/sql"

	"github.com/crafthr/trainflow/pkg/trainflow/domain"
)

// ManagerEmployeeRepository provides persistence methods for the employee
// directory. The workflow reads manager relationships and display names from
// it and never mutates them.
type ManagerEmployeeRepository struct {
	db *sql.DB
}

func NewManagerEmployeeRepository(db *sql.DB) *ManagerEmployeeRepository {
	return &ManagerEmployeeRepository{db: db}
}

// FindByEmployee fetches the directory row for an employee. Returns
// (nil, nil) if the employee has no manager on record.
func (r *ManagerEmployeeRepository) FindByEmployee(employeeEmpID string) (*domain.ManagerEmployee, error) {
	query := `
        SELECT id, employee_empid, manager_empid, employee_name
        FROM manager_employees
        WHERE employee_empid = ` + placeholder(1) + `
        LIMIT 1
    `
	var me domain.ManagerEmployee
	err := r.db.QueryRow(query, employeeEmpID).Scan(
		&me.ID,
		&me.EmployeeEmpID,
		&me.ManagerEmpID,
		&me.EmployeeName,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &me, nil
}

// FindByManager returns the direct reports of a manager.
func (r *ManagerEmployeeRepository) FindByManager(managerEmpID string) (*[]domain.ManagerEmployee, error) {
	query := `
        SELECT id, employee_empid, manager_empid, employee_name
        FROM manager_employees
        WHERE manager_empid = ` + placeholder(1) + `
        ORDER BY employee_name ASC
    `
	rows, err := r.db.Query(query, managerEmpID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.ManagerEmployee, 0)
	for rows.Next() {
		var me domain.ManagerEmployee
		if err := rows.Scan(
			&me.ID,
			&me.EmployeeEmpID,
			&me.ManagerEmpID,
			&me.EmployeeName,
		); err != nil {
			return nil, err
		}
		entries = append(entries, me)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &entries, nil
}

// Upsert inserts or replaces the directory row for an employee. Used by the
// admin directory endpoint, not by the workflow itself.
func (r *ManagerEmployeeRepository) Upsert(me *domain.ManagerEmployee) error {
	existing, err := r.FindByEmployee(me.EmployeeEmpID)
	if err != nil {
		return err
	}
	if existing != nil {
		query := `
            UPDATE manager_employees
            SET manager_empid = ` + placeholder(1) + `, employee_name = ` + placeholder(2) + `
            WHERE employee_empid = ` + placeholder(3) + `
        `
		_, err := r.db.Exec(query, me.ManagerEmpID, me.EmployeeName, me.EmployeeEmpID)
		return err
	}
	query := `
        INSERT INTO manager_employees (employee_empid, manager_empid, employee_name)
        VALUES (` + placeholder(1) + `,` + placeholder(2) + `,` + placeholder(3) + `)
    `
	_, err = r.db.Exec(query, me.EmployeeEmpID, me.ManagerEmpID, me.EmployeeName)
	return err
}
