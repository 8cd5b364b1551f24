package repository

import (
	"database/sql"

	"github.com/crafthr/trainflow/pkg/trainflow/core"
	"github.com/crafthr/trainflow/pkg/trainflow/domain"
)

// TrainingAssignmentRepository provides persistence methods for the
// training_assignments table. Assignments are only ever created here or as
// part of an approval transition; nothing in the workflow deletes them.
type TrainingAssignmentRepository struct {
	db    *sql.DB
	clock core.Clock
}

func NewTrainingAssignmentRepository(db *sql.DB, clock core.Clock) *TrainingAssignmentRepository {
	return &TrainingAssignmentRepository{db: db, clock: clock}
}

// execer is satisfied by both *sql.DB and *sql.Tx, so the assignment insert
// can run inside the approval transaction.
type execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

func insertAssignment(e execer, a *domain.TrainingAssignment) error {
	query := `
        INSERT INTO training_assignments (training_id, employee_empid, manager_empid, assigned_date)
        VALUES (` + placeholder(1) + `,` + placeholder(2) + `,` + placeholder(3) + `,` + placeholder(4) + `)
    `
	_, err := e.Exec(query,
		a.TrainingID,
		a.EmployeeEmpID,
		a.ManagerEmpID,
		formatDateInDatabase(a.AssignedDate),
	)
	return err
}

// Save inserts a new assignment. AssignedDate is set to now if not provided.
func (r *TrainingAssignmentRepository) Save(a *domain.TrainingAssignment) error {
	if a.AssignedDate.IsZero() {
		a.AssignedDate = r.clock.Now().UTC()
	}
	return insertAssignment(r.db, a)
}

// FindByEmployee returns the employee's assignments, newest first.
func (r *TrainingAssignmentRepository) FindByEmployee(employeeEmpID string) (*[]domain.TrainingAssignment, error) {
	query := `
        SELECT id, training_id, employee_empid, manager_empid, assigned_date
        FROM training_assignments
        WHERE employee_empid = ` + placeholder(1) + `
        ORDER BY assigned_date DESC
    `
	rows, err := r.db.Query(query, employeeEmpID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]domain.TrainingAssignment, 0)
	for rows.Next() {
		var a domain.TrainingAssignment
		if err := rows.Scan(
			&a.ID,
			&a.TrainingID,
			&a.EmployeeEmpID,
			&a.ManagerEmpID,
			&a.AssignedDate,
		); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &assignments, nil
}

// FindByTrainingAndEmployee fetches the assignment for a (training, employee)
// pair. Returns (nil, nil) if none exists.
func (r *TrainingAssignmentRepository) FindByTrainingAndEmployee(trainingID int64, employeeEmpID string) (*domain.TrainingAssignment, error) {
	query := `
        SELECT id, training_id, employee_empid, manager_empid, assigned_date
        FROM training_assignments
        WHERE training_id = ` + placeholder(1) + ` AND employee_empid = ` + placeholder(2) + `
        LIMIT 1
    `
	var a domain.TrainingAssignment
	err := r.db.QueryRow(query, trainingID, employeeEmpID).Scan(
		&a.ID,
		&a.TrainingID,
		&a.EmployeeEmpID,
		&a.ManagerEmpID,
		&a.AssignedDate,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
