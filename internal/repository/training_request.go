package repository

import (
	"database/sql"
	"errors"

	"github.com/crafthr/trainflow/pkg/trainflow/core"
	"github.com/crafthr/trainflow/pkg/trainflow/domain"
)

// ErrDuplicateRequest is returned by Save when the (training, employee) pair
// already has a request. The unique index on training_requests enforces this
// even when two creators race past the application-level existence check.
var ErrDuplicateRequest = errors.New("training request already exists for this training and employee")

const REQUEST_COLUMNS = `tr.id, tr.training_id, tr.employee_empid, tr.manager_empid, tr.request_date, tr.status, tr.manager_notes, tr.response_date`
const TRAINING_COLUMNS = `td.id, td.title, td.description, td.category, td.duration_hours, td.created`

// TrainingRequestRow is a training request joined with its course and,
// on manager-facing queries, the employee display name from the directory.
type TrainingRequestRow struct {
	Request      domain.TrainingRequest
	Training     domain.TrainingDetail
	EmployeeName sql.NullString
}

// TrainingRequestRepository provides persistence methods for the
// training_requests table, including the approval transition.
type TrainingRequestRepository struct {
	db    *sql.DB
	clock core.Clock
}

func NewTrainingRequestRepository(db *sql.DB, clock core.Clock) *TrainingRequestRepository {
	return &TrainingRequestRepository{db: db, clock: clock}
}

// Save inserts a new pending request and returns its generated id.
// RequestDate is set to now if the caller did not provide one.
func (r *TrainingRequestRepository) Save(req *domain.TrainingRequest) (int64, error) {
	if req.RequestDate.IsZero() {
		req.RequestDate = r.clock.Now().UTC()
	}
	if req.Status == "" {
		req.Status = domain.StatusPending
	}

	base := `
        INSERT INTO training_requests (training_id, employee_empid, manager_empid, request_date, status, manager_notes, response_date)
        VALUES (` + placeholder(1) + `,` + placeholder(2) + `,` + placeholder(3) + `,` + placeholder(4) + `,` + placeholder(5) + `,` + placeholder(6) + `,` + placeholder(7) + `)
    `

	vals := []interface{}{
		req.TrainingID,
		req.EmployeeEmpID,
		req.ManagerEmpID,
		formatDateInDatabase(req.RequestDate),
		req.Status,
		req.ManagerNotes,
		formatDateInDatabaseNull(req.ResponseDate),
	}

	var id int64
	var err error
	if supportsReturning() {
		err = r.db.QueryRow(base+" RETURNING id", vals...).Scan(&id)
	} else {
		res, e := r.db.Exec(base, vals...)
		if e != nil {
			err = e
		} else {
			newID, e2 := res.LastInsertId()
			if e2 != nil {
				err = e2
			} else {
				id = newID
			}
		}
	}
	if isUniqueViolation(err) {
		return 0, ErrDuplicateRequest
	}
	if err != nil {
		return 0, err
	}
	req.ID = id
	return id, nil
}

// FindByID fetches a bare request by id. Returns (nil, nil) if not found.
func (r *TrainingRequestRepository) FindByID(id int64) (*domain.TrainingRequest, error) {
	query := `
        SELECT ` + REQUEST_COLUMNS + `
        FROM training_requests tr
        WHERE tr.id = ` + placeholder(1) + `
        LIMIT 1
    `
	var req domain.TrainingRequest
	err := r.db.QueryRow(query, id).Scan(
		&req.ID,
		&req.TrainingID,
		&req.EmployeeEmpID,
		&req.ManagerEmpID,
		&req.RequestDate,
		&req.Status,
		&req.ManagerNotes,
		&req.ResponseDate,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// FindByTrainingAndEmployee fetches the request for a (training, employee)
// pair. Returns (nil, nil) if none exists.
func (r *TrainingRequestRepository) FindByTrainingAndEmployee(trainingID int64, employeeEmpID string) (*domain.TrainingRequest, error) {
	query := `
        SELECT ` + REQUEST_COLUMNS + `
        FROM training_requests tr
        WHERE tr.training_id = ` + placeholder(1) + ` AND tr.employee_empid = ` + placeholder(2) + `
        LIMIT 1
    `
	var req domain.TrainingRequest
	err := r.db.QueryRow(query, trainingID, employeeEmpID).Scan(
		&req.ID,
		&req.TrainingID,
		&req.EmployeeEmpID,
		&req.ManagerEmpID,
		&req.RequestDate,
		&req.Status,
		&req.ManagerNotes,
		&req.ResponseDate,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// FindByEmployee returns the employee's requests joined with their courses,
// newest first.
func (r *TrainingRequestRepository) FindByEmployee(employeeEmpID string) (*[]TrainingRequestRow, error) {
	query := `
        SELECT ` + REQUEST_COLUMNS + `, ` + TRAINING_COLUMNS + `
        FROM training_requests tr
        JOIN training_details td ON td.id = tr.training_id
        WHERE tr.employee_empid = ` + placeholder(1) + `
        ORDER BY tr.request_date DESC
    `
	rows, err := r.db.Query(query, employeeEmpID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRequestRows(rows, false)
}

// FindPendingByManager returns pending requests awaiting the manager's
// decision, newest first. The employee display name is taken from the
// manager_employees directory row, not from the employee's user record.
func (r *TrainingRequestRepository) FindPendingByManager(managerEmpID string) (*[]TrainingRequestRow, error) {
	query := `
        SELECT ` + REQUEST_COLUMNS + `, ` + TRAINING_COLUMNS + `, me.employee_name
        FROM training_requests tr
        JOIN training_details td ON td.id = tr.training_id
        JOIN manager_employees me ON me.employee_empid = tr.employee_empid
        WHERE tr.manager_empid = ` + placeholder(1) + ` AND tr.status = '` + domain.StatusPending + `'
        ORDER BY tr.request_date DESC
    `
	rows, err := r.db.Query(query, managerEmpID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRequestRows(rows, true)
}

// FindRowByID fetches a single request joined with its course and directory
// name, for the post-transition response. Returns (nil, nil) if not found.
func (r *TrainingRequestRepository) FindRowByID(id int64) (*TrainingRequestRow, error) {
	query := `
        SELECT ` + REQUEST_COLUMNS + `, ` + TRAINING_COLUMNS + `, me.employee_name
        FROM training_requests tr
        JOIN training_details td ON td.id = tr.training_id
        JOIN manager_employees me ON me.employee_empid = tr.employee_empid
        WHERE tr.id = ` + placeholder(1) + `
        LIMIT 1
    `
	var row TrainingRequestRow
	err := r.db.QueryRow(query, id).Scan(
		&row.Request.ID,
		&row.Request.TrainingID,
		&row.Request.EmployeeEmpID,
		&row.Request.ManagerEmpID,
		&row.Request.RequestDate,
		&row.Request.Status,
		&row.Request.ManagerNotes,
		&row.Request.ResponseDate,
		&row.Training.ID,
		&row.Training.Title,
		&row.Training.Description,
		&row.Training.Category,
		&row.Training.DurationHours,
		&row.Training.Created,
		&row.EmployeeName,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Respond performs the pending -> approved/rejected transition. The status
// check and the write are a single compare-and-swap UPDATE, and the
// assignment insert on approval runs in the same transaction, so a racing
// responder observes zero affected rows rather than a double transition.
// Returns false when the request was not pending anymore.
func (r *TrainingRequestRepository) Respond(id int64, status string, notes sql.NullString) (bool, error) {
	now := r.clock.Now().UTC()

	tx, err := r.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	update := `
        UPDATE training_requests
        SET status = ` + placeholder(1) + `, manager_notes = ` + placeholder(2) + `, response_date = ` + placeholder(3) + `
        WHERE id = ` + placeholder(4) + ` AND status = '` + domain.StatusPending + `'
    `
	res, err := tx.Exec(update, status, notes, formatDateInDatabase(now), id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, nil
	}

	if status == domain.StatusApproved {
		var a domain.TrainingAssignment
		sel := `
            SELECT training_id, employee_empid, manager_empid
            FROM training_requests
            WHERE id = ` + placeholder(1) + `
        `
		if err := tx.QueryRow(sel, id).Scan(&a.TrainingID, &a.EmployeeEmpID, &a.ManagerEmpID); err != nil {
			return false, err
		}
		a.AssignedDate = now
		if err := insertAssignment(tx, &a); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

func scanRequestRows(rows *sql.Rows, withEmployeeName bool) (*[]TrainingRequestRow, error) {
	results := make([]TrainingRequestRow, 0)
	for rows.Next() {
		var row TrainingRequestRow
		dest := []interface{}{
			&row.Request.ID,
			&row.Request.TrainingID,
			&row.Request.EmployeeEmpID,
			&row.Request.ManagerEmpID,
			&row.Request.RequestDate,
			&row.Request.Status,
			&row.Request.ManagerNotes,
			&row.Request.ResponseDate,
			&row.Training.ID,
			&row.Training.Title,
			&row.Training.Description,
			&row.Training.Category,
			&row.Training.DurationHours,
			&row.Training.Created,
		}
		if withEmployeeName {
			dest = append(dest, &row.EmployeeName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &results, nil
}
