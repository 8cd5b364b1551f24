package sqllite

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/crafthr/trainflow/internal/repository"
	"github.com/crafthr/trainflow/pkg/trainflow/domain"
	"github.com/crafthr/trainflow/test/integration"
)

type testRepos struct {
	db          *sql.DB
	clock       *integration.FakeClock
	requests    *repository.TrainingRequestRepository
	assignments *repository.TrainingAssignmentRepository
	trainings   *repository.TrainingDetailRepository
	directory   *repository.ManagerEmployeeRepository
}

// setupTestRepos opens a throwaway sqlite database and creates the schema
// directly, since these tests exercise the repositories without booting the
// full application.
func setupTestRepos(t *testing.T) *testRepos {
	t.Helper()

	os.Setenv("TRAINFLOW_DATABASE_TYPE", "SQLLITE")

	filename := filepath.Join(t.TempDir(), "trainflow-test.db")
	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE training_details (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT,
			category TEXT,
			duration_hours INTEGER,
			created TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE manager_employees (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			employee_empid TEXT NOT NULL UNIQUE,
			manager_empid TEXT NOT NULL,
			employee_name TEXT NOT NULL
		);

		CREATE TABLE training_requests (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			training_id INTEGER NOT NULL REFERENCES training_details (id),
			employee_empid TEXT NOT NULL,
			manager_empid TEXT NOT NULL,
			request_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			status TEXT NOT NULL DEFAULT 'pending',
			manager_notes TEXT,
			response_date TIMESTAMP,
			UNIQUE (training_id, employee_empid)
		);

		CREATE TABLE training_assignments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			training_id INTEGER NOT NULL REFERENCES training_details (id),
			employee_empid TEXT NOT NULL,
			manager_empid TEXT NOT NULL,
			assigned_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	clock := integration.NewFakeClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	return &testRepos{
		db:          db,
		clock:       clock,
		requests:    repository.NewTrainingRequestRepository(db, clock),
		assignments: repository.NewTrainingAssignmentRepository(db, clock),
		trainings:   repository.NewTrainingDetailRepository(db, clock),
		directory:   repository.NewManagerEmployeeRepository(db),
	}
}

// seedTraining inserts a course and returns its id.
func seedTraining(t *testing.T, r *testRepos, title string) int64 {
	t.Helper()
	id, err := r.trainings.Save(&domain.TrainingDetail{
		Title:         title,
		Description:   sql.NullString{String: "A course", Valid: true},
		Category:      sql.NullString{String: "engineering", Valid: true},
		DurationHours: sql.NullInt64{Int64: 8, Valid: true},
	})
	if err != nil {
		t.Fatalf("Failed to seed training %q: %v", title, err)
	}
	return id
}

// seedDirectory registers an employee under a manager.
func seedDirectory(t *testing.T, r *testRepos, employeeEmpID, managerEmpID, name string) {
	t.Helper()
	err := r.directory.Upsert(&domain.ManagerEmployee{
		EmployeeEmpID: employeeEmpID,
		ManagerEmpID:  managerEmpID,
		EmployeeName:  name,
	})
	if err != nil {
		t.Fatalf("Failed to seed directory entry for %s: %v", employeeEmpID, err)
	}
}

func countAssignments(t *testing.T, r *testRepos, employeeEmpID string) int {
	t.Helper()
	assignments, err := r.assignments.FindByEmployee(employeeEmpID)
	if err != nil {
		t.Fatalf("Failed to list assignments: %v", err)
	}
	return len(*assignments)
}
