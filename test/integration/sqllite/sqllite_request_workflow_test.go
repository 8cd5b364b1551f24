package sqllite

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/crafthr/trainflow/internal/repository"
	"github.com/crafthr/trainflow/pkg/trainflow/domain"
)

func TestSaveRejectsDuplicateRequest(t *testing.T) {
	r := setupTestRepos(t)
	trainingID := seedTraining(t, r, "Go Fundamentals")
	seedDirectory(t, r, "e1", "m1", "Erin Engineer")

	first := &domain.TrainingRequest{TrainingID: trainingID, EmployeeEmpID: "e1", ManagerEmpID: "m1"}
	if _, err := r.requests.Save(first); err != nil {
		t.Fatalf("Failed to save first request: %v", err)
	}
	if first.Status != domain.StatusPending {
		t.Errorf("Expected new request to be pending, got %s", first.Status)
	}

	second := &domain.TrainingRequest{TrainingID: trainingID, EmployeeEmpID: "e1", ManagerEmpID: "m1"}
	_, err := r.requests.Save(second)
	if !errors.Is(err, repository.ErrDuplicateRequest) {
		t.Errorf("Expected ErrDuplicateRequest on duplicate save, got %v", err)
	}

	// a different employee may still request the same course
	seedDirectory(t, r, "e2", "m1", "Evan Engineer")
	other := &domain.TrainingRequest{TrainingID: trainingID, EmployeeEmpID: "e2", ManagerEmpID: "m1"}
	if _, err := r.requests.Save(other); err != nil {
		t.Errorf("Expected save for a different employee to succeed, got %v", err)
	}
}

func TestRespondApproveCreatesAssignment(t *testing.T) {
	r := setupTestRepos(t)
	trainingID := seedTraining(t, r, "Kubernetes Basics")
	seedDirectory(t, r, "e1", "m1", "Erin Engineer")

	req := &domain.TrainingRequest{TrainingID: trainingID, EmployeeEmpID: "e1", ManagerEmpID: "m1"}
	id, err := r.requests.Save(req)
	if err != nil {
		t.Fatalf("Failed to save request: %v", err)
	}

	r.clock.Add(2 * time.Hour)
	notes := sql.NullString{String: "approved for Q3", Valid: true}
	transitioned, err := r.requests.Respond(id, domain.StatusApproved, notes)
	if err != nil {
		t.Fatalf("Respond failed: %v", err)
	}
	if !transitioned {
		t.Fatal("Expected the pending request to transition")
	}

	updated, err := r.requests.FindByID(id)
	if err != nil {
		t.Fatalf("Failed to reload request: %v", err)
	}
	if updated.Status != domain.StatusApproved {
		t.Errorf("Expected status approved, got %s", updated.Status)
	}
	if !updated.ManagerNotes.Valid || updated.ManagerNotes.String != "approved for Q3" {
		t.Errorf("Expected manager notes to be stored, got %v", updated.ManagerNotes)
	}
	if !updated.ResponseDate.Valid {
		t.Error("Expected a response date on the decided request")
	}

	a, err := r.assignments.FindByTrainingAndEmployee(trainingID, "e1")
	if err != nil {
		t.Fatalf("Failed to look up assignment: %v", err)
	}
	if a == nil {
		t.Fatal("Expected an assignment after approval")
	}
	if a.TrainingID != trainingID || a.EmployeeEmpID != "e1" || a.ManagerEmpID != "m1" {
		t.Errorf("Assignment fields do not match the request: %+v", a)
	}
	if !a.AssignedDate.Equal(updated.ResponseDate.Time) {
		t.Errorf("Expected assigned date %v to match response date %v", a.AssignedDate, updated.ResponseDate.Time)
	}
	if n := countAssignments(t, r, "e1"); n != 1 {
		t.Errorf("Expected exactly 1 assignment, got %d", n)
	}
}

func TestRespondIsSingleShot(t *testing.T) {
	r := setupTestRepos(t)
	trainingID := seedTraining(t, r, "Incident Response")
	seedDirectory(t, r, "e1", "m1", "Erin Engineer")

	req := &domain.TrainingRequest{TrainingID: trainingID, EmployeeEmpID: "e1", ManagerEmpID: "m1"}
	id, err := r.requests.Save(req)
	if err != nil {
		t.Fatalf("Failed to save request: %v", err)
	}

	transitioned, err := r.requests.Respond(id, domain.StatusApproved, sql.NullString{})
	if err != nil || !transitioned {
		t.Fatalf("First Respond failed: transitioned=%v err=%v", transitioned, err)
	}

	// a racing second decision sees zero affected rows
	transitioned, err = r.requests.Respond(id, domain.StatusRejected, sql.NullString{})
	if err != nil {
		t.Fatalf("Second Respond errored: %v", err)
	}
	if transitioned {
		t.Error("Expected second Respond to report no transition")
	}

	updated, _ := r.requests.FindByID(id)
	if updated.Status != domain.StatusApproved {
		t.Errorf("Expected status to remain approved, got %s", updated.Status)
	}
	if n := countAssignments(t, r, "e1"); n != 1 {
		t.Errorf("Expected exactly 1 assignment after the race, got %d", n)
	}
}

func TestRespondRejectCreatesNoAssignment(t *testing.T) {
	r := setupTestRepos(t)
	trainingID := seedTraining(t, r, "Advanced SQL")
	seedDirectory(t, r, "e1", "m1", "Erin Engineer")

	req := &domain.TrainingRequest{TrainingID: trainingID, EmployeeEmpID: "e1", ManagerEmpID: "m1"}
	id, err := r.requests.Save(req)
	if err != nil {
		t.Fatalf("Failed to save request: %v", err)
	}

	transitioned, err := r.requests.Respond(id, domain.StatusRejected, sql.NullString{String: "not this quarter", Valid: true})
	if err != nil || !transitioned {
		t.Fatalf("Respond failed: transitioned=%v err=%v", transitioned, err)
	}

	if n := countAssignments(t, r, "e1"); n != 0 {
		t.Errorf("Expected no assignments after rejection, got %d", n)
	}
}

func TestFindPendingByManager(t *testing.T) {
	r := setupTestRepos(t)
	goCourse := seedTraining(t, r, "Go Fundamentals")
	sqlCourse := seedTraining(t, r, "Advanced SQL")
	seedDirectory(t, r, "e1", "m1", "Erin Engineer")
	seedDirectory(t, r, "e2", "m1", "Evan Engineer")
	seedDirectory(t, r, "e3", "m2", "Olga Operator")

	older := &domain.TrainingRequest{TrainingID: goCourse, EmployeeEmpID: "e1", ManagerEmpID: "m1"}
	if _, err := r.requests.Save(older); err != nil {
		t.Fatalf("Failed to save request: %v", err)
	}
	r.clock.Add(time.Hour)
	newer := &domain.TrainingRequest{TrainingID: sqlCourse, EmployeeEmpID: "e2", ManagerEmpID: "m1"}
	if _, err := r.requests.Save(newer); err != nil {
		t.Fatalf("Failed to save request: %v", err)
	}
	otherManager := &domain.TrainingRequest{TrainingID: goCourse, EmployeeEmpID: "e3", ManagerEmpID: "m2"}
	if _, err := r.requests.Save(otherManager); err != nil {
		t.Fatalf("Failed to save request: %v", err)
	}

	pending, err := r.requests.FindPendingByManager("m1")
	if err != nil {
		t.Fatalf("FindPendingByManager failed: %v", err)
	}
	if len(*pending) != 2 {
		t.Fatalf("Expected 2 pending requests for m1, got %d", len(*pending))
	}
	if (*pending)[0].Request.ID != newer.ID {
		t.Errorf("Expected newest request first, got id %d", (*pending)[0].Request.ID)
	}
	if (*pending)[0].Training.Title != "Advanced SQL" {
		t.Errorf("Expected joined course title, got %s", (*pending)[0].Training.Title)
	}
	if !(*pending)[0].EmployeeName.Valid || (*pending)[0].EmployeeName.String != "Evan Engineer" {
		t.Errorf("Expected directory name on the manager view, got %v", (*pending)[0].EmployeeName)
	}

	// a decided request drops out of the pending view
	if _, err := r.requests.Respond(newer.ID, domain.StatusApproved, sql.NullString{}); err != nil {
		t.Fatalf("Respond failed: %v", err)
	}
	pending, err = r.requests.FindPendingByManager("m1")
	if err != nil {
		t.Fatalf("FindPendingByManager failed: %v", err)
	}
	if len(*pending) != 1 || (*pending)[0].Request.ID != older.ID {
		t.Errorf("Expected only the undecided request to remain pending")
	}
}

func TestFindByEmployee(t *testing.T) {
	r := setupTestRepos(t)
	goCourse := seedTraining(t, r, "Go Fundamentals")
	sqlCourse := seedTraining(t, r, "Advanced SQL")
	seedDirectory(t, r, "e1", "m1", "Erin Engineer")

	first := &domain.TrainingRequest{TrainingID: goCourse, EmployeeEmpID: "e1", ManagerEmpID: "m1"}
	if _, err := r.requests.Save(first); err != nil {
		t.Fatalf("Failed to save request: %v", err)
	}
	r.clock.Add(time.Hour)
	second := &domain.TrainingRequest{TrainingID: sqlCourse, EmployeeEmpID: "e1", ManagerEmpID: "m1"}
	if _, err := r.requests.Save(second); err != nil {
		t.Fatalf("Failed to save request: %v", err)
	}

	mine, err := r.requests.FindByEmployee("e1")
	if err != nil {
		t.Fatalf("FindByEmployee failed: %v", err)
	}
	if len(*mine) != 2 {
		t.Fatalf("Expected 2 requests, got %d", len(*mine))
	}
	if (*mine)[0].Request.ID != second.ID {
		t.Errorf("Expected newest request first, got id %d", (*mine)[0].Request.ID)
	}
	if (*mine)[0].EmployeeName.Valid {
		t.Error("Employee view must not carry the directory display name")
	}
}
