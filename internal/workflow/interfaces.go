package workflow

import (
	"database/sql"

	"github.com/crafthr/trainflow/internal/repository"
	"github.com/crafthr/trainflow/pkg/trainflow/domain"
)

// RequestRepo defines the interface for training request persistence,
// matching repository.TrainingRequestRepository.
type RequestRepo interface {
	Save(req *domain.TrainingRequest) (int64, error)
	FindByID(id int64) (*domain.TrainingRequest, error)
	FindByTrainingAndEmployee(trainingID int64, employeeEmpID string) (*domain.TrainingRequest, error)
	FindByEmployee(employeeEmpID string) (*[]repository.TrainingRequestRow, error)
	FindPendingByManager(managerEmpID string) (*[]repository.TrainingRequestRow, error)
	FindRowByID(id int64) (*repository.TrainingRequestRow, error)
	Respond(id int64, status string, notes sql.NullString) (bool, error)
}

// CatalogRepo defines the read-only interface to the course catalog.
type CatalogRepo interface {
	FindByID(id int64) (*domain.TrainingDetail, error)
}

// DirectoryRepo defines the read-only interface to the employee directory.
type DirectoryRepo interface {
	FindByEmployee(employeeEmpID string) (*domain.ManagerEmployee, error)
}
