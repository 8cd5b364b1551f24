package repository

import (
	"database/sql"

	"github.com/crafthr/trainflow/pkg/trainflow/core"
	"github.com/crafthr/trainflow/pkg/trainflow/domain"
)

// TrainingDetailRepository provides persistence methods for the course
// catalog. The workflow only reads from it.
type TrainingDetailRepository struct {
	db    *sql.DB
	clock core.Clock
}

func NewTrainingDetailRepository(db *sql.DB, clock core.Clock) *TrainingDetailRepository {
	return &TrainingDetailRepository{db: db, clock: clock}
}

// Save inserts a new course and returns its generated id.
func (r *TrainingDetailRepository) Save(td *domain.TrainingDetail) (int64, error) {
	if td.Created.IsZero() {
		td.Created = r.clock.Now().UTC()
	}

	base := `
        INSERT INTO training_details (title, description, category, duration_hours, created)
        VALUES (` + placeholder(1) + `,` + placeholder(2) + `,` + placeholder(3) + `,` + placeholder(4) + `,` + placeholder(5) + `)
    `
	vals := []interface{}{
		td.Title,
		td.Description,
		td.Category,
		td.DurationHours,
		formatDateInDatabase(td.Created),
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
	if err != nil {
		return 0, err
	}
	td.ID = id
	return id, nil
}

// FindByID fetches a course by id. Returns (nil, nil) if not found.
func (r *TrainingDetailRepository) FindByID(id int64) (*domain.TrainingDetail, error) {
	query := `
        SELECT id, title, description, category, duration_hours, created
        FROM training_details
        WHERE id = ` + placeholder(1) + `
        LIMIT 1
    `
	var td domain.TrainingDetail
	err := r.db.QueryRow(query, id).Scan(
		&td.ID,
		&td.Title,
		&td.Description,
		&td.Category,
		&td.DurationHours,
		&td.Created,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &td, nil
}

// FindAll returns all courses ordered by title.
func (r *TrainingDetailRepository) FindAll() (*[]domain.TrainingDetail, error) {
	query := `
        SELECT id, title, description, category, duration_hours, created
        FROM training_details
        ORDER BY title ASC
    `
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]domain.TrainingDetail, 0)
	for rows.Next() {
		var td domain.TrainingDetail
		if err := rows.Scan(
			&td.ID,
			&td.Title,
			&td.Description,
			&td.Category,
			&td.DurationHours,
			&td.Created,
		); err != nil {
			return nil, err
		}
		details = append(details, td)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &details, nil
}
