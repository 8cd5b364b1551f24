package domain

import "time"
import "database/sql"

// TrainingDetail is a course in the catalog. The workflow only ever reads
// these rows.
type TrainingDetail struct {
	ID            int64
	Title         string
	Description   sql.NullString
	Category      sql.NullString
	DurationHours sql.NullInt64
	Created       time.Time
}
