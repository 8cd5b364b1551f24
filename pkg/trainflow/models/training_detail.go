package models

// CreateTrainingDetailRequest is the payload for adding a course to the
// catalog.
type CreateTrainingDetailRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Category      string `json:"category,omitempty"`
	DurationHours int64  `json:"durationHours,omitempty"`
}
