package model

import "time"

// Inquiry is a single lead-capture submission from the program search form.
// This is a pure domain model with no database-specific dependencies or tags.
// It is create-only: there is no update or delete path.
type Inquiry struct {
	ID             int64     `json:"id"`
	FieldOfStudy   string    `json:"fieldOfStudy"`
	Destination    string    `json:"destination"`
	EducationLevel string    `json:"educationLevel"`
	CreatedAt      time.Time `json:"createdAt"`
}
