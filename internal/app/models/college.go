package models

// College represents a college open for admission booking
type College struct {
	ID            int64   `json:"id" db:"id"`
	Name          string  `json:"name" db:"name"`
	ImageURL      string  `json:"image,omitempty" db:"image_url"`
	AdmissionDate string  `json:"admissionDate,omitempty" db:"admission_date"`
	EventsCount   int     `json:"events,omitempty" db:"events_count"`
	ResearchCount int     `json:"researchCount,omitempty" db:"research_count"`
	Sports        string  `json:"sports,omitempty" db:"sports"`
	Rating        float64 `json:"rating,omitempty" db:"rating"`
}
