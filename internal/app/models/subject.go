package models

// Subject represents a subject offered by a college. College carries the
// college name denormalized next to the reference, matching the stored
// documents this schema was migrated from.
type Subject struct {
	ID        int64  `json:"id" db:"id"`
	CollegeID int64  `json:"collegeId" db:"college_id"`
	Name      string `json:"subject" db:"subject"`
	College   string `json:"college,omitempty" db:"college"`
}
