package models

// Admission represents a student's application to a college. Review and
// Rating are nil until feedback is submitted through the patch endpoint;
// they are the only mutable fields after creation.
type Admission struct {
	ID            int64    `json:"id" db:"id"`
	CollegeID     int64    `json:"collegeId" db:"college_id"`
	College       string   `json:"college,omitempty" db:"college"`
	Email         string   `json:"email" db:"email"`
	CandidateName string   `json:"candidateName,omitempty" db:"candidate_name"`
	Phone         string   `json:"phone,omitempty" db:"phone"`
	Address       string   `json:"address,omitempty" db:"address"`
	DateOfBirth   string   `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	ImageURL      string   `json:"image,omitempty" db:"image_url"`
	Subject       string   `json:"subject,omitempty" db:"subject"`
	Review        *string  `json:"review,omitempty" db:"review"`
	Rating        *float64 `json:"rating,omitempty" db:"rating"`
}
