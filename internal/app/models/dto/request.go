package dto

// TokenRequest carries the claims a caller wants signed into a token.
// Only the email is mandatory; the rest is opaque profile data.
type TokenRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoUrl"`
	Role     string `json:"role"`
}

// AddUserRequest is the body for user registration
type AddUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoUrl"`
	Role     string `json:"role"`
}

// AddCollegeRequest is the body for college creation
type AddCollegeRequest struct {
	Name          string  `json:"name" binding:"required"`
	ImageURL      string  `json:"image"`
	AdmissionDate string  `json:"admissionDate"`
	EventsCount   int     `json:"events"`
	ResearchCount int     `json:"researchCount"`
	Sports        string  `json:"sports"`
	Rating        float64 `json:"rating"`
}

// ApplyRequest is the body for an admission application
type ApplyRequest struct {
	CollegeID     int64  `json:"collegeId" binding:"required"`
	College       string `json:"college"`
	Email         string `json:"email" binding:"required,email"`
	CandidateName string `json:"candidateName"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	DateOfBirth   string `json:"dateOfBirth"`
	ImageURL      string `json:"image"`
	Subject       string `json:"subject"`
}

// FeedbackRequest is the merge-patch body for admission feedback. Both
// fields use pointers so a zero rating is distinguishable from absence.
type FeedbackRequest struct {
	Review *string  `json:"review" binding:"required"`
	Rating *float64 `json:"rating" binding:"required"`
}
