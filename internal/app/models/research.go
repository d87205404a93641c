package models

// Research represents a research record published by a college
type Research struct {
	ID          int64  `json:"id" db:"id"`
	CollegeID   int64  `json:"collegeId" db:"college_id"`
	Title       string `json:"title,omitempty" db:"title"`
	Cite        string `json:"cite,omitempty" db:"cite"`
	PublishedAt string `json:"publishedAt,omitempty" db:"published_at"`
}

// ResearchCitation is the projected shape returned when looking up
// research by college: identifier, reference and citation only.
type ResearchCitation struct {
	ID        int64  `json:"id"`
	CollegeID int64  `json:"collegeId"`
	Cite      string `json:"cite"`
}
