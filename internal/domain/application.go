package domain

import "time"

// Application statuses accepted by the API.
const (
	StatusApplied   = "applied"
	StatusInterview = "interview"
	StatusRejected  = "rejected"
	StatusAccepted  = "accepted"
	StatusWithdrawn = "withdrawn"
)

// Application is one tracked job application, always owned by a single user.
type Application struct {
	ID              string
	UserID          string
	JobURL          string
	Company         string
	Position        string
	JobDescription  string
	SkillsMatched   []string
	MatchPercentage *int
	Status          string
	AppliedDate     time.Time
	Notes           string
	SalaryRange     string
	Location        string
	WorkType        string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ApplicationStats is the per-status breakdown for one user.
type ApplicationStats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}
