package domain

import "time"

// Email types accepted by the API.
const (
	EmailApplication = "application"
	EmailFollowUp    = "follow_up"
	EmailThankYou    = "thank_you"
	EmailInquiry     = "inquiry"
)

// Email is a logged message sent to a recruiter. Nothing is actually sent
// from here; the record only tracks correspondence.
type Email struct {
	ID                string
	UserID            string
	ApplicationID     *string
	RecruiterID       *string
	Subject           string
	Body              string
	SentDate          time.Time
	ResponseReceived  bool
	ResponseDate      *time.Time
	FollowUpScheduled *time.Time
	EmailType         string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DashboardStats aggregates one user's activity for the dashboard.
type DashboardStats struct {
	Applications ApplicationStats `json:"applications"`
	Contacts     int              `json:"contacts"`
	Emails       int              `json:"emails"`
}
