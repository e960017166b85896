package domain

import "time"

// Contact statuses accepted by the API.
const (
	ContactActive    = "active"
	ContactInactive  = "inactive"
	ContactResponded = "responded"
)

// Contact is a recruiter contact kept by a user.
type Contact struct {
	ID               string
	UserID           string
	Name             string
	Email            string
	Phone            string
	Company          string
	Position         string
	LinkedinURL      string
	Notes            string
	Status           string
	LastContactDate  time.Time
	FollowUpReminder *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
