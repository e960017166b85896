package domain

import "time"

// User is the domain entity for an account. PasswordHash never leaves the
// service layer; the json tag is a second line of defense should one slip
// into an encoder anyway.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Skills       []string  `json:"skills"`
	ResumeURL    *string   `json:"resume_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
