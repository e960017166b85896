package dto

import (
	"time"

	dom "github.com/cookie-sid/job-application-tracker/internal/domain"
)

// RegisterRequest is the JSON body for POST /auth/register. Field rules
// live in the validation package so every violation can be reported at
// once instead of failing on the first binding error.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the JSON body for PUT /auth/profile. Only these
// two fields are mutable; nil means "leave unchanged".
type UpdateProfileRequest struct {
	FirstName *string   `json:"firstName"`
	Skills    *[]string `json:"skills"`
}

// ChangePasswordRequest is the JSON body for PUT /auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UserResponse is the public-safe user view. It has no hash field at all,
// so no code path can leak one.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Skills    []string  `json:"skills"`
	ResumeURL *string   `json:"resumeUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserToResponse converts a domain user to its public-safe view.
func UserToResponse(u dom.User) UserResponse {
	skills := u.Skills
	if skills == nil {
		skills = []string{}
	}
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Skills:    skills,
		ResumeURL: u.ResumeURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
