package dto

import (
	"time"

	dom "github.com/cookie-sid/job-application-tracker/internal/domain"
)

// CreateContactRequest is the JSON body for POST /contacts.
type CreateContactRequest struct {
	Name             string     `json:"name" binding:"required,max=255"`
	Email            string     `json:"email" binding:"omitempty,email,max=255"`
	Phone            string     `json:"phone" binding:"omitempty,max=50"`
	Company          string     `json:"company" binding:"omitempty,max=255"`
	Position         string     `json:"position" binding:"omitempty,max=255"`
	LinkedinURL      string     `json:"linkedinUrl" binding:"omitempty,url"`
	Notes            string     `json:"notes" binding:"omitempty,max=5000"`
	Status           string     `json:"status" binding:"omitempty,oneof=active inactive responded"`
	FollowUpReminder *time.Time `json:"followUpReminder"`
}

// UpdateContactRequest is the JSON body for PATCH /contacts/:id.
type UpdateContactRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Email       *string `json:"email" binding:"omitempty,email,max=255"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	Company     *string `json:"company" binding:"omitempty,max=255"`
	Position    *string `json:"position" binding:"omitempty,max=255"`
	LinkedinURL *string `json:"linkedinUrl" binding:"omitempty,url"`
	Notes       *string `json:"notes" binding:"omitempty,max=5000"`
	Status      *string `json:"status" binding:"omitempty,oneof=active inactive responded"`
}

// ContactResponse is the wire form of one recruiter contact.
type ContactResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	Company          string     `json:"company"`
	Position         string     `json:"position"`
	LinkedinURL      string     `json:"linkedinUrl"`
	Notes            string     `json:"notes"`
	Status           string     `json:"status"`
	LastContactDate  time.Time  `json:"lastContactDate"`
	FollowUpReminder *time.Time `json:"followUpReminder"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// ContactToResponse converts a domain contact to its wire form.
func ContactToResponse(c dom.Contact) ContactResponse {
	return ContactResponse{
		ID:               c.ID,
		Name:             c.Name,
		Email:            c.Email,
		Phone:            c.Phone,
		Company:          c.Company,
		Position:         c.Position,
		LinkedinURL:      c.LinkedinURL,
		Notes:            c.Notes,
		Status:           c.Status,
		LastContactDate:  c.LastContactDate,
		FollowUpReminder: c.FollowUpReminder,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// ContactsToResponses converts a list.
func ContactsToResponses(list []dom.Contact) []ContactResponse {
	out := make([]ContactResponse, len(list))
	for i := range list {
		out[i] = ContactToResponse(list[i])
	}
	return out
}
