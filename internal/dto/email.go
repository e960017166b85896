package dto

import (
	"time"

	dom "github.com/cookie-sid/job-application-tracker/internal/domain"
)

// CreateEmailRequest is the JSON body for POST /emails. The optional ids
// tie the logged email to an application and/or a recruiter contact.
type CreateEmailRequest struct {
	ApplicationID     *string    `json:"applicationId" binding:"omitempty,uuid"`
	RecruiterID       *string    `json:"recruiterId" binding:"omitempty,uuid"`
	Subject           string     `json:"subject" binding:"omitempty,max=500"`
	Body              string     `json:"body"`
	EmailType         string     `json:"emailType" binding:"omitempty,oneof=application follow_up thank_you inquiry"`
	FollowUpScheduled *time.Time `json:"followUpScheduled"`
}

// EmailResponse is the wire form of one logged email.
type EmailResponse struct {
	ID                string     `json:"id"`
	ApplicationID     *string    `json:"applicationId"`
	RecruiterID       *string    `json:"recruiterId"`
	Subject           string     `json:"subject"`
	Body              string     `json:"body"`
	SentDate          time.Time  `json:"sentDate"`
	ResponseReceived  bool       `json:"responseReceived"`
	ResponseDate      *time.Time `json:"responseDate"`
	FollowUpScheduled *time.Time `json:"followUpScheduled"`
	EmailType         string     `json:"emailType"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// EmailToResponse converts a domain email to its wire form.
func EmailToResponse(e dom.Email) EmailResponse {
	return EmailResponse{
		ID:                e.ID,
		ApplicationID:     e.ApplicationID,
		RecruiterID:       e.RecruiterID,
		Subject:           e.Subject,
		Body:              e.Body,
		SentDate:          e.SentDate,
		ResponseReceived:  e.ResponseReceived,
		ResponseDate:      e.ResponseDate,
		FollowUpScheduled: e.FollowUpScheduled,
		EmailType:         e.EmailType,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

// EmailsToResponses converts a list.
func EmailsToResponses(list []dom.Email) []EmailResponse {
	out := make([]EmailResponse, len(list))
	for i := range list {
		out[i] = EmailToResponse(list[i])
	}
	return out
}
