package dto

import (
	"time"

	dom "github.com/cookie-sid/job-application-tracker/internal/domain"
)

// CreateApplicationRequest is the JSON body for POST /applications.
type CreateApplicationRequest struct {
	JobURL          string   `json:"jobUrl" binding:"required,url,max=2000"`
	Company         string   `json:"company" binding:"required,max=255"`
	Position        string   `json:"position" binding:"required,max=255"`
	JobDescription  string   `json:"jobDescription" binding:"omitempty,max=10000"`
	SkillsMatched   []string `json:"skillsMatched" binding:"omitempty,dive,max=100"`
	MatchPercentage *int     `json:"matchPercentage" binding:"omitempty,min=0,max=100"`
	Status          string   `json:"status" binding:"omitempty,oneof=applied interview rejected accepted withdrawn"`
	SalaryRange     string   `json:"salaryRange" binding:"omitempty,max=100"`
	Location        string   `json:"location" binding:"omitempty,max=255"`
	WorkType        string   `json:"workType" binding:"omitempty,max=50"`
	Notes           string   `json:"notes" binding:"omitempty,max=5000"`
}

// UpdateApplicationRequest is the JSON body for PATCH /applications/:id.
// nil = leave the field unchanged.
type UpdateApplicationRequest struct {
	JobURL          *string   `json:"jobUrl" binding:"omitempty,url,max=2000"`
	Company         *string   `json:"company" binding:"omitempty,min=1,max=255"`
	Position        *string   `json:"position" binding:"omitempty,min=1,max=255"`
	JobDescription  *string   `json:"jobDescription" binding:"omitempty,max=10000"`
	SkillsMatched   *[]string `json:"skillsMatched" binding:"omitempty,dive,max=100"`
	MatchPercentage *int      `json:"matchPercentage" binding:"omitempty,min=0,max=100"`
	Status          *string   `json:"status" binding:"omitempty,oneof=applied interview rejected accepted withdrawn"`
	SalaryRange     *string   `json:"salaryRange" binding:"omitempty,max=100"`
	Location        *string   `json:"location" binding:"omitempty,max=255"`
	WorkType        *string   `json:"workType" binding:"omitempty,max=50"`
	Notes           *string   `json:"notes" binding:"omitempty,max=5000"`
}

// ApplicationResponse is the wire form of one job application.
type ApplicationResponse struct {
	ID              string    `json:"id"`
	JobURL          string    `json:"jobUrl"`
	Company         string    `json:"company"`
	Position        string    `json:"position"`
	JobDescription  string    `json:"jobDescription"`
	SkillsMatched   []string  `json:"skillsMatched"`
	MatchPercentage *int      `json:"matchPercentage"`
	Status          string    `json:"status"`
	AppliedDate     time.Time `json:"appliedDate"`
	Notes           string    `json:"notes"`
	SalaryRange     string    `json:"salaryRange"`
	Location        string    `json:"location"`
	WorkType        string    `json:"workType"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ApplicationToResponse converts a domain application to its wire form.
func ApplicationToResponse(a dom.Application) ApplicationResponse {
	skills := a.SkillsMatched
	if skills == nil {
		skills = []string{}
	}
	return ApplicationResponse{
		ID:              a.ID,
		JobURL:          a.JobURL,
		Company:         a.Company,
		Position:        a.Position,
		JobDescription:  a.JobDescription,
		SkillsMatched:   skills,
		MatchPercentage: a.MatchPercentage,
		Status:          a.Status,
		AppliedDate:     a.AppliedDate,
		Notes:           a.Notes,
		SalaryRange:     a.SalaryRange,
		Location:        a.Location,
		WorkType:        a.WorkType,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// ApplicationsToResponses converts a list.
func ApplicationsToResponses(list []dom.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, len(list))
	for i := range list {
		out[i] = ApplicationToResponse(list[i])
	}
	return out
}
