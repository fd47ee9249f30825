package dto

import (
	"time"

	"github.com/campushub/backend/internal/app/models"
)

// CreateInternshipRequest represents an internship posting request
type CreateInternshipRequest struct {
	RoleTitle           string     `json:"roleTitle" binding:"required"`
	Description         string     `json:"description" binding:"required"`
	Type                string     `json:"type" binding:"required"`
	Location            string     `json:"location"`
	Stipend             *string    `json:"stipend,omitempty"`
	Duration            *string    `json:"duration,omitempty"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
	ExternalLink        *string    `json:"externalLink,omitempty"`
}

// UpdateApplicationStatusRequest represents a founder decision on an application
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required"`
}

// InternshipResponse represents an internship posting in API responses
type InternshipResponse struct {
	ID                  int64      `json:"id"`
	StartupID           int64      `json:"startupId"`
	StartupName         string     `json:"startupName,omitempty"`
	RoleTitle           string     `json:"roleTitle"`
	Description         string     `json:"description"`
	Type                string     `json:"type"`
	Location            string     `json:"location"`
	Stipend             *string    `json:"stipend,omitempty"`
	Duration            *string    `json:"duration,omitempty"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
	ExternalLink        *string    `json:"externalLink,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// NewInternshipResponse maps an internship model to its response shape
func NewInternshipResponse(i *models.Internship) *InternshipResponse {
	if i == nil {
		return nil
	}
	return &InternshipResponse{
		ID:                  i.ID,
		StartupID:           i.StartupID,
		StartupName:         i.StartupName,
		RoleTitle:           i.RoleTitle,
		Description:         i.Description,
		Type:                i.Type,
		Location:            i.Location,
		Stipend:             i.Stipend,
		Duration:            i.Duration,
		ApplicationDeadline: i.ApplicationDeadline,
		ExternalLink:        i.ExternalLink,
		CreatedAt:           i.CreatedAt,
	}
}

// InternshipListResponse represents a paginated internship listing
type InternshipListResponse struct {
	Internships []InternshipResponse `json:"internships"`
	Pagination  PaginationInfo       `json:"pagination"`
}

// ApplicationResponse represents an internship application in API responses
type ApplicationResponse struct {
	ID            int64                    `json:"id"`
	InternshipID  int64                    `json:"internshipId"`
	ApplicantID   int64                    `json:"applicantId"`
	ApplicantName string                   `json:"applicantName,omitempty"`
	Status        models.ApplicationStatus `json:"status"`
	CreatedAt     time.Time                `json:"createdAt"`
}

// NewApplicationResponse maps an application model to its response shape
func NewApplicationResponse(a *models.Application) *ApplicationResponse {
	if a == nil {
		return nil
	}
	return &ApplicationResponse{
		ID:            a.ID,
		InternshipID:  a.InternshipID,
		ApplicantID:   a.ApplicantID,
		ApplicantName: a.ApplicantName,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt,
	}
}
