package dto

import (
	"time"

	"github.com/campushub/backend/internal/app/models"
)

// CreateEventRequest represents an event creation request
type CreateEventRequest struct {
	Title       string             `json:"title" binding:"required"`
	Description string             `json:"description" binding:"required"`
	Location    string             `json:"location"`
	StartsAt    time.Time          `json:"startsAt" binding:"required"`
	EndsAt      time.Time          `json:"endsAt" binding:"required"`
	MinTeamSize int                `json:"minTeamSize"`
	MaxTeamSize int                `json:"maxTeamSize"`
	Milestones  []MilestoneRequest `json:"milestones"`
}

// UpdateEventRequest represents an event update. Nil fields are left
// unchanged.
type UpdateEventRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Location    *string    `json:"location,omitempty"`
	StartsAt    *time.Time `json:"startsAt,omitempty"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
	MinTeamSize *int       `json:"minTeamSize,omitempty"`
	MaxTeamSize *int       `json:"maxTeamSize,omitempty"`
}

// MilestoneRequest represents one timeline entry in an event payload
type MilestoneRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description *string   `json:"description,omitempty"`
	DueAt       time.Time `json:"dueAt" binding:"required"`
}

// EventResponse represents an event in API responses
type EventResponse struct {
	ID              int64              `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Location        string             `json:"location"`
	OrganizerID     int64              `json:"organizerId"`
	Status          models.EventStatus `json:"status"`
	StartsAt        time.Time          `json:"startsAt"`
	EndsAt          time.Time          `json:"endsAt"`
	MinTeamSize     int                `json:"minTeamSize"`
	MaxTeamSize     int                `json:"maxTeamSize"`
	FormationLocked bool               `json:"formationLocked"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// NewEventResponse maps an event model to its response shape
func NewEventResponse(e *models.Event) *EventResponse {
	if e == nil {
		return nil
	}
	return &EventResponse{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		Location:        e.Location,
		OrganizerID:     e.OrganizerID,
		Status:          e.Status,
		StartsAt:        e.StartsAt,
		EndsAt:          e.EndsAt,
		MinTeamSize:     e.MinTeamSize,
		MaxTeamSize:     e.MaxTeamSize,
		FormationLocked: e.FormationLocked,
		CreatedAt:       e.CreatedAt,
	}
}

// EventListResponse represents a paginated event listing
type EventListResponse struct {
	Events     []EventResponse `json:"events"`
	Pagination PaginationInfo  `json:"pagination"`
}

// ResourceRequest represents an event resource create/update payload
type ResourceRequest struct {
	Title       string              `json:"title" binding:"required"`
	URL         string              `json:"url" binding:"required"`
	Type        models.ResourceType `json:"type" binding:"required"`
	Description *string             `json:"description,omitempty"`
}

// FAQRequest represents an event FAQ create/update payload
type FAQRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}
