package dto

import (
	"time"

	"github.com/campushub/backend/internal/app/models"
)

// CreateStartupRequest represents a startup registration request
type CreateStartupRequest struct {
	Name    string `json:"name" binding:"required"`
	Problem string `json:"problem" binding:"required"`
	Domain  string `json:"domain" binding:"required"`
	Stage   string `json:"stage" binding:"required"`
}

// UpdateStartupStatusRequest represents an admin approval decision
type UpdateStartupStatusRequest struct {
	Status models.StartupStatus `json:"status" binding:"required"`
}

// StartupResponse represents a startup in API responses
type StartupResponse struct {
	ID           int64                `json:"id"`
	UserID       int64                `json:"userId"`
	FounderName  string               `json:"founderName,omitempty"`
	Name         string               `json:"name"`
	Problem      string               `json:"problem"`
	Domain       string               `json:"domain"`
	Stage        string               `json:"stage"`
	Status       models.StartupStatus `json:"status"`
	ReapplyAfter *time.Time           `json:"reapplyAfter,omitempty"`
	CreatedAt    time.Time            `json:"createdAt"`
}

// NewStartupResponse maps a startup model to its response shape
func NewStartupResponse(s *models.Startup) *StartupResponse {
	if s == nil {
		return nil
	}
	return &StartupResponse{
		ID:           s.ID,
		UserID:       s.UserID,
		FounderName:  s.FounderName,
		Name:         s.Name,
		Problem:      s.Problem,
		Domain:       s.Domain,
		Stage:        s.Stage,
		Status:       s.Status,
		ReapplyAfter: s.ReapplyAfter,
		CreatedAt:    s.CreatedAt,
	}
}
