package dto

import (
	"time"

	"github.com/campushub/backend/internal/app/models"
)

// CreateTeamRequest represents a team creation request. RequiredSkills
// is a comma separated list.
type CreateTeamRequest struct {
	Name           string `json:"name" binding:"required"`
	RequiredSkills string `json:"requiredSkills"`
	MaxSize        int    `json:"maxSize"`
}

// JoinRequestRequest represents a request to join a team
type JoinRequestRequest struct {
	Message *string `json:"message,omitempty"`
}

// SoloApplicationRequest represents a solo participation request
type SoloApplicationRequest struct {
	Note *string `json:"note,omitempty"`
}

// TeamMemberResponse represents one member of a team
type TeamMemberResponse struct {
	UserID   int64     `json:"userId"`
	UserName string    `json:"userName"`
	JoinedAt time.Time `json:"joinedAt"`
}

// TeamResponse represents a team in API responses
type TeamResponse struct {
	ID             int64                `json:"id"`
	EventID        int64                `json:"eventId"`
	Name           string               `json:"name"`
	LeaderID       int64                `json:"leaderId"`
	RequiredSkills []string             `json:"requiredSkills"`
	MaxSize        int                  `json:"maxSize"`
	Status         models.TeamStatus    `json:"status"`
	MemberCount    int                  `json:"memberCount"`
	Members        []TeamMemberResponse `json:"members,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
}

// NewTeamResponse maps a team model to its response shape
func NewTeamResponse(t *models.Team) *TeamResponse {
	if t == nil {
		return nil
	}
	resp := &TeamResponse{
		ID:             t.ID,
		EventID:        t.EventID,
		Name:           t.Name,
		LeaderID:       t.LeaderID,
		RequiredSkills: t.RequiredSkills,
		MaxSize:        t.MaxSize,
		Status:         t.Status,
		MemberCount:    t.MemberCount,
		CreatedAt:      t.CreatedAt,
	}
	if resp.RequiredSkills == nil {
		resp.RequiredSkills = []string{}
	}
	for _, m := range t.Members {
		resp.Members = append(resp.Members, TeamMemberResponse{
			UserID:   m.UserID,
			UserName: m.UserName,
			JoinedAt: m.JoinedAt,
		})
	}
	return resp
}

// JoinRequestResponse represents a join request in API responses
type JoinRequestResponse struct {
	ID        int64                    `json:"id"`
	EventID   int64                    `json:"eventId"`
	TeamID    int64                    `json:"teamId"`
	UserID    int64                    `json:"userId"`
	UserName  string                   `json:"userName,omitempty"`
	TeamName  string                   `json:"teamName,omitempty"`
	Status    models.JoinRequestStatus `json:"status"`
	CreatedAt time.Time                `json:"createdAt"`
	DecidedAt *time.Time               `json:"decidedAt,omitempty"`
}

// NewJoinRequestResponse maps a join request model to its response shape
func NewJoinRequestResponse(r *models.JoinRequest) *JoinRequestResponse {
	if r == nil {
		return nil
	}
	return &JoinRequestResponse{
		ID:        r.ID,
		EventID:   r.EventID,
		TeamID:    r.TeamID,
		UserID:    r.UserID,
		UserName:  r.UserName,
		TeamName:  r.TeamName,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		DecidedAt: r.DecidedAt,
	}
}

// SoloParticipantResponse represents a solo participant in API responses
type SoloParticipantResponse struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"eventId"`
	UserID    int64     `json:"userId"`
	UserName  string    `json:"userName,omitempty"`
	Skills    []string  `json:"skills"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewSoloParticipantResponse maps a solo participant model to its response shape
func NewSoloParticipantResponse(p *models.SoloParticipant) *SoloParticipantResponse {
	if p == nil {
		return nil
	}
	resp := &SoloParticipantResponse{
		ID:        p.ID,
		EventID:   p.EventID,
		UserID:    p.UserID,
		UserName:  p.UserName,
		Skills:    p.Skills,
		Note:      p.Note,
		CreatedAt: p.CreatedAt,
	}
	if resp.Skills == nil {
		resp.Skills = []string{}
	}
	return resp
}
