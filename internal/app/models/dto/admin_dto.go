package dto

import "github.com/campushub/backend/internal/app/models"

// UpdateTeamStatusRequest represents a team status change by an event admin
type UpdateTeamStatusRequest struct {
	Status models.TeamStatus `json:"status" binding:"required"`
}

// MoveParticipantRequest represents moving a solo participant into a team
type MoveParticipantRequest struct {
	TeamID int64 `json:"teamId" binding:"required"`
}

// DecideJoinRequestRequest represents a leader or admin decision on a
// pending join request
type DecideJoinRequestRequest struct {
	Approve bool `json:"approve"`
}

// UpdateEventStatusRequest represents an event lifecycle change
type UpdateEventStatusRequest struct {
	Status models.EventStatus `json:"status" binding:"required"`
}

// DashboardSummaryResponse aggregates formation counters for an event
// together with its join requests
type DashboardSummaryResponse struct {
	EventID          int64                 `json:"eventId"`
	TeamCount        int                   `json:"teamCount"`
	PendingTeams     int                   `json:"pendingTeams"`
	ApprovedTeams    int                   `json:"approvedTeams"`
	LockedTeams      int                   `json:"lockedTeams"`
	SoloParticipants int                   `json:"soloParticipants"`
	PendingRequests  int                   `json:"pendingRequests"`
	FormationLocked  bool                  `json:"formationLocked"`
	JoinRequests     []JoinRequestResponse `json:"joinRequests"`
}

// LockFormationResponse reports the outcome of a formation lock
type LockFormationResponse struct {
	EventID     int64 `json:"eventId"`
	LockedTeams int   `json:"lockedTeams"`
}
