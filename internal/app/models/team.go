package models

import (
	"time"
)

// TeamStatus represents the formation status of a team
type TeamStatus string

const (
	TeamStatusPending  TeamStatus = "PENDING"
	TeamStatusApproved TeamStatus = "APPROVED"
	TeamStatusRejected TeamStatus = "REJECTED"
	TeamStatusLocked   TeamStatus = "LOCKED"
)

// CanTransitionTo reports whether an admin may move a team from s to target.
// Pending teams are approved or rejected; approved teams are locked.
// Rejected and locked are terminal.
func (s TeamStatus) CanTransitionTo(target TeamStatus) bool {
	switch s {
	case TeamStatusPending:
		return target == TeamStatusApproved || target == TeamStatusRejected
	case TeamStatusApproved:
		return target == TeamStatusLocked
	}
	return false
}

// ValidTeamStatus reports whether s is one of the known team statuses.
func ValidTeamStatus(s TeamStatus) bool {
	switch s {
	case TeamStatusPending, TeamStatusApproved, TeamStatusRejected, TeamStatusLocked:
		return true
	}
	return false
}

// Team defines the team model based on the 'teams' table
type Team struct {
	ID             int64      `json:"id" db:"id"`
	EventID        int64      `json:"eventId" db:"event_id"`
	Name           string     `json:"name" db:"name"`
	LeaderID       int64      `json:"leaderId" db:"leader_id"`
	RequiredSkills []string   `json:"requiredSkills" db:"required_skills"`
	MaxSize        int        `json:"maxSize" db:"max_size"`
	Status         TeamStatus `json:"status" db:"status"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`

	MemberCount int          `json:"memberCount"`       // Aggregate, no db column
	Members     []TeamMember `json:"members,omitempty"` // Relation, no db tag
}

// AcceptsMembers reports whether the team can still take new members.
// Capacity is checked separately, under a row lock where it matters.
func (t *Team) AcceptsMembers() bool {
	return t.Status == TeamStatusPending || t.Status == TeamStatusApproved
}

// IsFull reports whether the team has reached its size limit.
func (t *Team) IsFull() bool {
	return t.MaxSize > 0 && t.MemberCount >= t.MaxSize
}

// TeamMember defines a membership row based on the 'team_members' table
type TeamMember struct {
	ID       int64     `json:"id" db:"id"`
	TeamID   int64     `json:"teamId" db:"team_id"`
	UserID   int64     `json:"userId" db:"user_id"`
	JoinedAt time.Time `json:"joinedAt" db:"joined_at"`

	UserName string `json:"userName,omitempty"` // Joined from users
}

// JoinRequestStatus represents the status of a request to join a team
type JoinRequestStatus string

const (
	JoinRequestPending  JoinRequestStatus = "PENDING"
	JoinRequestApproved JoinRequestStatus = "APPROVED"
	JoinRequestRejected JoinRequestStatus = "REJECTED"
)

// JoinRequest defines a join request based on the 'join_requests' table
type JoinRequest struct {
	ID        int64             `json:"id" db:"id"`
	EventID   int64             `json:"eventId" db:"event_id"`
	TeamID    int64             `json:"teamId" db:"team_id"`
	UserID    int64             `json:"userId" db:"user_id"`
	Status    JoinRequestStatus `json:"status" db:"status"`
	CreatedAt time.Time         `json:"createdAt" db:"created_at"`
	DecidedAt *time.Time        `json:"decidedAt,omitempty" db:"decided_at"`

	UserName string `json:"userName,omitempty"` // Joined from users
	TeamName string `json:"teamName,omitempty"` // Joined from teams
}

// SoloParticipant defines a registered student without a team, based on
// the 'solo_participants' table
type SoloParticipant struct {
	ID        int64     `json:"id" db:"id"`
	EventID   int64     `json:"eventId" db:"event_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Note      *string   `json:"note,omitempty" db:"note"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	UserName string   `json:"userName,omitempty"` // Joined from users
	Skills   []string `json:"skills,omitempty"`   // Joined from users
}
