package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTeamStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    TeamStatus
		to      TeamStatus
		allowed bool
	}{
		{"pending to approved", TeamStatusPending, TeamStatusApproved, true},
		{"pending to rejected", TeamStatusPending, TeamStatusRejected, true},
		{"pending to locked", TeamStatusPending, TeamStatusLocked, false},
		{"approved to locked", TeamStatusApproved, TeamStatusLocked, true},
		{"approved to rejected", TeamStatusApproved, TeamStatusRejected, false},
		{"rejected is terminal", TeamStatusRejected, TeamStatusPending, false},
		{"locked is terminal", TeamStatusLocked, TeamStatusApproved, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestValidTeamStatus(t *testing.T) {
	assert.True(t, ValidTeamStatus(TeamStatusPending))
	assert.True(t, ValidTeamStatus(TeamStatusLocked))
	assert.False(t, ValidTeamStatus(TeamStatus("DRAFT")))
	assert.False(t, ValidTeamStatus(TeamStatus("")))
}

func TestTeamAcceptsMembers(t *testing.T) {
	team := &Team{Status: TeamStatusPending}
	assert.True(t, team.AcceptsMembers())

	team.Status = TeamStatusApproved
	assert.True(t, team.AcceptsMembers())

	team.Status = TeamStatusRejected
	assert.False(t, team.AcceptsMembers())

	team.Status = TeamStatusLocked
	assert.False(t, team.AcceptsMembers())
}

func TestTeamIsFull(t *testing.T) {
	team := &Team{MaxSize: 4, MemberCount: 3}
	assert.False(t, team.IsFull())

	team.MemberCount = 4
	assert.True(t, team.IsFull())

	// Zero max size means unbounded
	team = &Team{MaxSize: 0, MemberCount: 100}
	assert.False(t, team.IsFull())
}
