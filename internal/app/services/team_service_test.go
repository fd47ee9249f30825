package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

type teamServiceMocks struct {
	events        *mockEventStore
	teams         *mockTeamStore
	requests      *mockRequestStore
	participants  *mockParticipantStore
	notifications *mockNotificationWriter
}

func newTeamService(t *testing.T) (TeamService, *teamServiceMocks) {
	t.Helper()
	m := &teamServiceMocks{
		events:        new(mockEventStore),
		teams:         new(mockTeamStore),
		requests:      new(mockRequestStore),
		participants:  new(mockParticipantStore),
		notifications: new(mockNotificationWriter),
	}
	svc := NewTeamService(m.events, m.teams, m.requests, m.participants, m.notifications, zerolog.Nop())
	return svc, m
}

func openEvent(id int64) *models.Event {
	return &models.Event{
		ID:          id,
		Status:      models.EventStatusOpen,
		MinTeamSize: 2,
		MaxTeamSize: 5,
	}
}

func TestCreateTeamSuccess(t *testing.T) {
	svc, m := newTeamService(t)
	ctx := context.Background()

	m.events.On("GetByID", ctx, int64(1)).Return(openEvent(1), nil)
	m.teams.On("IsMemberOfEvent", ctx, int64(1), int64(7)).Return(false, nil)
	m.participants.On("Exists", ctx, int64(1), int64(7)).Return(false, nil)
	m.teams.On("Create", ctx, mock.MatchedBy(func(team *models.Team) bool {
		return team.EventID == 1 && team.LeaderID == 7 && team.Name == "Byte Club" && team.MaxSize == 4
	})).Return(nil)

	resp, err := svc.CreateTeam(ctx, 1, 7, &dto.CreateTeamRequest{
		Name:           "  Byte Club  ",
		RequiredSkills: "go, react",
		MaxSize:        4,
	})
	require.NoError(t, err)
	assert.Equal(t, "Byte Club", resp.Name)
	assert.Equal(t, []string{"go", "react"}, resp.RequiredSkills)
	m.teams.AssertExpectations(t)
}

func TestCreateTeamDefaultsToEventMaxSize(t *testing.T) {
	svc, m := newTeamService(t)
	ctx := context.Background()

	m.events.On("GetByID", ctx, int64(1)).Return(openEvent(1), nil)
	m.teams.On("IsMemberOfEvent", ctx, int64(1), int64(7)).Return(false, nil)
	m.participants.On("Exists", ctx, int64(1), int64(7)).Return(false, nil)
	m.teams.On("Create", ctx, mock.MatchedBy(func(team *models.Team) bool {
		return team.MaxSize == 5
	})).Return(nil)

	_, err := svc.CreateTeam(ctx, 1, 7, &dto.CreateTeamRequest{Name: "Defaults"})
	require.NoError(t, err)
	m.teams.AssertExpectations(t)
}

func TestCreateTeamFormationLocked(t *testing.T) {
	svc, m := newTeamService(t)
	ctx := context.Background()

	event := openEvent(1)
	event.FormationLocked = true
	m.events.On("GetByID", ctx, int64(1)).Return(event, nil)

	_, err := svc.CreateTeam(ctx, 1, 7, &dto.CreateTeamRequest{Name: "Late"})
	assert.ErrorIs(t, err, apperrors.ErrFormationLocked)
	m.teams.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateTeamSizeExceedsEventLimit(t *testing.T) {
	svc, m := newTeamService(t)
	ctx := context.Background()

	m.events.On("GetByID", ctx, int64(1)).Return(openEvent(1), nil)

	_, err := svc.CreateTeam(ctx, 1, 7, &dto.CreateTeamRequest{Name: "Oversized", MaxSize: 9})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateTeamAlreadyRegisteredSolo(t *testing.T) {
	svc, m := newTeamService(t)
	ctx := context.Background()

	m.events.On("GetByID", ctx, int64(1)).Return(openEvent(1), nil)
	m.teams.On("IsMemberOfEvent", ctx, int64(1), int64(7)).Return(false, nil)
	m.participants.On("Exists", ctx, int64(1), int64(7)).Return(true, nil)

	_, err := svc.CreateTeam(ctx, 1, 7, &dto.CreateTeamRequest{Name: "Switchers"})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyRegistered)
}

func TestRequestToJoinSuccessNotifiesLeader(t *testing.T) {
	svc, m := newTeamService(t)
	ctx := context.Background()

	team := &models.Team{
		ID:          3,
		EventID:     1,
		Name:        "Byte Club",
		LeaderID:    5,
		MaxSize:     4,
		MemberCount: 2,
		Status:      models.TeamStatusPending,
	}
	m.events.On("GetByID", ctx, int64(1)).Return(openEvent(1), nil)
	m.teams.On("GetByID", ctx, int64(3)).Return(team, nil)
	m.teams.On("IsMemberOfEvent", ctx, int64(1), int64(7)).Return(false, nil)
	m.requests.On("HasPending", ctx, int64(3), int64(7)).Return(false, nil)
	m.requests.On("Create", ctx, mock.AnythingOfType("*models.JoinRequest")).Return(nil)
	m.notifications.On("Create", ctx, mock.MatchedBy(func(n *models.Notification) bool {
		return n.UserID == 5 && n.Kind == models.NotificationJoinRequest
	})).Return(nil)

	resp, err := svc.RequestToJoin(ctx, 1, 3, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.TeamID)
	m.notifications.AssertExpectations(t)
}

func TestRequestToJoinTeamFull(t *testing.T) {
	svc, m := newTeamService(t)
	ctx := context.Background()

	team := &models.Team{
		ID: 3, EventID: 1, MaxSize: 2, MemberCount: 2,
		Status: models.TeamStatusApproved,
	}
	m.events.On("GetByID", ctx, int64(1)).Return(openEvent(1), nil)
	m.teams.On("GetByID", ctx, int64(3)).Return(team, nil)

	_, err := svc.RequestToJoin(ctx, 1, 3, 7)
	assert.ErrorIs(t, err, apperrors.ErrTeamFull)
}

func TestRequestToJoinRejectedTeam(t *testing.T) {
	svc, m := newTeamService(t)
	ctx := context.Background()

	team := &models.Team{ID: 3, EventID: 1, Status: models.TeamStatusRejected}
	m.events.On("GetByID", ctx, int64(1)).Return(openEvent(1), nil)
	m.teams.On("GetByID", ctx, int64(3)).Return(team, nil)

	_, err := svc.RequestToJoin(ctx, 1, 3, 7)
	assert.ErrorIs(t, err, apperrors.ErrTeamNotJoinable)
}

func TestRequestToJoinDuplicatePending(t *testing.T) {
	svc, m := newTeamService(t)
	ctx := context.Background()

	team := &models.Team{ID: 3, EventID: 1, MaxSize: 4, MemberCount: 1, Status: models.TeamStatusPending}
	m.events.On("GetByID", ctx, int64(1)).Return(openEvent(1), nil)
	m.teams.On("GetByID", ctx, int64(3)).Return(team, nil)
	m.teams.On("IsMemberOfEvent", ctx, int64(1), int64(7)).Return(false, nil)
	m.requests.On("HasPending", ctx, int64(3), int64(7)).Return(true, nil)

	_, err := svc.RequestToJoin(ctx, 1, 3, 7)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateRequest)
}

func TestRequestToJoinWrongEvent(t *testing.T) {
	svc, m := newTeamService(t)
	ctx := context.Background()

	team := &models.Team{ID: 3, EventID: 2, Status: models.TeamStatusPending}
	m.events.On("GetByID", ctx, int64(1)).Return(openEvent(1), nil)
	m.teams.On("GetByID", ctx, int64(3)).Return(team, nil)

	_, err := svc.RequestToJoin(ctx, 1, 3, 7)
	assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
}

func TestRequestToJoinNotificationFailureDoesNotFail(t *testing.T) {
	svc, m := newTeamService(t)
	ctx := context.Background()

	team := &models.Team{ID: 3, EventID: 1, LeaderID: 5, MaxSize: 4, MemberCount: 1, Status: models.TeamStatusPending}
	m.events.On("GetByID", ctx, int64(1)).Return(openEvent(1), nil)
	m.teams.On("GetByID", ctx, int64(3)).Return(team, nil)
	m.teams.On("IsMemberOfEvent", ctx, int64(1), int64(7)).Return(false, nil)
	m.requests.On("HasPending", ctx, int64(3), int64(7)).Return(false, nil)
	m.requests.On("Create", ctx, mock.AnythingOfType("*models.JoinRequest")).Return(nil)
	m.notifications.On("Create", ctx, mock.Anything).Return(assert.AnError)

	_, err := svc.RequestToJoin(ctx, 1, 3, 7)
	assert.NoError(t, err)
}

func TestApplySoloSuccess(t *testing.T) {
	svc, m := newTeamService(t)
	ctx := context.Background()

	note := "open to any team"
	m.events.On("GetByID", ctx, int64(1)).Return(openEvent(1), nil)
	m.teams.On("IsMemberOfEvent", ctx, int64(1), int64(7)).Return(false, nil)
	m.participants.On("Create", ctx, mock.MatchedBy(func(p *models.SoloParticipant) bool {
		return p.EventID == 1 && p.UserID == 7 && p.Note != nil && *p.Note == note
	})).Return(nil)

	resp, err := svc.ApplySolo(ctx, 1, 7, &dto.SoloApplicationRequest{Note: &note})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.EventID)
	m.participants.AssertExpectations(t)
}

func TestApplySoloAlreadyOnTeam(t *testing.T) {
	svc, m := newTeamService(t)
	ctx := context.Background()

	m.events.On("GetByID", ctx, int64(1)).Return(openEvent(1), nil)
	m.teams.On("IsMemberOfEvent", ctx, int64(1), int64(7)).Return(true, nil)

	_, err := svc.ApplySolo(ctx, 1, 7, nil)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyTeamMember)
}

func TestGetTeamWrongEvent(t *testing.T) {
	svc, m := newTeamService(t)
	ctx := context.Background()

	team := &models.Team{ID: 3, EventID: 2}
	m.teams.On("GetByID", ctx, int64(3)).Return(team, nil)

	_, err := svc.GetTeam(ctx, 1, 3)
	assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
}
