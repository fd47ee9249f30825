package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

type adminServiceMocks struct {
	events        *mockEventStore
	teams         *mockTeamStore
	requests      *mockRequestStore
	participants  *mockParticipantStore
	notifications *mockNotificationWriter
}

func newAdminService(t *testing.T) (EventAdminService, *adminServiceMocks) {
	t.Helper()
	m := &adminServiceMocks{
		events:        new(mockEventStore),
		teams:         new(mockTeamStore),
		requests:      new(mockRequestStore),
		participants:  new(mockParticipantStore),
		notifications: new(mockNotificationWriter),
	}
	svc := NewEventAdminService(m.events, m.teams, m.requests, m.participants, m.notifications, zerolog.Nop())
	return svc, m
}

func organizerEvent(id, organizerID int64) *models.Event {
	return &models.Event{
		ID:          id,
		OrganizerID: organizerID,
		Status:      models.EventStatusOpen,
		MaxTeamSize: 5,
	}
}

func TestGetSummaryAggregatesCounters(t *testing.T) {
	svc, m := newAdminService(t)
	ctx := context.Background()

	m.events.On("GetByID", ctx, int64(1)).Return(organizerEvent(1, 9), nil)
	m.teams.On("CountByStatus", ctx, int64(1)).Return(map[models.TeamStatus]int{
		models.TeamStatusPending:  3,
		models.TeamStatusApproved: 2,
		models.TeamStatusRejected: 1,
	}, nil)
	m.participants.On("CountByEvent", ctx, int64(1)).Return(4, nil)
	m.requests.On("CountPendingByEvent", ctx, int64(1)).Return(5, nil)
	m.requests.On("ListByEvent", ctx, int64(1), (*models.JoinRequestStatus)(nil)).Return([]models.JoinRequest{
		{ID: 6, EventID: 1, TeamID: 3, UserID: 11, UserName: "Ada Lovelace", TeamName: "Byte Club", Status: models.JoinRequestPending},
		{ID: 7, EventID: 1, TeamID: 3, UserID: 12, UserName: "Alan Turing", TeamName: "Byte Club", Status: models.JoinRequestRejected},
	}, nil)

	summary, err := svc.GetSummary(ctx, 1, 9, models.RoleOrganizer)
	require.NoError(t, err)
	assert.Equal(t, 6, summary.TeamCount)
	assert.Equal(t, 3, summary.PendingTeams)
	assert.Equal(t, 2, summary.ApprovedTeams)
	assert.Equal(t, 0, summary.LockedTeams)
	assert.Equal(t, 4, summary.SoloParticipants)
	assert.Equal(t, 5, summary.PendingRequests)
	assert.False(t, summary.FormationLocked)
	require.Len(t, summary.JoinRequests, 2)
	assert.Equal(t, "Ada Lovelace", summary.JoinRequests[0].UserName)
	assert.Equal(t, "Byte Club", summary.JoinRequests[0].TeamName)
	assert.Equal(t, models.JoinRequestPending, summary.JoinRequests[0].Status)
	assert.Equal(t, models.JoinRequestRejected, summary.JoinRequests[1].Status)
}

func TestDashboardForbiddenForNonOrganizer(t *testing.T) {
	svc, m := newAdminService(t)
	ctx := context.Background()

	m.events.On("GetByID", ctx, int64(1)).Return(organizerEvent(1, 9), nil)

	_, err := svc.GetSummary(ctx, 1, 12, models.RoleOrganizer)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestDashboardPlatformAdminBypassesOwnership(t *testing.T) {
	svc, m := newAdminService(t)
	ctx := context.Background()

	m.events.On("GetByID", ctx, int64(1)).Return(organizerEvent(1, 9), nil)
	m.teams.On("CountByStatus", ctx, int64(1)).Return(map[models.TeamStatus]int{}, nil)
	m.participants.On("CountByEvent", ctx, int64(1)).Return(0, nil)
	m.requests.On("CountPendingByEvent", ctx, int64(1)).Return(0, nil)
	m.requests.On("ListByEvent", ctx, int64(1), (*models.JoinRequestStatus)(nil)).Return([]models.JoinRequest{}, nil)

	_, err := svc.GetSummary(ctx, 1, 12, models.RoleAdmin)
	assert.NoError(t, err)
}

func TestUpdateTeamStatusApproves(t *testing.T) {
	svc, m := newAdminService(t)
	ctx := context.Background()

	team := &models.Team{ID: 3, EventID: 1, Name: "Byte Club", LeaderID: 7, Status: models.TeamStatusPending}
	m.events.On("GetByID", ctx, int64(1)).Return(organizerEvent(1, 9), nil)
	m.teams.On("GetByID", ctx, int64(3)).Return(team, nil)
	m.teams.On("UpdateStatus", ctx, int64(3), models.TeamStatusApproved).Return(nil)
	m.notifications.On("Create", ctx, mock.MatchedBy(func(n *models.Notification) bool {
		return n.UserID == 7 && n.Kind == models.NotificationTeamStatus
	})).Return(nil)

	resp, err := svc.UpdateTeamStatus(ctx, 1, 3, 9, models.RoleOrganizer, models.TeamStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.TeamStatusApproved, resp.Status)
	m.notifications.AssertExpectations(t)
}

func TestUpdateTeamStatusInvalidTransition(t *testing.T) {
	svc, m := newAdminService(t)
	ctx := context.Background()

	team := &models.Team{ID: 3, EventID: 1, Status: models.TeamStatusRejected}
	m.events.On("GetByID", ctx, int64(1)).Return(organizerEvent(1, 9), nil)
	m.teams.On("GetByID", ctx, int64(3)).Return(team, nil)

	_, err := svc.UpdateTeamStatus(ctx, 1, 3, 9, models.RoleOrganizer, models.TeamStatusApproved)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	m.teams.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTeamStatusUnknownStatus(t *testing.T) {
	svc, m := newAdminService(t)
	ctx := context.Background()

	m.events.On("GetByID", ctx, int64(1)).Return(organizerEvent(1, 9), nil)

	_, err := svc.UpdateTeamStatus(ctx, 1, 3, 9, models.RoleOrganizer, models.TeamStatus("DRAFT"))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestMoveParticipantSuccess(t *testing.T) {
	svc, m := newAdminService(t)
	ctx := context.Background()

	participant := &models.SoloParticipant{ID: 4, EventID: 1, UserID: 11}
	team := &models.Team{ID: 3, EventID: 1, Name: "Byte Club"}
	m.events.On("GetByID", ctx, int64(1)).Return(organizerEvent(1, 9), nil)
	m.participants.On("GetByID", ctx, int64(4)).Return(participant, nil)
	m.teams.On("GetByID", ctx, int64(3)).Return(team, nil)
	m.participants.On("Move", ctx, int64(4), int64(3)).Return(nil)
	m.notifications.On("Create", ctx, mock.MatchedBy(func(n *models.Notification) bool {
		return n.UserID == 11 && n.Kind == models.NotificationJoinDecision
	})).Return(nil)

	err := svc.MoveParticipant(ctx, 1, 4, 3, 9, models.RoleOrganizer)
	require.NoError(t, err)
	m.participants.AssertExpectations(t)
}

func TestMoveParticipantFormationLocked(t *testing.T) {
	svc, m := newAdminService(t)
	ctx := context.Background()

	event := organizerEvent(1, 9)
	event.FormationLocked = true
	m.events.On("GetByID", ctx, int64(1)).Return(event, nil)

	err := svc.MoveParticipant(ctx, 1, 4, 3, 9, models.RoleOrganizer)
	assert.ErrorIs(t, err, apperrors.ErrFormationLocked)
	m.participants.AssertNotCalled(t, "Move", mock.Anything, mock.Anything, mock.Anything)
}

func TestMoveParticipantWrongEvent(t *testing.T) {
	svc, m := newAdminService(t)
	ctx := context.Background()

	participant := &models.SoloParticipant{ID: 4, EventID: 2, UserID: 11}
	m.events.On("GetByID", ctx, int64(1)).Return(organizerEvent(1, 9), nil)
	m.participants.On("GetByID", ctx, int64(4)).Return(participant, nil)

	err := svc.MoveParticipant(ctx, 1, 4, 3, 9, models.RoleOrganizer)
	assert.ErrorIs(t, err, apperrors.ErrParticipantNotFound)
	m.participants.AssertNotCalled(t, "Move", mock.Anything, mock.Anything, mock.Anything)
}

func TestLockFormationLocksApprovedTeams(t *testing.T) {
	svc, m := newAdminService(t)
	ctx := context.Background()

	m.events.On("GetByID", ctx, int64(1)).Return(organizerEvent(1, 9), nil)
	m.teams.On("LockFormation", ctx, int64(1)).Return(int64(3), nil)

	resp, err := svc.LockFormation(ctx, 1, 9, models.RoleOrganizer)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.EventID)
	assert.Equal(t, 3, resp.LockedTeams)
}

func TestLockFormationAlreadyLocked(t *testing.T) {
	svc, m := newAdminService(t)
	ctx := context.Background()

	event := organizerEvent(1, 9)
	event.FormationLocked = true
	m.events.On("GetByID", ctx, int64(1)).Return(event, nil)

	_, err := svc.LockFormation(ctx, 1, 9, models.RoleOrganizer)
	assert.ErrorIs(t, err, apperrors.ErrFormationLocked)
	m.teams.AssertNotCalled(t, "LockFormation", mock.Anything, mock.Anything)
}

func TestDecideJoinRequestApproveAddsMemberFirst(t *testing.T) {
	svc, m := newAdminService(t)
	ctx := context.Background()

	req := &models.JoinRequest{ID: 6, EventID: 1, TeamID: 3, UserID: 11, Status: models.JoinRequestPending}
	team := &models.Team{ID: 3, EventID: 1, Name: "Byte Club"}
	m.events.On("GetByID", ctx, int64(1)).Return(organizerEvent(1, 9), nil)
	m.requests.On("GetByID", ctx, int64(6)).Return(req, nil)
	m.teams.On("GetByID", ctx, int64(3)).Return(team, nil)
	m.teams.On("AddMember", ctx, int64(3), int64(11)).Return(nil)
	m.requests.On("Decide", ctx, int64(6), models.JoinRequestApproved).Return(nil)
	m.notifications.On("Create", ctx, mock.MatchedBy(func(n *models.Notification) bool {
		return n.UserID == 11 && n.Kind == models.NotificationJoinDecision
	})).Return(nil)

	resp, err := svc.DecideJoinRequest(ctx, 1, 6, 9, models.RoleOrganizer, true)
	require.NoError(t, err)
	assert.Equal(t, models.JoinRequestApproved, resp.Status)
	m.teams.AssertExpectations(t)
	m.requests.AssertExpectations(t)
}

func TestDecideJoinRequestApproveFullTeamStaysPending(t *testing.T) {
	svc, m := newAdminService(t)
	ctx := context.Background()

	req := &models.JoinRequest{ID: 6, EventID: 1, TeamID: 3, UserID: 11, Status: models.JoinRequestPending}
	team := &models.Team{ID: 3, EventID: 1, Name: "Byte Club"}
	m.events.On("GetByID", ctx, int64(1)).Return(organizerEvent(1, 9), nil)
	m.requests.On("GetByID", ctx, int64(6)).Return(req, nil)
	m.teams.On("GetByID", ctx, int64(3)).Return(team, nil)
	m.teams.On("AddMember", ctx, int64(3), int64(11)).Return(apperrors.ErrTeamFull)

	_, err := svc.DecideJoinRequest(ctx, 1, 6, 9, models.RoleOrganizer, true)
	assert.ErrorIs(t, err, apperrors.ErrTeamFull)
	m.requests.AssertNotCalled(t, "Decide", mock.Anything, mock.Anything, mock.Anything)
}

func TestDecideJoinRequestReject(t *testing.T) {
	svc, m := newAdminService(t)
	ctx := context.Background()

	req := &models.JoinRequest{ID: 6, EventID: 1, TeamID: 3, UserID: 11, Status: models.JoinRequestPending}
	team := &models.Team{ID: 3, EventID: 1, Name: "Byte Club"}
	m.events.On("GetByID", ctx, int64(1)).Return(organizerEvent(1, 9), nil)
	m.requests.On("GetByID", ctx, int64(6)).Return(req, nil)
	m.teams.On("GetByID", ctx, int64(3)).Return(team, nil)
	m.requests.On("Decide", ctx, int64(6), models.JoinRequestRejected).Return(nil)
	m.notifications.On("Create", ctx, mock.Anything).Return(nil)

	resp, err := svc.DecideJoinRequest(ctx, 1, 6, 9, models.RoleOrganizer, false)
	require.NoError(t, err)
	assert.Equal(t, models.JoinRequestRejected, resp.Status)
	m.teams.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything, mock.Anything)
}

func TestDecideJoinRequestFormationLocked(t *testing.T) {
	svc, m := newAdminService(t)
	ctx := context.Background()

	event := organizerEvent(1, 9)
	event.FormationLocked = true
	m.events.On("GetByID", ctx, int64(1)).Return(event, nil)

	_, err := svc.DecideJoinRequest(ctx, 1, 6, 9, models.RoleOrganizer, true)
	assert.ErrorIs(t, err, apperrors.ErrFormationLocked)
	m.teams.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything, mock.Anything)
	m.requests.AssertNotCalled(t, "Decide", mock.Anything, mock.Anything, mock.Anything)
}

func TestDecideJoinRequestAlreadyDecided(t *testing.T) {
	svc, m := newAdminService(t)
	ctx := context.Background()

	req := &models.JoinRequest{ID: 6, EventID: 1, TeamID: 3, UserID: 11, Status: models.JoinRequestApproved}
	m.events.On("GetByID", ctx, int64(1)).Return(organizerEvent(1, 9), nil)
	m.requests.On("GetByID", ctx, int64(6)).Return(req, nil)

	_, err := svc.DecideJoinRequest(ctx, 1, 6, 9, models.RoleOrganizer, true)
	assert.ErrorIs(t, err, apperrors.ErrRequestDecided)
}
