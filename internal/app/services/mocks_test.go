package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/campushub/backend/internal/app/models"
)

type mockEventStore struct {
	mock.Mock
}

func (m *mockEventStore) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

// mockTeamStore satisfies both the student-side and the dashboard-side
// team store interfaces.
type mockTeamStore struct {
	mock.Mock
}

func (m *mockTeamStore) Create(ctx context.Context, team *models.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *mockTeamStore) GetByID(ctx context.Context, id int64) (*models.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Team), args.Error(1)
}

func (m *mockTeamStore) GetMembers(ctx context.Context, teamID int64) ([]models.TeamMember, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TeamMember), args.Error(1)
}

func (m *mockTeamStore) ListByEvent(ctx context.Context, eventID int64, status *models.TeamStatus) ([]models.Team, error) {
	args := m.Called(ctx, eventID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Team), args.Error(1)
}

func (m *mockTeamStore) IsMemberOfEvent(ctx context.Context, eventID, userID int64) (bool, error) {
	args := m.Called(ctx, eventID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockTeamStore) UpdateStatus(ctx context.Context, teamID int64, status models.TeamStatus) error {
	args := m.Called(ctx, teamID, status)
	return args.Error(0)
}

func (m *mockTeamStore) AddMember(ctx context.Context, teamID, userID int64) error {
	args := m.Called(ctx, teamID, userID)
	return args.Error(0)
}

func (m *mockTeamStore) LockFormation(ctx context.Context, eventID int64) (int64, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTeamStore) CountByStatus(ctx context.Context, eventID int64) (map[models.TeamStatus]int, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[models.TeamStatus]int), args.Error(1)
}

type mockRequestStore struct {
	mock.Mock
}

func (m *mockRequestStore) Create(ctx context.Context, req *models.JoinRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *mockRequestStore) HasPending(ctx context.Context, teamID, userID int64) (bool, error) {
	args := m.Called(ctx, teamID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRequestStore) GetByID(ctx context.Context, id int64) (*models.JoinRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JoinRequest), args.Error(1)
}

func (m *mockRequestStore) ListByEvent(ctx context.Context, eventID int64, status *models.JoinRequestStatus) ([]models.JoinRequest, error) {
	args := m.Called(ctx, eventID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JoinRequest), args.Error(1)
}

func (m *mockRequestStore) Decide(ctx context.Context, requestID int64, status models.JoinRequestStatus) error {
	args := m.Called(ctx, requestID, status)
	return args.Error(0)
}

func (m *mockRequestStore) CountPendingByEvent(ctx context.Context, eventID int64) (int, error) {
	args := m.Called(ctx, eventID)
	return args.Int(0), args.Error(1)
}

type mockParticipantStore struct {
	mock.Mock
}

func (m *mockParticipantStore) Create(ctx context.Context, p *models.SoloParticipant) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockParticipantStore) Exists(ctx context.Context, eventID, userID int64) (bool, error) {
	args := m.Called(ctx, eventID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockParticipantStore) GetByID(ctx context.Context, id int64) (*models.SoloParticipant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SoloParticipant), args.Error(1)
}

func (m *mockParticipantStore) ListByEvent(ctx context.Context, eventID int64) ([]models.SoloParticipant, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SoloParticipant), args.Error(1)
}

func (m *mockParticipantStore) Move(ctx context.Context, participantID, teamID int64) error {
	args := m.Called(ctx, participantID, teamID)
	return args.Error(0)
}

func (m *mockParticipantStore) CountByEvent(ctx context.Context, eventID int64) (int, error) {
	args := m.Called(ctx, eventID)
	return args.Int(0), args.Error(1)
}

type mockNotificationWriter struct {
	mock.Mock
}

func (m *mockNotificationWriter) Create(ctx context.Context, n *models.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
