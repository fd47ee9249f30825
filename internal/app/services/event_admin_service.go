package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

type adminTeamStore interface {
	GetByID(ctx context.Context, id int64) (*models.Team, error)
	ListByEvent(ctx context.Context, eventID int64, status *models.TeamStatus) ([]models.Team, error)
	UpdateStatus(ctx context.Context, teamID int64, status models.TeamStatus) error
	AddMember(ctx context.Context, teamID, userID int64) error
	LockFormation(ctx context.Context, eventID int64) (int64, error)
	CountByStatus(ctx context.Context, eventID int64) (map[models.TeamStatus]int, error)
}

type adminRequestStore interface {
	GetByID(ctx context.Context, id int64) (*models.JoinRequest, error)
	ListByEvent(ctx context.Context, eventID int64, status *models.JoinRequestStatus) ([]models.JoinRequest, error)
	Decide(ctx context.Context, requestID int64, status models.JoinRequestStatus) error
	CountPendingByEvent(ctx context.Context, eventID int64) (int, error)
}

type adminParticipantStore interface {
	GetByID(ctx context.Context, id int64) (*models.SoloParticipant, error)
	ListByEvent(ctx context.Context, eventID int64) ([]models.SoloParticipant, error)
	Move(ctx context.Context, participantID, teamID int64) error
	CountByEvent(ctx context.Context, eventID int64) (int, error)
}

// EventAdminService defines the interface for the formation dashboard of
// an event organizer
type EventAdminService interface {
	GetSummary(ctx context.Context, eventID, userID int64, role models.RoleType) (*dto.DashboardSummaryResponse, error)
	ListTeams(ctx context.Context, eventID, userID int64, role models.RoleType, status *models.TeamStatus) ([]dto.TeamResponse, error)
	ListParticipants(ctx context.Context, eventID, userID int64, role models.RoleType) ([]dto.SoloParticipantResponse, error)
	ListRequests(ctx context.Context, eventID, userID int64, role models.RoleType, status *models.JoinRequestStatus) ([]dto.JoinRequestResponse, error)
	UpdateTeamStatus(ctx context.Context, eventID, teamID, userID int64, role models.RoleType, status models.TeamStatus) (*dto.TeamResponse, error)
	MoveParticipant(ctx context.Context, eventID, participantID, teamID, userID int64, role models.RoleType) error
	LockFormation(ctx context.Context, eventID, userID int64, role models.RoleType) (*dto.LockFormationResponse, error)
	DecideJoinRequest(ctx context.Context, eventID, requestID, userID int64, role models.RoleType, approve bool) (*dto.JoinRequestResponse, error)
}

// eventAdminServiceImpl implements EventAdminService
type eventAdminServiceImpl struct {
	events        teamEventStore
	teams         adminTeamStore
	requests      adminRequestStore
	participants  adminParticipantStore
	notifications notificationWriter
	logger        zerolog.Logger
}

// NewEventAdminService creates a new EventAdminService
func NewEventAdminService(
	events teamEventStore,
	teams adminTeamStore,
	requests adminRequestStore,
	participants adminParticipantStore,
	notifications notificationWriter,
	logger zerolog.Logger,
) EventAdminService {
	return &eventAdminServiceImpl{
		events:        events,
		teams:         teams,
		requests:      requests,
		participants:  participants,
		notifications: notifications,
		logger:        logger,
	}
}

// authorize loads the event and checks that the caller may administer it
func (s *eventAdminServiceImpl) authorize(ctx context.Context, eventID, userID int64, role models.RoleType) (*models.Event, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !canManageEvent(event, userID, role) {
		return nil, apperrors.NewForbiddenError("only the organizer may access the event dashboard")
	}
	return event, nil
}

// GetSummary aggregates the formation counters of an event
func (s *eventAdminServiceImpl) GetSummary(ctx context.Context, eventID, userID int64, role models.RoleType) (*dto.DashboardSummaryResponse, error) {
	event, err := s.authorize(ctx, eventID, userID, role)
	if err != nil {
		return nil, err
	}

	counts, err := s.teams.CountByStatus(ctx, eventID)
	if err != nil {
		return nil, err
	}
	solo, err := s.participants.CountByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	pending, err := s.requests.CountPendingByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	requests, err := s.requests.ListByEvent(ctx, eventID, nil)
	if err != nil {
		return nil, err
	}

	teamCount := 0
	for _, c := range counts {
		teamCount += c
	}
	requestResponses := make([]dto.JoinRequestResponse, 0, len(requests))
	for i := range requests {
		requestResponses = append(requestResponses, *dto.NewJoinRequestResponse(&requests[i]))
	}
	return &dto.DashboardSummaryResponse{
		EventID:          eventID,
		TeamCount:        teamCount,
		PendingTeams:     counts[models.TeamStatusPending],
		ApprovedTeams:    counts[models.TeamStatusApproved],
		LockedTeams:      counts[models.TeamStatusLocked],
		SoloParticipants: solo,
		PendingRequests:  pending,
		FormationLocked:  event.FormationLocked,
		JoinRequests:     requestResponses,
	}, nil
}

// ListTeams lists the teams of the event for the dashboard
func (s *eventAdminServiceImpl) ListTeams(ctx context.Context, eventID, userID int64, role models.RoleType, status *models.TeamStatus) ([]dto.TeamResponse, error) {
	if _, err := s.authorize(ctx, eventID, userID, role); err != nil {
		return nil, err
	}

	teams, err := s.teams.ListByEvent(ctx, eventID, status)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, *dto.NewTeamResponse(&teams[i]))
	}
	return responses, nil
}

// ListParticipants lists the solo participants of the event
func (s *eventAdminServiceImpl) ListParticipants(ctx context.Context, eventID, userID int64, role models.RoleType) ([]dto.SoloParticipantResponse, error) {
	if _, err := s.authorize(ctx, eventID, userID, role); err != nil {
		return nil, err
	}

	participants, err := s.participants.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SoloParticipantResponse, 0, len(participants))
	for i := range participants {
		responses = append(responses, *dto.NewSoloParticipantResponse(&participants[i]))
	}
	return responses, nil
}

// ListRequests lists the join requests of the event
func (s *eventAdminServiceImpl) ListRequests(ctx context.Context, eventID, userID int64, role models.RoleType, status *models.JoinRequestStatus) ([]dto.JoinRequestResponse, error) {
	if _, err := s.authorize(ctx, eventID, userID, role); err != nil {
		return nil, err
	}

	requests, err := s.requests.ListByEvent(ctx, eventID, status)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.JoinRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, *dto.NewJoinRequestResponse(&requests[i]))
	}
	return responses, nil
}

// UpdateTeamStatus moves a team along the formation state machine and
// notifies its leader
func (s *eventAdminServiceImpl) UpdateTeamStatus(ctx context.Context, eventID, teamID, userID int64, role models.RoleType, status models.TeamStatus) (*dto.TeamResponse, error) {
	if _, err := s.authorize(ctx, eventID, userID, role); err != nil {
		return nil, err
	}
	if !models.ValidTeamStatus(status) {
		return nil, apperrors.NewValidationError("unknown team status")
	}

	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.EventID != eventID {
		return nil, apperrors.ErrTeamNotFound
	}
	if !team.Status.CanTransitionTo(status) {
		return nil, apperrors.ErrInvalidTransition
	}

	if err := s.teams.UpdateStatus(ctx, teamID, status); err != nil {
		return nil, err
	}
	team.Status = status
	s.logger.Info().Int64("teamID", teamID).Int64("eventID", eventID).
		Str("status", string(status)).Msg("Team status changed")

	s.notify(ctx, &models.Notification{
		UserID:  team.LeaderID,
		Kind:    models.NotificationTeamStatus,
		Message: fmt.Sprintf("Team %q is now %s", team.Name, status),
		RefType: refType("team"),
		RefID:   &team.ID,
	})

	return dto.NewTeamResponse(team), nil
}

// MoveParticipant places a solo participant into a team of the same event
func (s *eventAdminServiceImpl) MoveParticipant(ctx context.Context, eventID, participantID, teamID, userID int64, role models.RoleType) error {
	event, err := s.authorize(ctx, eventID, userID, role)
	if err != nil {
		return err
	}
	if !event.FormationOpen() {
		return apperrors.ErrFormationLocked
	}

	participant, err := s.participants.GetByID(ctx, participantID)
	if err != nil {
		return err
	}
	if participant.EventID != eventID {
		return apperrors.ErrParticipantNotFound
	}

	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return err
	}
	if team.EventID != eventID {
		return apperrors.ErrTeamNotFound
	}

	if err := s.participants.Move(ctx, participantID, teamID); err != nil {
		return err
	}
	s.logger.Info().Int64("participantID", participantID).Int64("teamID", teamID).
		Int64("eventID", eventID).Msg("Solo participant moved into team")

	s.notify(ctx, &models.Notification{
		UserID:  participant.UserID,
		Kind:    models.NotificationJoinDecision,
		Message: fmt.Sprintf("You were placed into team %q", team.Name),
		RefType: refType("team"),
		RefID:   &team.ID,
	})
	return nil
}

// LockFormation freezes team formation for the event. Every approved
// team becomes locked in the same transaction; pending and rejected
// teams are left as they are.
func (s *eventAdminServiceImpl) LockFormation(ctx context.Context, eventID, userID int64, role models.RoleType) (*dto.LockFormationResponse, error) {
	event, err := s.authorize(ctx, eventID, userID, role)
	if err != nil {
		return nil, err
	}
	if event.FormationLocked {
		return nil, apperrors.ErrFormationLocked
	}

	locked, err := s.teams.LockFormation(ctx, eventID)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("eventID", eventID).Int64("lockedTeams", locked).
		Msg("Team formation locked")

	return &dto.LockFormationResponse{
		EventID:     eventID,
		LockedTeams: int(locked),
	}, nil
}

// DecideJoinRequest approves or rejects a pending join request and
// notifies the requester. Approval adds the member first so a full team
// leaves the request pending instead of losing it.
func (s *eventAdminServiceImpl) DecideJoinRequest(ctx context.Context, eventID, requestID, userID int64, role models.RoleType, approve bool) (*dto.JoinRequestResponse, error) {
	event, err := s.authorize(ctx, eventID, userID, role)
	if err != nil {
		return nil, err
	}
	if !event.FormationOpen() {
		return nil, apperrors.ErrFormationLocked
	}

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.EventID != eventID {
		return nil, apperrors.ErrRequestNotFound
	}
	if req.Status != models.JoinRequestPending {
		return nil, apperrors.ErrRequestDecided
	}

	team, err := s.teams.GetByID(ctx, req.TeamID)
	if err != nil {
		return nil, err
	}

	decision := models.JoinRequestRejected
	message := fmt.Sprintf("Your request to join team %q was rejected", team.Name)
	if approve {
		if err := s.teams.AddMember(ctx, req.TeamID, req.UserID); err != nil {
			return nil, err
		}
		decision = models.JoinRequestApproved
		message = fmt.Sprintf("Your request to join team %q was approved", team.Name)
	}

	if err := s.requests.Decide(ctx, requestID, decision); err != nil {
		return nil, err
	}
	req.Status = decision

	s.notify(ctx, &models.Notification{
		UserID:  req.UserID,
		Kind:    models.NotificationJoinDecision,
		Message: message,
		RefType: refType("join_request"),
		RefID:   &req.ID,
	})

	return dto.NewJoinRequestResponse(req), nil
}

func (s *eventAdminServiceImpl) notify(ctx context.Context, n *models.Notification) {
	if err := s.notifications.Create(ctx, n); err != nil {
		s.logger.Warn().Err(err).Int64("userID", n.UserID).Str("kind", n.Kind).
			Msg("Failed to write notification")
	}
}
