package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// Narrow store interfaces keep the formation workflow testable without a
// database. The concrete repositories satisfy them.

type teamEventStore interface {
	GetByID(ctx context.Context, id int64) (*models.Event, error)
}

type teamStore interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id int64) (*models.Team, error)
	GetMembers(ctx context.Context, teamID int64) ([]models.TeamMember, error)
	ListByEvent(ctx context.Context, eventID int64, status *models.TeamStatus) ([]models.Team, error)
	IsMemberOfEvent(ctx context.Context, eventID, userID int64) (bool, error)
}

type joinRequestStore interface {
	Create(ctx context.Context, req *models.JoinRequest) error
	HasPending(ctx context.Context, teamID, userID int64) (bool, error)
}

type participantStore interface {
	Create(ctx context.Context, p *models.SoloParticipant) error
	Exists(ctx context.Context, eventID, userID int64) (bool, error)
}

type notificationWriter interface {
	Create(ctx context.Context, n *models.Notification) error
}

// TeamService defines the interface for the student side of team formation
type TeamService interface {
	CreateTeam(ctx context.Context, eventID, userID int64, req *dto.CreateTeamRequest) (*dto.TeamResponse, error)
	GetTeam(ctx context.Context, eventID, teamID int64) (*dto.TeamResponse, error)
	ListTeams(ctx context.Context, eventID int64) ([]dto.TeamResponse, error)
	RequestToJoin(ctx context.Context, eventID, teamID, userID int64) (*dto.JoinRequestResponse, error)
	ApplySolo(ctx context.Context, eventID, userID int64, req *dto.SoloApplicationRequest) (*dto.SoloParticipantResponse, error)
}

// teamServiceImpl implements TeamService
type teamServiceImpl struct {
	events        teamEventStore
	teams         teamStore
	requests      joinRequestStore
	participants  participantStore
	notifications notificationWriter
	logger        zerolog.Logger
}

// NewTeamService creates a new TeamService
func NewTeamService(
	events teamEventStore,
	teams teamStore,
	requests joinRequestStore,
	participants participantStore,
	notifications notificationWriter,
	logger zerolog.Logger,
) TeamService {
	return &teamServiceImpl{
		events:        events,
		teams:         teams,
		requests:      requests,
		participants:  participants,
		notifications: notifications,
		logger:        logger,
	}
}

// CreateTeam registers a new pending team with the caller as leader and
// first member
func (s *teamServiceImpl) CreateTeam(ctx context.Context, eventID, userID int64, req *dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.FormationOpen() {
		return nil, apperrors.ErrFormationLocked
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("team name is required")
	}
	if req.MaxSize < 0 {
		return nil, apperrors.NewValidationError("team size cannot be negative")
	}
	maxSize := req.MaxSize
	if maxSize == 0 {
		maxSize = event.MaxTeamSize
	}
	if event.MaxTeamSize > 0 && maxSize > event.MaxTeamSize {
		return nil, apperrors.NewValidationError("team size exceeds the event limit")
	}

	if err := s.ensureNotRegistered(ctx, eventID, userID); err != nil {
		return nil, err
	}

	team := &models.Team{
		EventID:        eventID,
		Name:           name,
		LeaderID:       userID,
		RequiredSkills: helpers.ParseSkillList(req.RequiredSkills),
		MaxSize:        maxSize,
	}
	if err := s.teams.Create(ctx, team); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("teamID", team.ID).Int64("eventID", eventID).
		Int64("leaderID", userID).Msg("Team created")

	return dto.NewTeamResponse(team), nil
}

// GetTeam retrieves a team of the event including its members
func (s *teamServiceImpl) GetTeam(ctx context.Context, eventID, teamID int64) (*dto.TeamResponse, error) {
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.EventID != eventID {
		return nil, apperrors.ErrTeamNotFound
	}

	members, err := s.teams.GetMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}
	team.Members = members

	return dto.NewTeamResponse(team), nil
}

// ListTeams lists the teams of an event
func (s *teamServiceImpl) ListTeams(ctx context.Context, eventID int64) ([]dto.TeamResponse, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	teams, err := s.teams.ListByEvent(ctx, eventID, nil)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, *dto.NewTeamResponse(&teams[i]))
	}
	return responses, nil
}

// RequestToJoin files a pending join request and notifies the team leader
func (s *teamServiceImpl) RequestToJoin(ctx context.Context, eventID, teamID, userID int64) (*dto.JoinRequestResponse, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.FormationOpen() {
		return nil, apperrors.ErrFormationLocked
	}

	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.EventID != eventID {
		return nil, apperrors.ErrTeamNotFound
	}
	if !team.AcceptsMembers() {
		return nil, apperrors.ErrTeamNotJoinable
	}
	if team.IsFull() {
		return nil, apperrors.ErrTeamFull
	}

	member, err := s.teams.IsMemberOfEvent(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	if member {
		return nil, apperrors.ErrAlreadyTeamMember
	}

	pending, err := s.requests.HasPending(ctx, teamID, userID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, apperrors.ErrDuplicateRequest
	}

	req := &models.JoinRequest{
		EventID: eventID,
		TeamID:  teamID,
		UserID:  userID,
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, err
	}

	s.notify(ctx, &models.Notification{
		UserID:  team.LeaderID,
		Kind:    models.NotificationJoinRequest,
		Message: fmt.Sprintf("New request to join team %q", team.Name),
		RefType: refType("join_request"),
		RefID:   &req.ID,
	})

	return dto.NewJoinRequestResponse(req), nil
}

// ApplySolo registers the caller as a solo participant of the event.
// Repeating the application reports a conflict instead of duplicating
// the registration.
func (s *teamServiceImpl) ApplySolo(ctx context.Context, eventID, userID int64, req *dto.SoloApplicationRequest) (*dto.SoloParticipantResponse, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.FormationOpen() {
		return nil, apperrors.ErrFormationLocked
	}

	member, err := s.teams.IsMemberOfEvent(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	if member {
		return nil, apperrors.ErrAlreadyTeamMember
	}

	p := &models.SoloParticipant{
		EventID: eventID,
		UserID:  userID,
	}
	if req != nil {
		p.Note = req.Note
	}
	if err := s.participants.Create(ctx, p); err != nil {
		return nil, err
	}

	return dto.NewSoloParticipantResponse(p), nil
}

// ensureNotRegistered rejects callers who already belong to the event,
// either through a team or as a solo participant
func (s *teamServiceImpl) ensureNotRegistered(ctx context.Context, eventID, userID int64) error {
	member, err := s.teams.IsMemberOfEvent(ctx, eventID, userID)
	if err != nil {
		return err
	}
	if member {
		return apperrors.ErrAlreadyTeamMember
	}

	solo, err := s.participants.Exists(ctx, eventID, userID)
	if err != nil {
		return err
	}
	if solo {
		return apperrors.ErrAlreadyRegistered
	}
	return nil
}

// notify writes a notification best effort; a failed write never fails
// the operation that triggered it
func (s *teamServiceImpl) notify(ctx context.Context, n *models.Notification) {
	if err := s.notifications.Create(ctx, n); err != nil {
		s.logger.Warn().Err(err).Int64("userID", n.UserID).Str("kind", n.Kind).
			Msg("Failed to write notification")
	}
}

func refType(t string) *string {
	return &t
}
