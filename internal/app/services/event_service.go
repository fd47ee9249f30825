package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// EventService defines the interface for event lifecycle operations
type EventService interface {
	CreateEvent(ctx context.Context, organizerID int64, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	GetEvents(ctx context.Context, status *models.EventStatus, page, size int) (*dto.EventListResponse, error)
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
	UpdateEvent(ctx context.Context, id, userID int64, role models.RoleType, req *dto.UpdateEventRequest) (*dto.EventResponse, error)
	UpdateStatus(ctx context.Context, id, userID int64, role models.RoleType, status models.EventStatus) error
	DeleteEvent(ctx context.Context, id, userID int64, role models.RoleType) error
	GetTimeline(ctx context.Context, eventID int64) ([]models.Milestone, error)
}

// eventServiceImpl implements EventService
type eventServiceImpl struct {
	eventRepo *repositories.EventRepository
	logger    zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(eventRepo *repositories.EventRepository, logger zerolog.Logger) EventService {
	return &eventServiceImpl{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// canManageEvent reports whether the caller may administer the event.
// Platform admins may manage any event; everyone else only their own.
func canManageEvent(event *models.Event, userID int64, role models.RoleType) bool {
	return event.OrganizerID == userID || role == models.RoleAdmin
}

// CreateEvent creates a new event with its timeline
func (s *eventServiceImpl) CreateEvent(ctx context.Context, organizerID int64, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	if !req.EndsAt.After(req.StartsAt) {
		return nil, apperrors.NewValidationError("event must end after it starts")
	}
	if req.MinTeamSize < 0 || req.MaxTeamSize < 0 {
		return nil, apperrors.NewValidationError("team size bounds cannot be negative")
	}
	if req.MaxTeamSize > 0 && req.MinTeamSize > req.MaxTeamSize {
		return nil, apperrors.NewValidationError("minimum team size cannot exceed the maximum")
	}

	event := &models.Event{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Location:    strings.TrimSpace(req.Location),
		OrganizerID: organizerID,
		Status:      models.EventStatusOpen,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		MinTeamSize: req.MinTeamSize,
		MaxTeamSize: req.MaxTeamSize,
	}
	for _, m := range req.Milestones {
		event.Milestones = append(event.Milestones, models.Milestone{
			Title:       strings.TrimSpace(m.Title),
			Description: m.Description,
			DueAt:       m.DueAt,
		})
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("eventID", event.ID).Int64("organizerID", organizerID).Msg("Event created")

	return dto.NewEventResponse(event), nil
}

// GetEvents lists events with pagination
func (s *eventServiceImpl) GetEvents(ctx context.Context, status *models.EventStatus, page, size int) (*dto.EventListResponse, error) {
	events, total, err := s.eventRepo.GetAll(ctx, status, page, size)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, *dto.NewEventResponse(&events[i]))
	}
	return &dto.EventListResponse{
		Events:     responses,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

// GetEvent retrieves an event by ID including its timeline
func (s *eventServiceImpl) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	milestones, err := s.eventRepo.GetMilestones(ctx, id)
	if err != nil {
		return nil, err
	}
	event.Milestones = milestones
	return event, nil
}

// UpdateEvent applies the non-nil fields of the request to the event
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, id, userID int64, role models.RoleType, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManageEvent(event, userID, role) {
		return nil, apperrors.NewForbiddenError("only the organizer may edit this event")
	}

	if req.Title != nil {
		event.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = strings.TrimSpace(*req.Location)
	}
	if req.StartsAt != nil {
		event.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		event.EndsAt = *req.EndsAt
	}
	if req.MinTeamSize != nil {
		event.MinTeamSize = *req.MinTeamSize
	}
	if req.MaxTeamSize != nil {
		event.MaxTeamSize = *req.MaxTeamSize
	}

	if !event.EndsAt.After(event.StartsAt) {
		return nil, apperrors.NewValidationError("event must end after it starts")
	}
	if event.MaxTeamSize > 0 && event.MinTeamSize > event.MaxTeamSize {
		return nil, apperrors.NewValidationError("minimum team size cannot exceed the maximum")
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return dto.NewEventResponse(event), nil
}

// UpdateStatus changes the lifecycle status of an event
func (s *eventServiceImpl) UpdateStatus(ctx context.Context, id, userID int64, role models.RoleType, status models.EventStatus) error {
	switch status {
	case models.EventStatusOpen, models.EventStatusOngoing, models.EventStatusClosed:
	default:
		return apperrors.NewValidationError("unknown event status")
	}

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canManageEvent(event, userID, role) {
		return apperrors.NewForbiddenError("only the organizer may change the event status")
	}

	return s.eventRepo.UpdateStatus(ctx, id, status)
}

// DeleteEvent removes an event with everything attached to it
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, id, userID int64, role models.RoleType) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canManageEvent(event, userID, role) {
		return apperrors.NewForbiddenError("only the organizer may delete this event")
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("eventID", id).Int64("userID", userID).Msg("Event deleted")
	return nil
}

// GetTimeline retrieves the milestone timeline of an event
func (s *eventServiceImpl) GetTimeline(ctx context.Context, eventID int64) ([]models.Milestone, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.eventRepo.GetMilestones(ctx, eventID)
}
