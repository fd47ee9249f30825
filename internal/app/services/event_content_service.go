package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/validation"
)

// EventContentService defines the interface for event resources and FAQs
type EventContentService interface {
	GetResources(ctx context.Context, eventID int64) ([]models.Resource, error)
	CreateResource(ctx context.Context, eventID, userID int64, role models.RoleType, req *dto.ResourceRequest) (*models.Resource, error)
	UpdateResource(ctx context.Context, eventID, resourceID, userID int64, role models.RoleType, req *dto.ResourceRequest) (*models.Resource, error)
	DeleteResource(ctx context.Context, eventID, resourceID, userID int64, role models.RoleType) error

	GetFAQs(ctx context.Context, eventID int64) ([]models.FAQ, error)
	CreateFAQ(ctx context.Context, eventID, userID int64, role models.RoleType, req *dto.FAQRequest) (*models.FAQ, error)
	UpdateFAQ(ctx context.Context, eventID, faqID, userID int64, role models.RoleType, req *dto.FAQRequest) (*models.FAQ, error)
	DeleteFAQ(ctx context.Context, eventID, faqID, userID int64, role models.RoleType) error
}

// eventContentServiceImpl implements EventContentService
type eventContentServiceImpl struct {
	eventRepo   *repositories.EventRepository
	contentRepo *repositories.EventContentRepository
	logger      zerolog.Logger
}

// NewEventContentService creates a new EventContentService
func NewEventContentService(
	eventRepo *repositories.EventRepository,
	contentRepo *repositories.EventContentRepository,
	logger zerolog.Logger,
) EventContentService {
	return &eventContentServiceImpl{
		eventRepo:   eventRepo,
		contentRepo: contentRepo,
		logger:      logger,
	}
}

func (s *eventContentServiceImpl) authorize(ctx context.Context, eventID, userID int64, role models.RoleType) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if !canManageEvent(event, userID, role) {
		return apperrors.NewForbiddenError("only the organizer may manage event content")
	}
	return nil
}

// GetResources retrieves the resources of an event
func (s *eventContentServiceImpl) GetResources(ctx context.Context, eventID int64) ([]models.Resource, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.contentRepo.GetResourcesByEvent(ctx, eventID)
}

// CreateResource adds a resource link to an event
func (s *eventContentServiceImpl) CreateResource(ctx context.Context, eventID, userID int64, role models.RoleType, req *dto.ResourceRequest) (*models.Resource, error) {
	if err := s.authorize(ctx, eventID, userID, role); err != nil {
		return nil, err
	}
	if !models.ValidResourceType(req.Type) {
		return nil, apperrors.NewValidationError("unknown resource type")
	}
	if !validation.IsValidURL(req.URL) {
		return nil, apperrors.NewValidationError("resource url must be a valid http or https link")
	}

	res := &models.Resource{
		EventID:     eventID,
		Title:       strings.TrimSpace(req.Title),
		URL:         req.URL,
		Type:        req.Type,
		Description: req.Description,
		CreatedBy:   userID,
	}
	if err := s.contentRepo.CreateResource(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// UpdateResource edits a resource link of an event
func (s *eventContentServiceImpl) UpdateResource(ctx context.Context, eventID, resourceID, userID int64, role models.RoleType, req *dto.ResourceRequest) (*models.Resource, error) {
	if err := s.authorize(ctx, eventID, userID, role); err != nil {
		return nil, err
	}

	res, err := s.contentRepo.GetResourceByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if res.EventID != eventID {
		return nil, apperrors.ErrResourceNotFound
	}
	if !models.ValidResourceType(req.Type) {
		return nil, apperrors.NewValidationError("unknown resource type")
	}
	if !validation.IsValidURL(req.URL) {
		return nil, apperrors.NewValidationError("resource url must be a valid http or https link")
	}

	res.Title = strings.TrimSpace(req.Title)
	res.URL = req.URL
	res.Type = req.Type
	res.Description = req.Description

	if err := s.contentRepo.UpdateResource(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// DeleteResource removes a resource link from an event
func (s *eventContentServiceImpl) DeleteResource(ctx context.Context, eventID, resourceID, userID int64, role models.RoleType) error {
	if err := s.authorize(ctx, eventID, userID, role); err != nil {
		return err
	}

	res, err := s.contentRepo.GetResourceByID(ctx, resourceID)
	if err != nil {
		return err
	}
	if res.EventID != eventID {
		return apperrors.ErrResourceNotFound
	}
	return s.contentRepo.DeleteResource(ctx, resourceID)
}

// GetFAQs retrieves the FAQ entries of an event
func (s *eventContentServiceImpl) GetFAQs(ctx context.Context, eventID int64) ([]models.FAQ, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.contentRepo.GetFAQsByEvent(ctx, eventID)
}

// CreateFAQ adds a FAQ entry to an event
func (s *eventContentServiceImpl) CreateFAQ(ctx context.Context, eventID, userID int64, role models.RoleType, req *dto.FAQRequest) (*models.FAQ, error) {
	if err := s.authorize(ctx, eventID, userID, role); err != nil {
		return nil, err
	}

	faq := &models.FAQ{
		EventID:  eventID,
		Question: strings.TrimSpace(req.Question),
		Answer:   strings.TrimSpace(req.Answer),
	}
	if err := s.contentRepo.CreateFAQ(ctx, faq); err != nil {
		return nil, err
	}
	return faq, nil
}

// UpdateFAQ edits a FAQ entry of an event
func (s *eventContentServiceImpl) UpdateFAQ(ctx context.Context, eventID, faqID, userID int64, role models.RoleType, req *dto.FAQRequest) (*models.FAQ, error) {
	if err := s.authorize(ctx, eventID, userID, role); err != nil {
		return nil, err
	}

	faq, err := s.contentRepo.GetFAQByID(ctx, faqID)
	if err != nil {
		return nil, err
	}
	if faq.EventID != eventID {
		return nil, apperrors.ErrResourceNotFound
	}

	faq.Question = strings.TrimSpace(req.Question)
	faq.Answer = strings.TrimSpace(req.Answer)

	if err := s.contentRepo.UpdateFAQ(ctx, faq); err != nil {
		return nil, err
	}
	return faq, nil
}

// DeleteFAQ removes a FAQ entry from an event
func (s *eventContentServiceImpl) DeleteFAQ(ctx context.Context, eventID, faqID, userID int64, role models.RoleType) error {
	if err := s.authorize(ctx, eventID, userID, role); err != nil {
		return err
	}

	faq, err := s.contentRepo.GetFAQByID(ctx, faqID)
	if err != nil {
		return err
	}
	if faq.EventID != eventID {
		return apperrors.ErrResourceNotFound
	}
	return s.contentRepo.DeleteFAQ(ctx, faqID)
}
