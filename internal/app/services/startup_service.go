package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// StartupService defines the interface for startup profile operations
type StartupService interface {
	CreateStartup(ctx context.Context, userID int64, req *dto.CreateStartupRequest) (*dto.StartupResponse, error)
	GetStartup(ctx context.Context, id int64) (*dto.StartupResponse, error)
	GetMyStartup(ctx context.Context, userID int64) (*dto.StartupResponse, error)
	ListStartups(ctx context.Context, status *models.StartupStatus, page, size int) (*dto.PaginatedResponse, error)
	Decide(ctx context.Context, startupID int64, status models.StartupStatus) (*dto.StartupResponse, error)
}

// startupServiceImpl implements StartupService
type startupServiceImpl struct {
	startupRepo   *repositories.StartupRepository
	notifications notificationWriter
	reapplyWindow time.Duration
	logger        zerolog.Logger
}

// NewStartupService creates a new StartupService
func NewStartupService(
	startupRepo *repositories.StartupRepository,
	notifications notificationWriter,
	reapplyWindow time.Duration,
	logger zerolog.Logger,
) StartupService {
	return &startupServiceImpl{
		startupRepo:   startupRepo,
		notifications: notifications,
		reapplyWindow: reapplyWindow,
		logger:        logger,
	}
}

// CreateStartup registers a pending startup profile for the caller.
// A live profile blocks a second one; a rejected profile blocks
// resubmission until the reapply window has elapsed.
func (s *startupServiceImpl) CreateStartup(ctx context.Context, userID int64, req *dto.CreateStartupRequest) (*dto.StartupResponse, error) {
	switch models.PostStage(req.Stage) {
	case models.StageIdeation, models.StageMVP, models.StageScaling:
	default:
		return nil, apperrors.NewValidationError("unknown startup stage")
	}

	existing, err := s.startupRepo.GetLatestByUserID(ctx, userID)
	if err != nil && !errors.Is(err, apperrors.ErrStartupNotFound) {
		return nil, err
	}
	if existing != nil {
		switch existing.Status {
		case models.StartupStatusPending, models.StartupStatusApproved:
			return nil, apperrors.ErrStartupExists
		case models.StartupStatusRejected:
			if existing.ReapplyAfter != nil && time.Now().Before(*existing.ReapplyAfter) {
				return nil, apperrors.ErrReapplyWindow
			}
		}
	}

	startup := &models.Startup{
		UserID:  userID,
		Name:    strings.TrimSpace(req.Name),
		Problem: req.Problem,
		Domain:  strings.TrimSpace(req.Domain),
		Stage:   req.Stage,
	}
	if err := s.startupRepo.Create(ctx, startup); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("startupID", startup.ID).Int64("userID", userID).Msg("Startup submitted")

	return dto.NewStartupResponse(startup), nil
}

// GetStartup retrieves a startup by ID
func (s *startupServiceImpl) GetStartup(ctx context.Context, id int64) (*dto.StartupResponse, error) {
	startup, err := s.startupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewStartupResponse(startup), nil
}

// GetMyStartup retrieves the caller's most recent startup profile
func (s *startupServiceImpl) GetMyStartup(ctx context.Context, userID int64) (*dto.StartupResponse, error) {
	startup, err := s.startupRepo.GetLatestByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewStartupResponse(startup), nil
}

// ListStartups lists startups with optional status filtering
func (s *startupServiceImpl) ListStartups(ctx context.Context, status *models.StartupStatus, page, size int) (*dto.PaginatedResponse, error) {
	startups, total, err := s.startupRepo.GetAll(ctx, status, page, size)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.StartupResponse, 0, len(startups))
	for i := range startups {
		responses = append(responses, *dto.NewStartupResponse(&startups[i]))
	}
	return &dto.PaginatedResponse{
		Items:      responses,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

// Decide records an admin decision on a pending startup profile.
// Rejection opens a reapply window before the founder may resubmit.
func (s *startupServiceImpl) Decide(ctx context.Context, startupID int64, status models.StartupStatus) (*dto.StartupResponse, error) {
	if status != models.StartupStatusApproved && status != models.StartupStatusRejected {
		return nil, apperrors.NewValidationError("decision must approve or reject")
	}

	startup, err := s.startupRepo.GetByID(ctx, startupID)
	if err != nil {
		return nil, err
	}
	if startup.Status != models.StartupStatusPending {
		return nil, apperrors.NewConflictError("startup has already been decided")
	}

	var reapplyAfter *time.Time
	if status == models.StartupStatusRejected {
		t := time.Now().Add(s.reapplyWindow)
		reapplyAfter = &t
	}

	if err := s.startupRepo.UpdateStatus(ctx, startupID, status, reapplyAfter); err != nil {
		return nil, err
	}
	startup.Status = status
	startup.ReapplyAfter = reapplyAfter
	s.logger.Info().Int64("startupID", startupID).Str("status", string(status)).Msg("Startup decided")

	verdict := "approved"
	if status == models.StartupStatusRejected {
		verdict = "rejected"
	}
	s.notify(ctx, &models.Notification{
		UserID:  startup.UserID,
		Kind:    models.NotificationStartupDecision,
		Message: fmt.Sprintf("Your startup %q was %s", startup.Name, verdict),
		RefType: refType("startup"),
		RefID:   &startup.ID,
	})

	return dto.NewStartupResponse(startup), nil
}

func (s *startupServiceImpl) notify(ctx context.Context, n *models.Notification) {
	if err := s.notifications.Create(ctx, n); err != nil {
		s.logger.Warn().Err(err).Int64("userID", n.UserID).Str("kind", n.Kind).
			Msg("Failed to write notification")
	}
}
