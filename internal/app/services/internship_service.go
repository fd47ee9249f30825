package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/helpers"
	"github.com/campushub/backend/internal/pkg/validation"
)

// InternshipService defines the interface for the internship board
type InternshipService interface {
	CreateInternship(ctx context.Context, userID int64, req *dto.CreateInternshipRequest) (*dto.InternshipResponse, error)
	GetInternship(ctx context.Context, id int64) (*dto.InternshipResponse, error)
	ListInternships(ctx context.Context, filter repositories.InternshipFilter, page, size int) (*dto.InternshipListResponse, error)
	Apply(ctx context.Context, internshipID, userID int64) (*dto.ApplicationResponse, error)
	ListApplications(ctx context.Context, internshipID, userID int64, role models.RoleType) ([]dto.ApplicationResponse, error)
	DecideApplication(ctx context.Context, applicationID, userID int64, role models.RoleType, status models.ApplicationStatus) (*dto.ApplicationResponse, error)
}

// internshipServiceImpl implements InternshipService
type internshipServiceImpl struct {
	internshipRepo *repositories.InternshipRepository
	startupRepo    *repositories.StartupRepository
	notifications  notificationWriter
	logger         zerolog.Logger
}

// NewInternshipService creates a new InternshipService
func NewInternshipService(
	internshipRepo *repositories.InternshipRepository,
	startupRepo *repositories.StartupRepository,
	notifications notificationWriter,
	logger zerolog.Logger,
) InternshipService {
	return &internshipServiceImpl{
		internshipRepo: internshipRepo,
		startupRepo:    startupRepo,
		notifications:  notifications,
		logger:         logger,
	}
}

// CreateInternship publishes a posting under the caller's approved startup
func (s *internshipServiceImpl) CreateInternship(ctx context.Context, userID int64, req *dto.CreateInternshipRequest) (*dto.InternshipResponse, error) {
	startup, err := s.startupRepo.GetLatestByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if startup.Status != models.StartupStatusApproved {
		return nil, apperrors.ErrStartupNotApproved
	}

	if req.ExternalLink != nil && !validation.IsValidURL(*req.ExternalLink) {
		return nil, apperrors.NewValidationError("external link must be a valid http or https url")
	}
	if req.ApplicationDeadline != nil && req.ApplicationDeadline.Before(time.Now()) {
		return nil, apperrors.NewValidationError("application deadline cannot be in the past")
	}

	internship := &models.Internship{
		StartupID:           startup.ID,
		RoleTitle:           strings.TrimSpace(req.RoleTitle),
		Description:         req.Description,
		Type:                strings.TrimSpace(req.Type),
		Location:            strings.TrimSpace(req.Location),
		Stipend:             req.Stipend,
		Duration:            req.Duration,
		ApplicationDeadline: req.ApplicationDeadline,
		ExternalLink:        req.ExternalLink,
		StartupName:         startup.Name,
	}
	if err := s.internshipRepo.Create(ctx, internship); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("internshipID", internship.ID).Int64("startupID", startup.ID).
		Msg("Internship posted")

	return dto.NewInternshipResponse(internship), nil
}

// GetInternship retrieves a posting by ID
func (s *internshipServiceImpl) GetInternship(ctx context.Context, id int64) (*dto.InternshipResponse, error) {
	internship, err := s.internshipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewInternshipResponse(internship), nil
}

// ListInternships lists postings newest first. Postings whose deadline
// has passed are excluded unless the filter asks for them.
func (s *internshipServiceImpl) ListInternships(ctx context.Context, filter repositories.InternshipFilter, page, size int) (*dto.InternshipListResponse, error) {
	internships, total, err := s.internshipRepo.GetAll(ctx, filter, page, size)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.InternshipResponse, 0, len(internships))
	for i := range internships {
		responses = append(responses, *dto.NewInternshipResponse(&internships[i]))
	}
	return &dto.InternshipListResponse{
		Internships: responses,
		Pagination:  helpers.NewPaginationInfo(total, page, size),
	}, nil
}

// Apply files an application for a posting. Applying twice reports a
// conflict; a passed deadline rejects the application outright.
func (s *internshipServiceImpl) Apply(ctx context.Context, internshipID, userID int64) (*dto.ApplicationResponse, error) {
	internship, err := s.internshipRepo.GetByID(ctx, internshipID)
	if err != nil {
		return nil, err
	}
	if internship.DeadlinePassed(time.Now()) {
		return nil, apperrors.ErrDeadlinePassed
	}

	startup, err := s.startupRepo.GetByID(ctx, internship.StartupID)
	if err != nil {
		return nil, err
	}
	if startup.UserID == userID {
		return nil, apperrors.NewBadRequestError("founders cannot apply to their own posting")
	}

	application := &models.Application{
		InternshipID: internshipID,
		ApplicantID:  userID,
	}
	if err := s.internshipRepo.CreateApplication(ctx, application); err != nil {
		return nil, err
	}

	s.notify(ctx, &models.Notification{
		UserID:  startup.UserID,
		Kind:    models.NotificationApplicationStatus,
		Message: fmt.Sprintf("New application for %s", internship.RoleTitle),
		RefType: refType("application"),
		RefID:   &application.ID,
	})

	return dto.NewApplicationResponse(application), nil
}

// ListApplications lists the applications of a posting. Only the founder
// of the posting's startup or a platform admin may read them.
func (s *internshipServiceImpl) ListApplications(ctx context.Context, internshipID, userID int64, role models.RoleType) ([]dto.ApplicationResponse, error) {
	if _, err := s.authorizeOwner(ctx, internshipID, userID, role); err != nil {
		return nil, err
	}

	applications, err := s.internshipRepo.GetApplicationsByInternship(ctx, internshipID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, *dto.NewApplicationResponse(&applications[i]))
	}
	return responses, nil
}

// DecideApplication shortlists or rejects an application and notifies
// the applicant
func (s *internshipServiceImpl) DecideApplication(ctx context.Context, applicationID, userID int64, role models.RoleType, status models.ApplicationStatus) (*dto.ApplicationResponse, error) {
	if status != models.ApplicationStatusShortlisted && status != models.ApplicationStatusRejected {
		return nil, apperrors.ErrInvalidStatusChange
	}

	application, err := s.internshipRepo.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	internship, err := s.authorizeOwner(ctx, application.InternshipID, userID, role)
	if err != nil {
		return nil, err
	}

	if err := s.internshipRepo.UpdateApplicationStatus(ctx, applicationID, status); err != nil {
		return nil, err
	}
	application.Status = status

	verdict := "shortlisted"
	if status == models.ApplicationStatusRejected {
		verdict = "rejected"
	}
	s.notify(ctx, &models.Notification{
		UserID:  application.ApplicantID,
		Kind:    models.NotificationApplicationStatus,
		Message: fmt.Sprintf("Your application for %s was %s", internship.RoleTitle, verdict),
		RefType: refType("application"),
		RefID:   &application.ID,
	})

	return dto.NewApplicationResponse(application), nil
}

// authorizeOwner loads the posting and checks that the caller owns the
// startup behind it or is a platform admin
func (s *internshipServiceImpl) authorizeOwner(ctx context.Context, internshipID, userID int64, role models.RoleType) (*models.Internship, error) {
	internship, err := s.internshipRepo.GetByID(ctx, internshipID)
	if err != nil {
		return nil, err
	}
	if role == models.RoleAdmin {
		return internship, nil
	}

	startup, err := s.startupRepo.GetByID(ctx, internship.StartupID)
	if err != nil {
		return nil, err
	}
	if startup.UserID != userID {
		return nil, apperrors.NewForbiddenError("only the founder may manage applications")
	}
	return internship, nil
}

func (s *internshipServiceImpl) notify(ctx context.Context, n *models.Notification) {
	if err := s.notifications.Create(ctx, n); err != nil {
		s.logger.Warn().Err(err).Int64("userID", n.UserID).Str("kind", n.Kind).
			Msg("Failed to write notification")
	}
}
