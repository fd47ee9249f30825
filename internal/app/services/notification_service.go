package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// NotificationService defines the interface for reading notifications
type NotificationService interface {
	List(ctx context.Context, userID int64, unreadOnly bool, page, size int) (*dto.PaginatedResponse, error)
	MarkRead(ctx context.Context, notificationID, userID int64) error
}

// notificationServiceImpl implements NotificationService
type notificationServiceImpl struct {
	notificationRepo *repositories.NotificationRepository
	logger           zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo *repositories.NotificationRepository, logger zerolog.Logger) NotificationService {
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// List retrieves the caller's notifications newest first
func (s *notificationServiceImpl) List(ctx context.Context, userID int64, unreadOnly bool, page, size int) (*dto.PaginatedResponse, error) {
	notifications, total, err := s.notificationRepo.ListByUser(ctx, userID, unreadOnly, page, size)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, *dto.NewNotificationResponse(&notifications[i]))
	}
	return &dto.PaginatedResponse{
		Items:      responses,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

// MarkRead marks one of the caller's notifications as read
func (s *notificationServiceImpl) MarkRead(ctx context.Context, notificationID, userID int64) error {
	return s.notificationRepo.MarkRead(ctx, notificationID, userID)
}
