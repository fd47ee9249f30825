package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/helpers"
)

const userCacheTTL = 5 * time.Minute

// UserService defines the interface for user profile operations
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	SwitchRole(ctx context.Context, userID int64, role models.RoleType) (*dto.UserResponse, error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo *repositories.UserRepository
	cache    *gocache.Cache
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repositories.UserRepository, cache *gocache.Cache, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		cache:    cache,
		logger:   logger,
	}
}

func userCacheKey(userID int64) string {
	return fmt.Sprintf("user:%d", userID)
}

// GetProfile retrieves the profile of a user, served from cache when fresh
func (s *userServiceImpl) GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	if cached, found := s.cache.Get(userCacheKey(userID)); found {
		if resp, ok := cached.(*dto.UserResponse); ok {
			return resp, nil
		}
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := dto.NewUserResponse(user)
	s.cache.Set(userCacheKey(userID), resp, userCacheTTL)
	return resp, nil
}

// UpdateProfile applies the non-nil fields of the request to the profile
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		name := strings.TrimSpace(*req.FirstName)
		if name == "" {
			return nil, apperrors.NewValidationError("first name cannot be empty")
		}
		user.FirstName = name
	}
	if req.LastName != nil {
		name := strings.TrimSpace(*req.LastName)
		if name == "" {
			return nil, apperrors.NewValidationError("last name cannot be empty")
		}
		user.LastName = name
	}
	if req.College != nil {
		user.College = req.College
	}
	if req.Course != nil {
		user.Course = req.Course
	}
	if req.Branch != nil {
		user.Branch = req.Branch
	}
	if req.Year != nil {
		if *req.Year < 1 || *req.Year > 8 {
			return nil, apperrors.NewValidationError("year must be between 1 and 8")
		}
		user.Year = req.Year
	}
	if req.Skills != nil {
		user.Skills = helpers.NormalizeSkills(*req.Skills)
	}
	if req.Available != nil {
		user.Available = *req.Available
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	s.cache.Delete(userCacheKey(userID))

	return dto.NewUserResponse(user), nil
}

// SwitchRole flips a user between the student and admin roles. Elevated
// organizer and club roles are not reachable through self service.
func (s *userServiceImpl) SwitchRole(ctx context.Context, userID int64, role models.RoleType) (*dto.UserResponse, error) {
	if role != models.RoleStudent && role != models.RoleAdmin {
		return nil, apperrors.NewBadRequestError("unsupported role change")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.RoleType == role {
		return dto.NewUserResponse(user), nil
	}

	if err := s.userRepo.UpdateRole(ctx, userID, role); err != nil {
		return nil, err
	}
	s.cache.Delete(userCacheKey(userID))
	s.logger.Info().Int64("userID", userID).
		Str("from", string(user.RoleType)).Str("to", string(role)).
		Msg("User role changed")

	user.RoleType = role
	return dto.NewUserResponse(user), nil
}
