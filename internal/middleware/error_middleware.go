package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/logger"
)

// HandleAPIError maps application errors to API responses. Controllers
// forward every service error here so the status mapping lives in one place.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case isNotFound(err):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, err)

	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrStartupExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, err)

	case isConflict(err):
		respondError(c, http.StatusConflict, dto.ErrorCodeConflict, err)

	case errors.Is(err, apperrors.ErrPermissionDenied),
		errors.Is(err, apperrors.ErrAccountDisabled):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, err)

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, err)

	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, err)

	case errors.Is(err, apperrors.ErrTokenInvalid):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, err)

	case errors.Is(err, apperrors.ErrTokenNotFound):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, err)

	case errors.Is(err, apperrors.ErrValidationFailed):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, err)

	case errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrInvalidStatusChange):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeInvalidRequest, err)

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
	}
}

// HandleValidationError reports a request binding failure
func HandleValidationError(c *gin.Context, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
		WithDetails(err.Error())
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}

func isNotFound(err error) bool {
	for _, target := range []error{
		apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrEventNotFound,
		apperrors.ErrTeamNotFound,
		apperrors.ErrRequestNotFound,
		apperrors.ErrParticipantNotFound,
		apperrors.ErrPostNotFound,
		apperrors.ErrCommentNotFound,
		apperrors.ErrStartupNotFound,
		apperrors.ErrInternshipNotFound,
		apperrors.ErrApplicationNotFound,
		apperrors.ErrNotificationNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func isConflict(err error) bool {
	for _, target := range []error{
		apperrors.ErrConflict,
		apperrors.ErrAlreadyRegistered,
		apperrors.ErrAlreadyTeamMember,
		apperrors.ErrDuplicateRequest,
		apperrors.ErrRequestDecided,
		apperrors.ErrTeamFull,
		apperrors.ErrTeamNotJoinable,
		apperrors.ErrFormationLocked,
		apperrors.ErrInvalidTransition,
		apperrors.ErrDuplicateApplication,
		apperrors.ErrDeadlinePassed,
		apperrors.ErrReapplyWindow,
		apperrors.ErrStartupNotApproved,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, err error) {
	errorDetail := dto.NewErrorDetail(code, err.Error())
	c.JSON(status, dto.NewErrorResponse(errorDetail))
}
