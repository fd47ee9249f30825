package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performError(t *testing.T, err error) (*httptest.ResponseRecorder, *dto.ErrorResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, &body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"not found", apperrors.ErrEventNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"team not found", apperrors.ErrTeamNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"email exists", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"team full", apperrors.ErrTeamFull, http.StatusConflict, dto.ErrorCodeConflict},
		{"formation locked", apperrors.ErrFormationLocked, http.StatusConflict, dto.ErrorCodeConflict},
		{"invalid transition", apperrors.ErrInvalidTransition, http.StatusConflict, dto.ErrorCodeConflict},
		{"duplicate application", apperrors.ErrDuplicateApplication, http.StatusConflict, dto.ErrorCodeConflict},
		{"deadline passed", apperrors.ErrDeadlinePassed, http.StatusConflict, dto.ErrorCodeConflict},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"validation failed", apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"invalid status change", apperrors.ErrInvalidStatusChange, http.StatusBadRequest, dto.ErrorCodeInvalidRequest},
		{"unknown error", assert.AnError, http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := performError(t, tt.err)
			assert.Equal(t, tt.status, w.Code)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	err := apperrors.NewForbiddenError("only the organizer may access the event dashboard")
	w, body := performError(t, err)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "only the organizer may access the event dashboard", body.Error.Message)
}

func TestHandleAPIErrorInternalHidesDetails(t *testing.T) {
	_, body := performError(t, assert.AnError)
	assert.Equal(t, "Internal server error", body.Error.Message)
}

func TestHandleValidationError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/test", nil)

	HandleValidationError(c, assert.AnError)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeValidationFailed, body.Error.Code)
	assert.NotNil(t, body.Error.Details)
}
