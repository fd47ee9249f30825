package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/middleware"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubTeamService drives controller tests with canned responses.
type stubTeamService struct {
	createTeamFn    func(ctx context.Context, eventID, userID int64, req *dto.CreateTeamRequest) (*dto.TeamResponse, error)
	getTeamFn       func(ctx context.Context, eventID, teamID int64) (*dto.TeamResponse, error)
	listTeamsFn     func(ctx context.Context, eventID int64) ([]dto.TeamResponse, error)
	requestToJoinFn func(ctx context.Context, eventID, teamID, userID int64) (*dto.JoinRequestResponse, error)
	applySoloFn     func(ctx context.Context, eventID, userID int64, req *dto.SoloApplicationRequest) (*dto.SoloParticipantResponse, error)
}

func (s *stubTeamService) CreateTeam(ctx context.Context, eventID, userID int64, req *dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	return s.createTeamFn(ctx, eventID, userID, req)
}

func (s *stubTeamService) GetTeam(ctx context.Context, eventID, teamID int64) (*dto.TeamResponse, error) {
	return s.getTeamFn(ctx, eventID, teamID)
}

func (s *stubTeamService) ListTeams(ctx context.Context, eventID int64) ([]dto.TeamResponse, error) {
	return s.listTeamsFn(ctx, eventID)
}

func (s *stubTeamService) RequestToJoin(ctx context.Context, eventID, teamID, userID int64) (*dto.JoinRequestResponse, error) {
	return s.requestToJoinFn(ctx, eventID, teamID, userID)
}

func (s *stubTeamService) ApplySolo(ctx context.Context, eventID, userID int64, req *dto.SoloApplicationRequest) (*dto.SoloParticipantResponse, error) {
	return s.applySoloFn(ctx, eventID, userID, req)
}

func newTeamRouter(svc *stubTeamService) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, int64(7))
		c.Set(middleware.ContextRoleType, models.RoleStudent)
	})

	ctrl := NewTeamController(svc)
	router.POST("/events/:id/teams", ctrl.CreateTeam)
	router.GET("/events/:id/teams", ctrl.ListTeams)
	router.GET("/events/:id/teams/:teamId", ctrl.GetTeam)
	router.POST("/events/:id/teams/:teamId/requests", ctrl.RequestToJoin)
	router.POST("/events/:id/solo", ctrl.ApplySolo)
	return router
}

func TestCreateTeamEndpoint(t *testing.T) {
	svc := &stubTeamService{
		createTeamFn: func(_ context.Context, eventID, userID int64, req *dto.CreateTeamRequest) (*dto.TeamResponse, error) {
			assert.Equal(t, int64(1), eventID)
			assert.Equal(t, int64(7), userID)
			return &dto.TeamResponse{ID: 3, EventID: eventID, Name: req.Name, LeaderID: userID, RequiredSkills: []string{}}, nil
		},
	}
	router := newTeamRouter(svc)

	body, _ := json.Marshal(dto.CreateTeamRequest{Name: "Byte Club", MaxSize: 4})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events/1/teams", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestCreateTeamEndpointMissingName(t *testing.T) {
	svc := &stubTeamService{}
	router := newTeamRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events/1/teams", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTeamEndpointInvalidEventID(t *testing.T) {
	svc := &stubTeamService{}
	router := newTeamRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events/abc/teams", bytes.NewReader([]byte(`{"name":"x"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTeamEndpointFormationLocked(t *testing.T) {
	svc := &stubTeamService{
		createTeamFn: func(context.Context, int64, int64, *dto.CreateTeamRequest) (*dto.TeamResponse, error) {
			return nil, apperrors.ErrFormationLocked
		},
	}
	router := newTeamRouter(svc)

	body, _ := json.Marshal(dto.CreateTeamRequest{Name: "Late"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events/1/teams", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetTeamEndpointNotFound(t *testing.T) {
	svc := &stubTeamService{
		getTeamFn: func(context.Context, int64, int64) (*dto.TeamResponse, error) {
			return nil, apperrors.ErrTeamNotFound
		},
	}
	router := newTeamRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/events/1/teams/3", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequestToJoinEndpoint(t *testing.T) {
	svc := &stubTeamService{
		requestToJoinFn: func(_ context.Context, eventID, teamID, userID int64) (*dto.JoinRequestResponse, error) {
			return &dto.JoinRequestResponse{ID: 6, EventID: eventID, TeamID: teamID, UserID: userID, Status: models.JoinRequestPending}, nil
		},
	}
	router := newTeamRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events/1/teams/3/requests", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestApplySoloEndpointWithoutBody(t *testing.T) {
	svc := &stubTeamService{
		applySoloFn: func(_ context.Context, eventID, userID int64, _ *dto.SoloApplicationRequest) (*dto.SoloParticipantResponse, error) {
			return &dto.SoloParticipantResponse{ID: 4, EventID: eventID, UserID: userID, Skills: []string{}}, nil
		},
	}
	router := newTeamRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events/1/solo", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestApplySoloEndpointAlreadyRegistered(t *testing.T) {
	svc := &stubTeamService{
		applySoloFn: func(context.Context, int64, int64, *dto.SoloApplicationRequest) (*dto.SoloParticipantResponse, error) {
			return nil, apperrors.ErrAlreadyRegistered
		},
	}
	router := newTeamRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events/1/solo", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
