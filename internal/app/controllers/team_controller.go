package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
)

// TeamController handles the student side of team formation
type TeamController struct {
	teamService services.TeamService
}

// NewTeamController creates a new TeamController
func NewTeamController(teamService services.TeamService) *TeamController {
	return &TeamController{teamService: teamService}
}

// CreateTeam handles POST /events/:id/teams
func (c *TeamController) CreateTeam(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	team, err := c.teamService.CreateTeam(ctx, eventID, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(team))
}

// ListTeams handles GET /events/:id/teams
func (c *TeamController) ListTeams(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	teams, err := c.teamService.ListTeams(ctx, eventID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(teams))
}

// GetTeam handles GET /events/:id/teams/:teamId
func (c *TeamController) GetTeam(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	teamID, ok := parseIDParam(ctx, "teamId")
	if !ok {
		return
	}

	team, err := c.teamService.GetTeam(ctx, eventID, teamID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(team))
}

// RequestToJoin handles POST /events/:id/teams/:teamId/requests
func (c *TeamController) RequestToJoin(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	teamID, ok := parseIDParam(ctx, "teamId")
	if !ok {
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	request, err := c.teamService.RequestToJoin(ctx, eventID, teamID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(request))
}

// ApplySolo handles POST /events/:id/solo
func (c *TeamController) ApplySolo(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.SoloApplicationRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			middleware.HandleValidationError(ctx, err)
			return
		}
	}

	userID, _ := middleware.GetUserID(ctx)
	participant, err := c.teamService.ApplySolo(ctx, eventID, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(participant))
}
