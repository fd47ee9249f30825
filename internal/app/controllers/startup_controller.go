package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// StartupController handles startup registration and review endpoints
type StartupController struct {
	startupService services.StartupService
}

// NewStartupController creates a new StartupController
func NewStartupController(startupService services.StartupService) *StartupController {
	return &StartupController{startupService: startupService}
}

// CreateStartup handles POST /startups
func (c *StartupController) CreateStartup(ctx *gin.Context) {
	var req dto.CreateStartupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	startup, err := c.startupService.CreateStartup(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(startup))
}

// GetStartups handles GET /startups
func (c *StartupController) GetStartups(ctx *gin.Context) {
	var status *models.StartupStatus
	if s := ctx.Query("status"); s != "" {
		ss := models.StartupStatus(s)
		status = &ss
	}

	page, size := helpers.ParsePaginationParams(ctx)
	startups, err := c.startupService.ListStartups(ctx, status, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(startups))
}

// GetMyStartup handles GET /startups/me
func (c *StartupController) GetMyStartup(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	startup, err := c.startupService.GetMyStartup(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(startup))
}

// GetStartup handles GET /startups/:id
func (c *StartupController) GetStartup(ctx *gin.Context) {
	startupID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	startup, err := c.startupService.GetStartup(ctx, startupID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(startup))
}

// DecideStartup handles PATCH /startups/:id/status
func (c *StartupController) DecideStartup(ctx *gin.Context) {
	startupID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStartupStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	startup, err := c.startupService.Decide(ctx, startupID, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(startup))
}
