package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
)

// EventAdminController handles the formation dashboard endpoints
type EventAdminController struct {
	adminService   services.EventAdminService
	contentService services.EventContentService
}

// NewEventAdminController creates a new EventAdminController
func NewEventAdminController(adminService services.EventAdminService, contentService services.EventContentService) *EventAdminController {
	return &EventAdminController{
		adminService:   adminService,
		contentService: contentService,
	}
}

// GetSummary handles GET /events/:id/admin/summary
func (c *EventAdminController) GetSummary(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	role, _ := middleware.GetRoleType(ctx)
	summary, err := c.adminService.GetSummary(ctx, eventID, userID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summary))
}

// ListTeams handles GET /events/:id/admin/teams
func (c *EventAdminController) ListTeams(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var status *models.TeamStatus
	if s := ctx.Query("status"); s != "" {
		ts := models.TeamStatus(s)
		status = &ts
	}

	userID, _ := middleware.GetUserID(ctx)
	role, _ := middleware.GetRoleType(ctx)
	teams, err := c.adminService.ListTeams(ctx, eventID, userID, role, status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(teams))
}

// ListParticipants handles GET /events/:id/admin/participants
func (c *EventAdminController) ListParticipants(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	role, _ := middleware.GetRoleType(ctx)
	participants, err := c.adminService.ListParticipants(ctx, eventID, userID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(participants))
}

// ListRequests handles GET /events/:id/admin/requests
func (c *EventAdminController) ListRequests(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var status *models.JoinRequestStatus
	if s := ctx.Query("status"); s != "" {
		rs := models.JoinRequestStatus(s)
		status = &rs
	}

	userID, _ := middleware.GetUserID(ctx)
	role, _ := middleware.GetRoleType(ctx)
	requests, err := c.adminService.ListRequests(ctx, eventID, userID, role, status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(requests))
}

// UpdateTeamStatus handles PATCH /events/:id/admin/teams/:teamId
func (c *EventAdminController) UpdateTeamStatus(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	teamID, ok := parseIDParam(ctx, "teamId")
	if !ok {
		return
	}

	var req dto.UpdateTeamStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	role, _ := middleware.GetRoleType(ctx)
	team, err := c.adminService.UpdateTeamStatus(ctx, eventID, teamID, userID, role, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(team))
}

// MoveParticipant handles POST /events/:id/admin/participants/:participantId/move
func (c *EventAdminController) MoveParticipant(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	participantID, ok := parseIDParam(ctx, "participantId")
	if !ok {
		return
	}

	var req dto.MoveParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	role, _ := middleware.GetRoleType(ctx)
	if err := c.adminService.MoveParticipant(ctx, eventID, participantID, req.TeamID, userID, role); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Participant moved"}))
}

// LockFormation handles POST /events/:id/admin/teams/lock
func (c *EventAdminController) LockFormation(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	role, _ := middleware.GetRoleType(ctx)
	result, err := c.adminService.LockFormation(ctx, eventID, userID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// DecideJoinRequest handles PATCH /events/:id/admin/requests/:requestId
func (c *EventAdminController) DecideJoinRequest(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	requestID, ok := parseIDParam(ctx, "requestId")
	if !ok {
		return
	}

	var req dto.DecideJoinRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	role, _ := middleware.GetRoleType(ctx)
	request, err := c.adminService.DecideJoinRequest(ctx, eventID, requestID, userID, role, req.Approve)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(request))
}

// CreateResource handles POST /events/:id/admin/resources
func (c *EventAdminController) CreateResource(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	role, _ := middleware.GetRoleType(ctx)
	resource, err := c.contentService.CreateResource(ctx, eventID, userID, role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resource))
}

// UpdateResource handles PATCH /events/:id/admin/resources/:resourceId
func (c *EventAdminController) UpdateResource(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	resourceID, ok := parseIDParam(ctx, "resourceId")
	if !ok {
		return
	}

	var req dto.ResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	role, _ := middleware.GetRoleType(ctx)
	resource, err := c.contentService.UpdateResource(ctx, eventID, resourceID, userID, role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resource))
}

// DeleteResource handles DELETE /events/:id/admin/resources/:resourceId
func (c *EventAdminController) DeleteResource(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	resourceID, ok := parseIDParam(ctx, "resourceId")
	if !ok {
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	role, _ := middleware.GetRoleType(ctx)
	if err := c.contentService.DeleteResource(ctx, eventID, resourceID, userID, role); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// CreateFAQ handles POST /events/:id/admin/faq
func (c *EventAdminController) CreateFAQ(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.FAQRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	role, _ := middleware.GetRoleType(ctx)
	faq, err := c.contentService.CreateFAQ(ctx, eventID, userID, role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(faq))
}

// UpdateFAQ handles PATCH /events/:id/admin/faq/:faqId
func (c *EventAdminController) UpdateFAQ(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	faqID, ok := parseIDParam(ctx, "faqId")
	if !ok {
		return
	}

	var req dto.FAQRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	role, _ := middleware.GetRoleType(ctx)
	faq, err := c.contentService.UpdateFAQ(ctx, eventID, faqID, userID, role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(faq))
}

// DeleteFAQ handles DELETE /events/:id/admin/faq/:faqId
func (c *EventAdminController) DeleteFAQ(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	faqID, ok := parseIDParam(ctx, "faqId")
	if !ok {
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	role, _ := middleware.GetRoleType(ctx)
	if err := c.contentService.DeleteFAQ(ctx, eventID, faqID, userID, role); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
