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

// EventController handles event endpoints
type EventController struct {
	eventService   services.EventService
	contentService services.EventContentService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService, contentService services.EventContentService) *EventController {
	return &EventController{
		eventService:   eventService,
		contentService: contentService,
	}
}

// CreateEvent handles POST /events
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	event, err := c.eventService.CreateEvent(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(event))
}

// GetEvents handles GET /events
func (c *EventController) GetEvents(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	var status *models.EventStatus
	if s := ctx.Query("status"); s != "" {
		es := models.EventStatus(s)
		status = &es
	}

	list, err := c.eventService.GetEvents(ctx, status, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(list))
}

// GetEvent handles GET /events/:id
func (c *EventController) GetEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	event, err := c.eventService.GetEvent(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event))
}

// UpdateEvent handles PATCH /events/:id
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	role, _ := middleware.GetRoleType(ctx)
	event, err := c.eventService.UpdateEvent(ctx, id, userID, role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event))
}

// UpdateEventStatus handles PATCH /events/:id/status
func (c *EventController) UpdateEventStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateEventStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	role, _ := middleware.GetRoleType(ctx)
	if err := c.eventService.UpdateStatus(ctx, id, userID, role, req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Event status updated"}))
}

// DeleteEvent handles DELETE /events/:id
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	role, _ := middleware.GetRoleType(ctx)
	if err := c.eventService.DeleteEvent(ctx, id, userID, role); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetTimeline handles GET /events/:id/timeline
func (c *EventController) GetTimeline(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	milestones, err := c.eventService.GetTimeline(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if milestones == nil {
		milestones = []models.Milestone{}
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(milestones))
}

// GetResources handles GET /events/:id/resources
func (c *EventController) GetResources(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resources, err := c.contentService.GetResources(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if resources == nil {
		resources = []models.Resource{}
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resources))
}

// GetFAQs handles GET /events/:id/faq
func (c *EventController) GetFAQs(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	faqs, err := c.contentService.GetFAQs(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if faqs == nil {
		faqs = []models.FAQ{}
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(faqs))
}
