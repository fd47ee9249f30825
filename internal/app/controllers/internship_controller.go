package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// InternshipController handles internship board and application endpoints
type InternshipController struct {
	internshipService services.InternshipService
}

// NewInternshipController creates a new InternshipController
func NewInternshipController(internshipService services.InternshipService) *InternshipController {
	return &InternshipController{internshipService: internshipService}
}

// CreateInternship handles POST /internships
func (c *InternshipController) CreateInternship(ctx *gin.Context) {
	var req dto.CreateInternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	internship, err := c.internshipService.CreateInternship(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(internship))
}

// GetInternships handles GET /internships. The type filter may be
// repeated (?type=Remote&type=Hybrid); location and search narrow
// further; expired=true includes past-deadline postings.
func (c *InternshipController) GetInternships(ctx *gin.Context) {
	filter := repositories.InternshipFilter{
		Location:       ctx.Query("location"),
		Search:         ctx.Query("search"),
		IncludeExpired: ctx.Query("expired") == "true",
	}
	for _, t := range ctx.QueryArray("type") {
		if t != "" {
			filter.Types = append(filter.Types, t)
		}
	}

	page, size := helpers.ParsePaginationParams(ctx)
	internships, err := c.internshipService.ListInternships(ctx, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(internships))
}

// GetInternship handles GET /internships/:id
func (c *InternshipController) GetInternship(ctx *gin.Context) {
	internshipID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	internship, err := c.internshipService.GetInternship(ctx, internshipID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(internship))
}

// Apply handles POST /internships/:id/applications
func (c *InternshipController) Apply(ctx *gin.Context) {
	internshipID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	application, err := c.internshipService.Apply(ctx, internshipID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(application))
}

// GetApplications handles GET /internships/:id/applications
func (c *InternshipController) GetApplications(ctx *gin.Context) {
	internshipID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	role, _ := middleware.GetRoleType(ctx)
	applications, err := c.internshipService.ListApplications(ctx, internshipID, userID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if applications == nil {
		applications = []dto.ApplicationResponse{}
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(applications))
}

// DecideApplication handles PATCH /internships/applications/:id
func (c *InternshipController) DecideApplication(ctx *gin.Context) {
	applicationID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	role, _ := middleware.GetRoleType(ctx)
	application, err := c.internshipService.DecideApplication(ctx, applicationID, userID, role, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(application))
}
