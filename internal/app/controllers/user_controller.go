package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
)

// UserController handles user profile endpoints
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetMe handles GET /users/me
func (c *UserController) GetMe(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	profile, err := c.userService.GetProfile(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// UpdateProfile handles PATCH /users/me
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	profile, err := c.userService.UpdateProfile(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// RequestAdmin handles POST /users/me/admin-mode
func (c *UserController) RequestAdmin(ctx *gin.Context) {
	c.switchRole(ctx, models.RoleAdmin)
}

// RequestStudent handles POST /users/me/student-mode
func (c *UserController) RequestStudent(ctx *gin.Context) {
	c.switchRole(ctx, models.RoleStudent)
}

func (c *UserController) switchRole(ctx *gin.Context, role models.RoleType) {
	userID, _ := middleware.GetUserID(ctx)
	profile, err := c.userService.SwitchRole(ctx, userID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}
