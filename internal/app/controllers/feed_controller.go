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

// FeedController handles feed post, comment and like endpoints
type FeedController struct {
	feedService services.FeedService
}

// NewFeedController creates a new FeedController
func NewFeedController(feedService services.FeedService) *FeedController {
	return &FeedController{feedService: feedService}
}

// CreatePost handles POST /feed/posts
func (c *FeedController) CreatePost(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	post, err := c.feedService.CreatePost(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(post))
}

// GetFeed handles GET /feed/posts
func (c *FeedController) GetFeed(ctx *gin.Context) {
	var postType *models.PostType
	if t := ctx.Query("type"); t != "" {
		pt := models.PostType(t)
		postType = &pt
	}

	page, size := helpers.ParsePaginationParams(ctx)
	feed, err := c.feedService.GetFeed(ctx, postType, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(feed))
}

// GetPost handles GET /feed/posts/:id
func (c *FeedController) GetPost(ctx *gin.Context) {
	postID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	post, err := c.feedService.GetPost(ctx, postID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(post))
}

// DeletePost handles DELETE /feed/posts/:id
func (c *FeedController) DeletePost(ctx *gin.Context) {
	postID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	role, _ := middleware.GetRoleType(ctx)
	if err := c.feedService.DeletePost(ctx, postID, userID, role); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// CreateComment handles POST /feed/posts/:id/comments
func (c *FeedController) CreateComment(ctx *gin.Context) {
	postID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	comment, err := c.feedService.CreateComment(ctx, postID, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(comment))
}

// GetComments handles GET /feed/posts/:id/comments
func (c *FeedController) GetComments(ctx *gin.Context) {
	postID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	comments, err := c.feedService.GetComments(ctx, postID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if comments == nil {
		comments = []dto.CommentResponse{}
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(comments))
}

// ToggleLike handles POST /feed/posts/:id/like
func (c *FeedController) ToggleLike(ctx *gin.Context) {
	postID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	info, err := c.feedService.ToggleLike(ctx, postID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(info))
}

// GetLikeInfo handles GET /feed/posts/:id/like
func (c *FeedController) GetLikeInfo(ctx *gin.Context) {
	postID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	info, err := c.feedService.GetLikeInfo(ctx, postID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(info))
}
