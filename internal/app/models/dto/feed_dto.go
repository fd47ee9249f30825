package dto

import (
	"time"

	"github.com/campushub/backend/internal/app/models"
)

// CreatePostRequest represents a feed post creation request.
// RequiredSkills is a comma separated list; Stage only applies to
// project and startup_idea posts.
type CreatePostRequest struct {
	Title           string            `json:"title" binding:"required"`
	Description     string            `json:"description" binding:"required"`
	PostType        models.PostType   `json:"postType" binding:"required"`
	Stage           *models.PostStage `json:"stage,omitempty"`
	RequiredSkills  string            `json:"requiredSkills"`
	CollaboratorIDs []int64           `json:"collaboratorIds"`
}

// CreateCommentRequest represents a comment on a feed post
type CreateCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// PostResponse represents a feed post in API responses
type PostResponse struct {
	ID              int64             `json:"id"`
	AuthorID        int64             `json:"authorId"`
	AuthorName      string            `json:"authorName,omitempty"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	PostType        models.PostType   `json:"postType"`
	Stage           *models.PostStage `json:"stage,omitempty"`
	RequiredSkills  []string          `json:"requiredSkills"`
	CollaboratorIDs []int64           `json:"collaboratorIds"`
	LikeCount       int               `json:"likeCount"`
	CommentCount    int               `json:"commentCount"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// NewPostResponse maps a post model to its response shape
func NewPostResponse(p *models.Post) *PostResponse {
	if p == nil {
		return nil
	}
	resp := &PostResponse{
		ID:              p.ID,
		AuthorID:        p.AuthorID,
		AuthorName:      p.AuthorName,
		Title:           p.Title,
		Description:     p.Description,
		PostType:        p.PostType,
		Stage:           p.Stage,
		RequiredSkills:  p.RequiredSkills,
		CollaboratorIDs: p.CollaboratorIDs,
		LikeCount:       p.LikeCount,
		CommentCount:    p.CommentCount,
		CreatedAt:       p.CreatedAt,
	}
	if resp.RequiredSkills == nil {
		resp.RequiredSkills = []string{}
	}
	if resp.CollaboratorIDs == nil {
		resp.CollaboratorIDs = []int64{}
	}
	return resp
}

// CommentResponse represents a post comment in API responses
type CommentResponse struct {
	ID         int64     `json:"id"`
	PostID     int64     `json:"postId"`
	AuthorID   int64     `json:"authorId"`
	AuthorName string    `json:"authorName,omitempty"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewCommentResponse maps a comment model to its response shape
func NewCommentResponse(c *models.Comment) *CommentResponse {
	if c == nil {
		return nil
	}
	return &CommentResponse{
		ID:         c.ID,
		PostID:     c.PostID,
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		Body:       c.Body,
		CreatedAt:  c.CreatedAt,
	}
}

// LikeInfoResponse represents the like state of a post for the caller
type LikeInfoResponse struct {
	PostID  int64 `json:"postId"`
	Count   int   `json:"count"`
	IsLiked bool  `json:"isLiked"`
}
