package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// FeedService defines the interface for the collaboration feed
type FeedService interface {
	CreatePost(ctx context.Context, userID int64, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	GetFeed(ctx context.Context, postType *models.PostType, page, size int) (*dto.PaginatedResponse, error)
	GetPost(ctx context.Context, postID int64) (*dto.PostResponse, error)
	DeletePost(ctx context.Context, postID, userID int64, role models.RoleType) error
	CreateComment(ctx context.Context, postID, userID int64, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	GetComments(ctx context.Context, postID int64) ([]dto.CommentResponse, error)
	ToggleLike(ctx context.Context, postID, userID int64) (*dto.LikeInfoResponse, error)
	GetLikeInfo(ctx context.Context, postID, userID int64) (*dto.LikeInfoResponse, error)
}

// feedServiceImpl implements FeedService
type feedServiceImpl struct {
	postRepo *repositories.PostRepository
	logger   zerolog.Logger
}

// NewFeedService creates a new FeedService
func NewFeedService(postRepo *repositories.PostRepository, logger zerolog.Logger) FeedService {
	return &feedServiceImpl{
		postRepo: postRepo,
		logger:   logger,
	}
}

// CreatePost publishes a new post on the feed
func (s *feedServiceImpl) CreatePost(ctx context.Context, userID int64, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	if !models.ValidPostType(req.PostType) {
		return nil, apperrors.NewValidationError("unknown post type")
	}
	if req.Stage != nil {
		switch *req.Stage {
		case models.StageIdeation, models.StageMVP, models.StageScaling:
		default:
			return nil, apperrors.NewValidationError("unknown post stage")
		}
		if req.PostType == models.PostTypeWorkUpdate {
			return nil, apperrors.NewValidationError("work updates do not carry a stage")
		}
	}

	post := &models.Post{
		AuthorID:        userID,
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		PostType:        req.PostType,
		Stage:           req.Stage,
		RequiredSkills:  helpers.ParseSkillList(req.RequiredSkills),
		CollaboratorIDs: req.CollaboratorIDs,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("postID", post.ID).Int64("authorID", userID).
		Str("type", string(post.PostType)).Msg("Post created")

	return dto.NewPostResponse(post), nil
}

// GetFeed lists feed posts newest first
func (s *feedServiceImpl) GetFeed(ctx context.Context, postType *models.PostType, page, size int) (*dto.PaginatedResponse, error) {
	posts, total, err := s.postRepo.GetAll(ctx, postType, page, size)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, *dto.NewPostResponse(&posts[i]))
	}
	return &dto.PaginatedResponse{
		Items:      responses,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

// GetPost retrieves a single post
func (s *feedServiceImpl) GetPost(ctx context.Context, postID int64) (*dto.PostResponse, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return dto.NewPostResponse(post), nil
}

// DeletePost removes a post. Only the author or a platform admin may do this.
func (s *feedServiceImpl) DeletePost(ctx context.Context, postID, userID int64, role models.RoleType) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != userID && role != models.RoleAdmin {
		return apperrors.NewForbiddenError("only the author may delete this post")
	}
	return s.postRepo.Delete(ctx, postID)
}

// CreateComment adds a comment to a post
func (s *feedServiceImpl) CreateComment(ctx context.Context, postID, userID int64, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, apperrors.NewValidationError("comment body is required")
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: userID,
		Body:     body,
	}
	if err := s.postRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return dto.NewCommentResponse(comment), nil
}

// GetComments lists the comments of a post oldest first
func (s *feedServiceImpl) GetComments(ctx context.Context, postID int64) ([]dto.CommentResponse, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.postRepo.GetCommentsByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, *dto.NewCommentResponse(&comments[i]))
	}
	return responses, nil
}

// ToggleLike flips the like state of the caller on a post
func (s *feedServiceImpl) ToggleLike(ctx context.Context, postID, userID int64) (*dto.LikeInfoResponse, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	info, err := s.postRepo.ToggleLike(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	return &dto.LikeInfoResponse{
		PostID:  info.PostID,
		Count:   info.Count,
		IsLiked: info.IsLiked,
	}, nil
}

// GetLikeInfo retrieves the like state of a post for the caller
func (s *feedServiceImpl) GetLikeInfo(ctx context.Context, postID, userID int64) (*dto.LikeInfoResponse, error) {
	info, err := s.postRepo.GetLikeInfo(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	return &dto.LikeInfoResponse{
		PostID:  info.PostID,
		Count:   info.Count,
		IsLiked: info.IsLiked,
	}, nil
}
