package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/db"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/dberrors"
)

// PostRepository handles database operations for feed posts, comments and likes
type PostRepository struct {
	database *db.PostgresDB
	sb       squirrel.StatementBuilderType
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(database *db.PostgresDB) *PostRepository {
	return &PostRepository{
		database: database,
		sb:       squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new post and sets its ID
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	if post.RequiredSkills == nil {
		post.RequiredSkills = []string{}
	}
	if post.CollaboratorIDs == nil {
		post.CollaboratorIDs = []int64{}
	}
	sql, args, err := r.sb.Insert("posts").
		Columns("author_id", "title", "description", "post_type", "stage",
			"required_skills", "collaborator_ids").
		Values(post.AuthorID, post.Title, post.Description, post.PostType, post.Stage,
			post.RequiredSkills, post.CollaboratorIDs).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create post query: %w", err)
	}

	err = r.database.Pool.QueryRow(ctx, sql, args...).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating post: %w", err)
	}
	return nil
}

const postSelectColumns = `p.id, p.author_id, p.title, p.description, p.post_type, p.stage,
	p.required_skills, p.collaborator_ids, p.created_at,
	u.first_name || ' ' || u.last_name,
	(SELECT COUNT(*) FROM post_likes pl WHERE pl.post_id = p.id),
	(SELECT COUNT(*) FROM post_comments pc WHERE pc.post_id = p.id)`

func scanPost(row pgx.Row) (*models.Post, error) {
	var p models.Post
	err := row.Scan(
		&p.ID, &p.AuthorID, &p.Title, &p.Description, &p.PostType, &p.Stage,
		&p.RequiredSkills, &p.CollaboratorIDs, &p.CreatedAt,
		&p.AuthorName, &p.LikeCount, &p.CommentCount,
	)
	if err != nil {
		return nil, err
	}
	if p.RequiredSkills == nil {
		p.RequiredSkills = []string{}
	}
	if p.CollaboratorIDs == nil {
		p.CollaboratorIDs = []int64{}
	}
	return &p, nil
}

// GetByID retrieves a post by ID with its author name and aggregates
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	sql, args, err := r.sb.Select(postSelectColumns).
		From("posts p").
		Join("users u ON u.id = p.author_id").
		Where(squirrel.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get post query: %w", err)
	}

	post, err := scanPost(r.database.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("error getting post: %w", err)
	}
	return post, nil
}

// GetAll retrieves feed posts newest first, optionally filtered by type
func (r *PostRepository) GetAll(ctx context.Context, postType *models.PostType, page, pageSize int) ([]models.Post, int64, error) {
	query := r.sb.Select(postSelectColumns).
		Column("COUNT(*) OVER()").
		From("posts p").
		Join("users u ON u.id = p.author_id")
	if postType != nil {
		query = query.Where(squirrel.Eq{"p.post_type": *postType})
	}

	offset := (page - 1) * pageSize
	sql, args, err := query.OrderBy("p.created_at DESC", "p.id DESC").
		Limit(uint64(pageSize)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list posts query: %w", err)
	}

	rows, err := r.database.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing posts: %w", err)
	}
	defer rows.Close()

	var posts []models.Post
	var total int64
	for rows.Next() {
		var p models.Post
		err := rows.Scan(
			&p.ID, &p.AuthorID, &p.Title, &p.Description, &p.PostType, &p.Stage,
			&p.RequiredSkills, &p.CollaboratorIDs, &p.CreatedAt,
			&p.AuthorName, &p.LikeCount, &p.CommentCount,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning post row: %w", err)
		}
		if p.RequiredSkills == nil {
			p.RequiredSkills = []string{}
		}
		if p.CollaboratorIDs == nil {
			p.CollaboratorIDs = []int64{}
		}
		posts = append(posts, p)
	}
	return posts, total, rows.Err()
}

// Delete removes a post; comments and likes go with it via cascade
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("posts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete post query: %w", err)
	}

	tag, err := r.database.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}
	return nil
}

// CreateComment inserts a new comment and sets its ID
func (r *PostRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	sql, args, err := r.sb.Insert("post_comments").
		Columns("post_id", "author_id", "body").
		Values(comment.PostID, comment.AuthorID, comment.Body).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create comment query: %w", err)
	}

	err = r.database.Pool.QueryRow(ctx, sql, args...).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrPostNotFound
		}
		return fmt.Errorf("error creating comment: %w", err)
	}
	return nil
}

// GetCommentsByPost retrieves the comments of a post oldest first
func (r *PostRepository) GetCommentsByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	sql, args, err := r.sb.Select("pc.id", "pc.post_id", "pc.author_id", "pc.body", "pc.created_at",
		"u.first_name || ' ' || u.last_name").
		From("post_comments pc").
		Join("users u ON u.id = pc.author_id").
		Where(squirrel.Eq{"pc.post_id": postID}).
		OrderBy("pc.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list comments query: %w", err)
	}

	rows, err := r.database.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing comments: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.Body, &c.CreatedAt, &c.AuthorName); err != nil {
			return nil, fmt.Errorf("error scanning comment row: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// ToggleLike flips the like state of the user on a post in one
// transaction and returns the resulting state
func (r *PostRepository) ToggleLike(ctx context.Context, postID, userID int64) (*models.LikeInfo, error) {
	info := &models.LikeInfo{PostID: postID}
	err := r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Delete("post_likes").
			Where(squirrel.Eq{"post_id": postID, "user_id": userID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build unlike query: %w", err)
		}
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("error removing like: %w", err)
		}

		if tag.RowsAffected() == 0 {
			sql, args, err := r.sb.Insert("post_likes").
				Columns("post_id", "user_id").
				Values(postID, userID).
				Suffix("ON CONFLICT DO NOTHING").
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build like query: %w", err)
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				if dberrors.IsForeignKeyViolation(err) {
					return apperrors.ErrPostNotFound
				}
				return fmt.Errorf("error adding like: %w", err)
			}
			info.IsLiked = true
		}

		sql, args, err = r.sb.Select("COUNT(*)").
			From("post_likes").
			Where(squirrel.Eq{"post_id": postID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build like count query: %w", err)
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&info.Count); err != nil {
			return fmt.Errorf("error counting likes: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

// GetLikeInfo retrieves the like count of a post and whether the viewer liked it
func (r *PostRepository) GetLikeInfo(ctx context.Context, postID, userID int64) (*models.LikeInfo, error) {
	sql, args, err := r.sb.Select("(SELECT COUNT(*) FROM post_likes WHERE post_id = p.id)").
		Column(squirrel.Expr("EXISTS (SELECT 1 FROM post_likes WHERE post_id = p.id AND user_id = ?)", userID)).
		From("posts p").
		Where(squirrel.Eq{"p.id": postID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build like info query: %w", err)
	}

	info := &models.LikeInfo{PostID: postID}
	err = r.database.Pool.QueryRow(ctx, sql, args...).Scan(&info.Count, &info.IsLiked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("error getting like info: %w", err)
	}
	return info, nil
}
