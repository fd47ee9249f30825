package models

import (
	"time"
)

// Post defines a feed post based on the 'posts' table
type Post struct {
	ID              int64      `json:"id" db:"id"`
	AuthorID        int64      `json:"authorId" db:"author_id"`
	Title           string     `json:"title" db:"title"`
	Description     string     `json:"description" db:"description"`
	PostType        PostType   `json:"postType" db:"post_type"`
	Stage           *PostStage `json:"stage,omitempty" db:"stage"`
	RequiredSkills  []string   `json:"requiredSkills" db:"required_skills"`
	CollaboratorIDs []int64    `json:"collaboratorIds" db:"collaborator_ids"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`

	AuthorName   string `json:"authorName,omitempty"` // Joined from users
	LikeCount    int    `json:"likeCount"`            // Aggregate
	CommentCount int    `json:"commentCount"`         // Aggregate
}

// Comment defines a post comment based on the 'post_comments' table
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"postId" db:"post_id"`
	AuthorID  int64     `json:"authorId" db:"author_id"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	AuthorName string `json:"authorName,omitempty"` // Joined from users
}

// LikeInfo is the aggregate like state of a post for one viewer
type LikeInfo struct {
	PostID  int64 `json:"postId"`
	Count   int   `json:"count"`
	IsLiked bool  `json:"isLiked"`
}
