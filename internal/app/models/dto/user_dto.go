package dto

import (
	"time"

	"github.com/campushub/backend/internal/app/models"
)

// UserResponse represents a user profile in API responses
type UserResponse struct {
	ID         int64           `json:"id"`
	Email      string          `json:"email"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Role       models.RoleType `json:"role"`
	College    *string         `json:"college,omitempty"`
	Course     *string         `json:"course,omitempty"`
	Branch     *string         `json:"branch,omitempty"`
	Year       *int            `json:"year,omitempty"`
	Skills     []string        `json:"skills"`
	TrustScore int             `json:"trustScore"`
	Level      int             `json:"level"`
	Available  bool            `json:"available"`
	LastSeenAt *time.Time      `json:"lastSeenAt,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// NewUserResponse maps a user model to its response shape. The role field
// is always present; clients treat its absence as a hard failure.
func NewUserResponse(u *models.User) *UserResponse {
	if u == nil {
		return nil
	}
	skills := u.Skills
	if skills == nil {
		skills = []string{}
	}
	return &UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Role:       u.RoleType,
		College:    u.College,
		Course:     u.Course,
		Branch:     u.Branch,
		Year:       u.Year,
		Skills:     skills,
		TrustScore: u.TrustScore,
		Level:      u.Level,
		Available:  u.Available,
		LastSeenAt: u.LastSeenAt,
		CreatedAt:  u.CreatedAt,
	}
}

// UserBasicResponse is the minimal user reference embedded in other payloads
type UserBasicResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// UpdateProfileRequest represents a profile update. Nil fields are left
// unchanged.
type UpdateProfileRequest struct {
	FirstName *string   `json:"firstName,omitempty"`
	LastName  *string   `json:"lastName,omitempty"`
	College   *string   `json:"college,omitempty"`
	Course    *string   `json:"course,omitempty"`
	Branch    *string   `json:"branch,omitempty"`
	Year      *int      `json:"year,omitempty"`
	Skills    *[]string `json:"skills,omitempty"`
	Available *bool     `json:"available,omitempty"`
}
