package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID         int64      `json:"id" db:"id"`
	Email      string     `json:"email" db:"email"`
	Password   string     `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	FirstName  string     `json:"firstName" db:"first_name"`
	LastName   string     `json:"lastName" db:"last_name"`
	RoleType   RoleType   `json:"roleType" db:"role_type"`
	College    *string    `json:"college,omitempty" db:"college"`
	Course     *string    `json:"course,omitempty" db:"course"`
	Branch     *string    `json:"branch,omitempty" db:"branch"`
	Year       *int       `json:"year,omitempty" db:"year"`
	Skills     []string   `json:"skills" db:"skills"`
	TrustScore int        `json:"trustScore" db:"trust_score"`
	Level      int        `json:"level" db:"level"`
	Available  bool       `json:"available" db:"available"`
	IsActive   bool       `json:"isActive" db:"is_active"`
	LastSeenAt *time.Time `json:"lastSeenAt,omitempty" db:"last_seen_at"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time  `json:"updatedAt" db:"updated_at"`
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// RefreshToken defines a stored refresh token based on the 'refresh_tokens' table
type RefreshToken struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}
