package models

import (
	"time"
)

// Notification kinds
const (
	NotificationJoinRequest       = "JOIN_REQUEST"
	NotificationJoinDecision      = "JOIN_DECISION"
	NotificationTeamStatus        = "TEAM_STATUS"
	NotificationApplicationStatus = "APPLICATION_STATUS"
	NotificationStartupDecision   = "STARTUP_DECISION"
)

// Notification defines a stored notification based on the 'notifications'
// table. Delivery is out of scope; rows are served from /notifications/me.
type Notification struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Kind      string    `json:"kind" db:"kind"`
	Message   string    `json:"message" db:"message"`
	RefType   *string   `json:"refType,omitempty" db:"ref_type"`
	RefID     *int64    `json:"refId,omitempty" db:"ref_id"`
	Read      bool      `json:"read" db:"read"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
