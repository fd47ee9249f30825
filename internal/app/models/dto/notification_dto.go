package dto

import (
	"time"

	"github.com/campushub/backend/internal/app/models"
)

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	RefType   *string   `json:"refType,omitempty"`
	RefID     *int64    `json:"refId,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewNotificationResponse maps a notification model to its response shape
func NewNotificationResponse(n *models.Notification) *NotificationResponse {
	if n == nil {
		return nil
	}
	return &NotificationResponse{
		ID:        n.ID,
		Kind:      n.Kind,
		Message:   n.Message,
		RefType:   n.RefType,
		RefID:     n.RefID,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
