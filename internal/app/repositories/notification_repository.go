package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new notification and sets its ID
func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	sql, args, err := r.sb.Insert("notifications").
		Columns("user_id", "kind", "message", "ref_type", "ref_id").
		Values(n.UserID, n.Kind, n.Message, n.RefType, n.RefID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create notification query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating notification: %w", err)
	}
	return nil
}

// ListByUser retrieves the notifications of a user newest first
func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64, unreadOnly bool, page, pageSize int) ([]models.Notification, int64, error) {
	query := r.sb.Select("id", "user_id", "kind", "message", "ref_type", "ref_id",
		"read", "created_at").
		Column("COUNT(*) OVER()").
		From("notifications").
		Where(squirrel.Eq{"user_id": userID})
	if unreadOnly {
		query = query.Where(squirrel.Eq{"read": false})
	}

	offset := (page - 1) * pageSize
	sql, args, err := query.OrderBy("created_at DESC", "id DESC").
		Limit(uint64(pageSize)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list notifications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	var total int64
	for rows.Next() {
		var n models.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.Kind, &n.Message, &n.RefType, &n.RefID,
			&n.Read, &n.CreatedAt, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, total, rows.Err()
}

// MarkRead marks a notification of the user as read. The user guard
// keeps users from touching each other's notifications.
func (r *NotificationRepository) MarkRead(ctx context.Context, notificationID, userID int64) error {
	sql, args, err := r.sb.Update("notifications").
		Set("read", true).
		Where(squirrel.Eq{"id": notificationID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build mark read query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error marking notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotificationNotFound
	}
	return nil
}

// PruneRead deletes read notifications older than the cutoff.
// Returns the number of rows removed.
func (r *NotificationRepository) PruneRead(ctx context.Context, olderThan time.Time) (int64, error) {
	sql, args, err := r.sb.Delete("notifications").
		Where(squirrel.Eq{"read": true}).
		Where(squirrel.Lt{"created_at": olderThan}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build prune notifications query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error pruning notifications: %w", err)
	}
	return tag.RowsAffected(), nil
}
