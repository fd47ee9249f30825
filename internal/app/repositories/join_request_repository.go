package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/dberrors"
)

// JoinRequestRepository handles database operations for team join requests
type JoinRequestRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewJoinRequestRepository creates a new JoinRequestRepository
func NewJoinRequestRepository(db *pgxpool.Pool) *JoinRequestRepository {
	return &JoinRequestRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new pending join request and sets its ID.
// A partial unique index on (team_id, user_id) for pending rows turns
// duplicate submissions into ErrDuplicateRequest.
func (r *JoinRequestRepository) Create(ctx context.Context, req *models.JoinRequest) error {
	sql, args, err := r.sb.Insert("join_requests").
		Columns("event_id", "team_id", "user_id", "status").
		Values(req.EventID, req.TeamID, req.UserID, models.JoinRequestPending).
		Suffix("RETURNING id, status, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create join request query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&req.ID, &req.Status, &req.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDuplicateRequest
		}
		return fmt.Errorf("error creating join request: %w", err)
	}
	return nil
}

// GetByID retrieves a join request by ID
func (r *JoinRequestRepository) GetByID(ctx context.Context, id int64) (*models.JoinRequest, error) {
	sql, args, err := r.sb.Select("id", "event_id", "team_id", "user_id", "status",
		"created_at", "decided_at").
		From("join_requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get join request query: %w", err)
	}

	var req models.JoinRequest
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&req.ID, &req.EventID, &req.TeamID, &req.UserID, &req.Status,
		&req.CreatedAt, &req.DecidedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("error getting join request: %w", err)
	}
	return &req, nil
}

// HasPending checks whether the user already has a pending request for the team
func (r *JoinRequestRepository) HasPending(ctx context.Context, teamID, userID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("join_requests").
		Where(squirrel.Eq{"team_id": teamID, "user_id": userID, "status": models.JoinRequestPending}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build pending request query: %w", err)
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error checking pending request: %w", err)
	}
	return true, nil
}

// ListByEvent retrieves the join requests of an event with requester and
// team names, optionally filtered by status
func (r *JoinRequestRepository) ListByEvent(ctx context.Context, eventID int64, status *models.JoinRequestStatus) ([]models.JoinRequest, error) {
	query := r.sb.Select("jr.id", "jr.event_id", "jr.team_id", "jr.user_id", "jr.status",
		"jr.created_at", "jr.decided_at",
		"u.first_name || ' ' || u.last_name", "t.name").
		From("join_requests jr").
		Join("users u ON u.id = jr.user_id").
		Join("teams t ON t.id = jr.team_id").
		Where(squirrel.Eq{"jr.event_id": eventID})
	if status != nil {
		query = query.Where(squirrel.Eq{"jr.status": *status})
	}
	sql, args, err := query.OrderBy("jr.created_at ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list join requests query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing join requests: %w", err)
	}
	defer rows.Close()

	var requests []models.JoinRequest
	for rows.Next() {
		var req models.JoinRequest
		err := rows.Scan(&req.ID, &req.EventID, &req.TeamID, &req.UserID, &req.Status,
			&req.CreatedAt, &req.DecidedAt, &req.UserName, &req.TeamName)
		if err != nil {
			return nil, fmt.Errorf("error scanning join request row: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// ListPendingByTeam retrieves pending join requests for one team
func (r *JoinRequestRepository) ListPendingByTeam(ctx context.Context, teamID int64) ([]models.JoinRequest, error) {
	sql, args, err := r.sb.Select("jr.id", "jr.event_id", "jr.team_id", "jr.user_id", "jr.status",
		"jr.created_at", "jr.decided_at",
		"u.first_name || ' ' || u.last_name").
		From("join_requests jr").
		Join("users u ON u.id = jr.user_id").
		Where(squirrel.Eq{"jr.team_id": teamID, "jr.status": models.JoinRequestPending}).
		OrderBy("jr.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list team requests query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing team requests: %w", err)
	}
	defer rows.Close()

	var requests []models.JoinRequest
	for rows.Next() {
		var req models.JoinRequest
		err := rows.Scan(&req.ID, &req.EventID, &req.TeamID, &req.UserID, &req.Status,
			&req.CreatedAt, &req.DecidedAt, &req.UserName)
		if err != nil {
			return nil, fmt.Errorf("error scanning join request row: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// Decide marks a pending request as approved or rejected. The status
// guard in the WHERE clause keeps a second decision from overwriting
// the first.
func (r *JoinRequestRepository) Decide(ctx context.Context, requestID int64, status models.JoinRequestStatus) error {
	sql, args, err := r.sb.Update("join_requests").
		Set("status", status).
		Set("decided_at", time.Now()).
		Where(squirrel.Eq{"id": requestID, "status": models.JoinRequestPending}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build decide request query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deciding request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRequestDecided
	}
	return nil
}

// CountPendingByEvent counts the undecided join requests of an event
func (r *JoinRequestRepository) CountPendingByEvent(ctx context.Context, eventID int64) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("join_requests").
		Where(squirrel.Eq{"event_id": eventID, "status": models.JoinRequestPending}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count requests query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting requests: %w", err)
	}
	return count, nil
}
