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
)

var startupColumns = []string{
	"s.id", "s.user_id", "s.name", "s.problem", "s.domain", "s.stage",
	"s.status", "s.reapply_after", "s.created_at", "s.updated_at",
}

// StartupRepository handles database operations for startup profiles
type StartupRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStartupRepository creates a new StartupRepository
func NewStartupRepository(db *pgxpool.Pool) *StartupRepository {
	return &StartupRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStartup(row pgx.Row, withFounder bool) (*models.Startup, error) {
	var s models.Startup
	dest := []interface{}{
		&s.ID, &s.UserID, &s.Name, &s.Problem, &s.Domain, &s.Stage,
		&s.Status, &s.ReapplyAfter, &s.CreatedAt, &s.UpdatedAt,
	}
	if withFounder {
		dest = append(dest, &s.FounderName)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new pending startup profile and sets its ID
func (r *StartupRepository) Create(ctx context.Context, s *models.Startup) error {
	sql, args, err := r.sb.Insert("startups").
		Columns("user_id", "name", "problem", "domain", "stage", "status").
		Values(s.UserID, s.Name, s.Problem, s.Domain, s.Stage, models.StartupStatusPending).
		Suffix("RETURNING id, status, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create startup query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating startup: %w", err)
	}
	return nil
}

// GetByID retrieves a startup by ID with its founder name
func (r *StartupRepository) GetByID(ctx context.Context, id int64) (*models.Startup, error) {
	sql, args, err := r.sb.Select(startupColumns...).
		Column("u.first_name || ' ' || u.last_name").
		From("startups s").
		Join("users u ON u.id = s.user_id").
		Where(squirrel.Eq{"s.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get startup query: %w", err)
	}

	startup, err := scanStartup(r.db.QueryRow(ctx, sql, args...), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStartupNotFound
		}
		return nil, fmt.Errorf("error getting startup: %w", err)
	}
	return startup, nil
}

// GetLatestByUserID retrieves the most recent startup profile of a user
func (r *StartupRepository) GetLatestByUserID(ctx context.Context, userID int64) (*models.Startup, error) {
	sql, args, err := r.sb.Select(startupColumns...).
		From("startups s").
		Where(squirrel.Eq{"s.user_id": userID}).
		OrderBy("s.created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get startup by user query: %w", err)
	}

	startup, err := scanStartup(r.db.QueryRow(ctx, sql, args...), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStartupNotFound
		}
		return nil, fmt.Errorf("error getting startup by user: %w", err)
	}
	return startup, nil
}

// GetAll retrieves startups with optional status filtering and pagination
func (r *StartupRepository) GetAll(ctx context.Context, status *models.StartupStatus, page, pageSize int) ([]models.Startup, int64, error) {
	query := r.sb.Select(startupColumns...).
		Column("u.first_name || ' ' || u.last_name").
		Column("COUNT(*) OVER()").
		From("startups s").
		Join("users u ON u.id = s.user_id")
	if status != nil {
		query = query.Where(squirrel.Eq{"s.status": *status})
	}

	offset := (page - 1) * pageSize
	sql, args, err := query.OrderBy("s.created_at DESC", "s.id DESC").
		Limit(uint64(pageSize)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list startups query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing startups: %w", err)
	}
	defer rows.Close()

	var startups []models.Startup
	var total int64
	for rows.Next() {
		var s models.Startup
		err := rows.Scan(
			&s.ID, &s.UserID, &s.Name, &s.Problem, &s.Domain, &s.Stage,
			&s.Status, &s.ReapplyAfter, &s.CreatedAt, &s.UpdatedAt,
			&s.FounderName, &total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning startup row: %w", err)
		}
		startups = append(startups, s)
	}
	return startups, total, rows.Err()
}

// UpdateStatus records an admin decision on a startup profile
func (r *StartupRepository) UpdateStatus(ctx context.Context, startupID int64, status models.StartupStatus, reapplyAfter *time.Time) error {
	sql, args, err := r.sb.Update("startups").
		Set("status", status).
		Set("reapply_after", reapplyAfter).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": startupID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update startup status query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating startup status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStartupNotFound
	}
	return nil
}

// ClearExpiredReapply resets the reapply window on rejected startups
// whose window has elapsed. Returns the number of rows changed.
func (r *StartupRepository) ClearExpiredReapply(ctx context.Context, now time.Time) (int64, error) {
	sql, args, err := r.sb.Update("startups").
		Set("reapply_after", nil).
		Set("updated_at", now).
		Where(squirrel.Eq{"status": models.StartupStatusRejected}).
		Where(squirrel.LtOrEq{"reapply_after": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build clear reapply query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error clearing reapply windows: %w", err)
	}
	return tag.RowsAffected(), nil
}
