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

var eventColumns = []string{
	"id", "title", "description", "location", "organizer_id", "status",
	"starts_at", "ends_at", "min_team_size", "max_team_size",
	"formation_locked", "created_at", "updated_at",
}

// EventRepository handles database operations for events and their milestones
type EventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	var e models.Event
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Location, &e.OrganizerID, &e.Status,
		&e.StartsAt, &e.EndsAt, &e.MinTeamSize, &e.MaxTeamSize,
		&e.FormationLocked, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts a new event with its milestones in one transaction
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	sql, args, err := r.sb.Insert("events").
		Columns("title", "description", "location", "organizer_id", "status",
			"starts_at", "ends_at", "min_team_size", "max_team_size").
		Values(event.Title, event.Description, event.Location, event.OrganizerID, event.Status,
			event.StartsAt, event.EndsAt, event.MinTeamSize, event.MaxTeamSize).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create event query: %w", err)
	}

	err = tx.QueryRow(ctx, sql, args...).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating event: %w", err)
	}

	for i := range event.Milestones {
		m := &event.Milestones[i]
		m.EventID = event.ID
		m.Position = i
		sql, args, err := r.sb.Insert("event_milestones").
			Columns("event_id", "title", "description", "due_at", "position").
			Values(m.EventID, m.Title, m.Description, m.DueAt, m.Position).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create milestone query: %w", err)
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&m.ID); err != nil {
			return fmt.Errorf("error creating milestone: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	sql, args, err := r.sb.Select(eventColumns...).
		From("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get event query: %w", err)
	}

	event, err := scanEvent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error getting event: %w", err)
	}
	return event, nil
}

// GetAll retrieves events with optional status filtering and pagination
func (r *EventRepository) GetAll(ctx context.Context, status *models.EventStatus, page, pageSize int) ([]models.Event, int64, error) {
	query := r.sb.Select(eventColumns...).
		Column("COUNT(*) OVER()").
		From("events")
	if status != nil {
		query = query.Where(squirrel.Eq{"status": *status})
	}

	offset := (page - 1) * pageSize
	query = query.OrderBy("starts_at ASC", "id ASC").
		Limit(uint64(pageSize)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list events query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	var total int64
	for rows.Next() {
		var e models.Event
		err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.Location, &e.OrganizerID, &e.Status,
			&e.StartsAt, &e.EndsAt, &e.MinTeamSize, &e.MaxTeamSize,
			&e.FormationLocked, &e.CreatedAt, &e.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, e)
	}
	return events, total, rows.Err()
}

// Update updates the mutable columns of an event
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	sql, args, err := r.sb.Update("events").
		Set("title", event.Title).
		Set("description", event.Description).
		Set("location", event.Location).
		Set("starts_at", event.StartsAt).
		Set("ends_at", event.EndsAt).
		Set("min_team_size", event.MinTeamSize).
		Set("max_team_size", event.MaxTeamSize).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": event.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update event query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// UpdateStatus changes the lifecycle status of an event
func (r *EventRepository) UpdateStatus(ctx context.Context, eventID int64, status models.EventStatus) error {
	sql, args, err := r.sb.Update("events").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": eventID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update event status query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating event status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// Delete removes an event and its dependent rows via cascading constraints
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete event query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// GetMilestones retrieves the timeline of an event ordered by position
func (r *EventRepository) GetMilestones(ctx context.Context, eventID int64) ([]models.Milestone, error) {
	sql, args, err := r.sb.Select("id", "event_id", "title", "description", "due_at", "position").
		From("event_milestones").
		Where(squirrel.Eq{"event_id": eventID}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get milestones query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error getting milestones: %w", err)
	}
	defer rows.Close()

	var milestones []models.Milestone
	for rows.Next() {
		var m models.Milestone
		if err := rows.Scan(&m.ID, &m.EventID, &m.Title, &m.Description, &m.DueAt, &m.Position); err != nil {
			return nil, fmt.Errorf("error scanning milestone row: %w", err)
		}
		milestones = append(milestones, m)
	}
	return milestones, rows.Err()
}

// SweepStatuses advances event statuses based on their time window.
// OPEN events past their start become ONGOING, ONGOING events past
// their end become CLOSED. Returns the number of rows changed.
func (r *EventRepository) SweepStatuses(ctx context.Context, now time.Time) (int64, error) {
	var changed int64

	sql, args, err := r.sb.Update("events").
		Set("status", models.EventStatusOngoing).
		Set("updated_at", now).
		Where(squirrel.Eq{"status": models.EventStatusOpen}).
		Where(squirrel.LtOrEq{"starts_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sweep query: %w", err)
	}
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error sweeping open events: %w", err)
	}
	changed += tag.RowsAffected()

	sql, args, err = r.sb.Update("events").
		Set("status", models.EventStatusClosed).
		Set("updated_at", now).
		Where(squirrel.Eq{"status": models.EventStatusOngoing}).
		Where(squirrel.LtOrEq{"ends_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sweep query: %w", err)
	}
	tag, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error sweeping ongoing events: %w", err)
	}
	changed += tag.RowsAffected()

	return changed, nil
}
