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

// ParticipantRepository handles database operations for solo participants
type ParticipantRepository struct {
	database *db.PostgresDB
	sb       squirrel.StatementBuilderType
}

// NewParticipantRepository creates a new ParticipantRepository
func NewParticipantRepository(database *db.PostgresDB) *ParticipantRepository {
	return &ParticipantRepository{
		database: database,
		sb:       squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new solo participant and sets its ID. A unique
// constraint on (event_id, user_id) turns repeat submissions into
// ErrAlreadyRegistered.
func (r *ParticipantRepository) Create(ctx context.Context, p *models.SoloParticipant) error {
	sql, args, err := r.sb.Insert("solo_participants").
		Columns("event_id", "user_id", "note").
		Values(p.EventID, p.UserID, p.Note).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create participant query: %w", err)
	}

	err = r.database.Pool.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyRegistered
		}
		return fmt.Errorf("error creating participant: %w", err)
	}
	return nil
}

// GetByID retrieves a solo participant by ID
func (r *ParticipantRepository) GetByID(ctx context.Context, id int64) (*models.SoloParticipant, error) {
	sql, args, err := r.sb.Select("id", "event_id", "user_id", "note", "created_at").
		From("solo_participants").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get participant query: %w", err)
	}

	var p models.SoloParticipant
	err = r.database.Pool.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.EventID, &p.UserID, &p.Note, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("error getting participant: %w", err)
	}
	return &p, nil
}

// Exists checks whether the user is already registered solo for the event
func (r *ParticipantRepository) Exists(ctx context.Context, eventID, userID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("solo_participants").
		Where(squirrel.Eq{"event_id": eventID, "user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build participant exists query: %w", err)
	}

	var one int
	err = r.database.Pool.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error checking participant: %w", err)
	}
	return true, nil
}

// ListByEvent retrieves the solo participants of an event with their
// display names and skills
func (r *ParticipantRepository) ListByEvent(ctx context.Context, eventID int64) ([]models.SoloParticipant, error) {
	sql, args, err := r.sb.Select("sp.id", "sp.event_id", "sp.user_id", "sp.note", "sp.created_at",
		"u.first_name || ' ' || u.last_name", "u.skills").
		From("solo_participants sp").
		Join("users u ON u.id = sp.user_id").
		Where(squirrel.Eq{"sp.event_id": eventID}).
		OrderBy("sp.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list participants query: %w", err)
	}

	rows, err := r.database.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing participants: %w", err)
	}
	defer rows.Close()

	var participants []models.SoloParticipant
	for rows.Next() {
		var p models.SoloParticipant
		err := rows.Scan(&p.ID, &p.EventID, &p.UserID, &p.Note, &p.CreatedAt, &p.UserName, &p.Skills)
		if err != nil {
			return nil, fmt.Errorf("error scanning participant row: %w", err)
		}
		if p.Skills == nil {
			p.Skills = []string{}
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

// CountByEvent counts the solo participants of an event
func (r *ParticipantRepository) CountByEvent(ctx context.Context, eventID int64) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("solo_participants").
		Where(squirrel.Eq{"event_id": eventID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count participants query: %w", err)
	}

	var count int
	if err := r.database.Pool.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting participants: %w", err)
	}
	return count, nil
}

// Move places a solo participant into a team and removes the solo row
// in one transaction. The participant row is locked first so two admins
// cannot move the same participant twice; the membership insert checks
// capacity under the team row lock.
func (r *ParticipantRepository) Move(ctx context.Context, participantID, teamID int64) error {
	return r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Select("user_id").
			From("solo_participants").
			Where(squirrel.Eq{"id": participantID}).
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build lock participant query: %w", err)
		}

		var userID int64
		err = tx.QueryRow(ctx, sql, args...).Scan(&userID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrParticipantNotFound
			}
			return fmt.Errorf("error locking participant: %w", err)
		}

		if err := addMemberTx(ctx, tx, r.sb, teamID, userID); err != nil {
			return err
		}

		sql, args, err = r.sb.Delete("solo_participants").
			Where(squirrel.Eq{"id": participantID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete participant query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error deleting participant: %w", err)
		}
		return nil
	})
}
