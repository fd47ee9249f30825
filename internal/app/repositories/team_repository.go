package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/db"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/dberrors"
)

// TeamRepository handles database operations for teams and their members
type TeamRepository struct {
	database *db.PostgresDB
	sb       squirrel.StatementBuilderType
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(database *db.PostgresDB) *TeamRepository {
	return &TeamRepository{
		database: database,
		sb:       squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new team and its leader membership in one transaction
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	if team.RequiredSkills == nil {
		team.RequiredSkills = []string{}
	}
	return r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Insert("teams").
			Columns("event_id", "name", "leader_id", "required_skills", "max_size", "status").
			Values(team.EventID, team.Name, team.LeaderID, team.RequiredSkills, team.MaxSize, models.TeamStatusPending).
			Suffix("RETURNING id, status, created_at, updated_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create team query: %w", err)
		}

		err = tx.QueryRow(ctx, sql, args...).Scan(&team.ID, &team.Status, &team.CreatedAt, &team.UpdatedAt)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.NewConflictError("a team with this name already exists in the event")
			}
			return fmt.Errorf("error creating team: %w", err)
		}

		sql, args, err = r.sb.Insert("team_members").
			Columns("team_id", "user_id").
			Values(team.ID, team.LeaderID).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create leader membership query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error creating leader membership: %w", err)
		}

		team.MemberCount = 1
		return nil
	})
}

// GetByID retrieves a team by ID including its member count
func (r *TeamRepository) GetByID(ctx context.Context, id int64) (*models.Team, error) {
	sql, args, err := r.sb.Select("t.id", "t.event_id", "t.name", "t.leader_id",
		"t.required_skills", "t.max_size", "t.status", "t.created_at", "t.updated_at",
		"(SELECT COUNT(*) FROM team_members tm WHERE tm.team_id = t.id)").
		From("teams t").
		Where(squirrel.Eq{"t.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get team query: %w", err)
	}

	var t models.Team
	err = r.database.Pool.QueryRow(ctx, sql, args...).Scan(
		&t.ID, &t.EventID, &t.Name, &t.LeaderID,
		&t.RequiredSkills, &t.MaxSize, &t.Status, &t.CreatedAt, &t.UpdatedAt,
		&t.MemberCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("error getting team: %w", err)
	}
	if t.RequiredSkills == nil {
		t.RequiredSkills = []string{}
	}
	return &t, nil
}

// GetMembers retrieves the members of a team with their display names
func (r *TeamRepository) GetMembers(ctx context.Context, teamID int64) ([]models.TeamMember, error) {
	sql, args, err := r.sb.Select("tm.id", "tm.team_id", "tm.user_id", "tm.joined_at",
		"u.first_name || ' ' || u.last_name").
		From("team_members tm").
		Join("users u ON u.id = tm.user_id").
		Where(squirrel.Eq{"tm.team_id": teamID}).
		OrderBy("tm.joined_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get members query: %w", err)
	}

	rows, err := r.database.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error getting members: %w", err)
	}
	defer rows.Close()

	var members []models.TeamMember
	for rows.Next() {
		var m models.TeamMember
		if err := rows.Scan(&m.ID, &m.TeamID, &m.UserID, &m.JoinedAt, &m.UserName); err != nil {
			return nil, fmt.Errorf("error scanning member row: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// ListByEvent retrieves the teams of an event with member counts,
// optionally filtered by status
func (r *TeamRepository) ListByEvent(ctx context.Context, eventID int64, status *models.TeamStatus) ([]models.Team, error) {
	query := r.sb.Select("t.id", "t.event_id", "t.name", "t.leader_id",
		"t.required_skills", "t.max_size", "t.status", "t.created_at", "t.updated_at",
		"(SELECT COUNT(*) FROM team_members tm WHERE tm.team_id = t.id)").
		From("teams t").
		Where(squirrel.Eq{"t.event_id": eventID})
	if status != nil {
		query = query.Where(squirrel.Eq{"t.status": *status})
	}
	sql, args, err := query.OrderBy("t.created_at ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list teams query: %w", err)
	}

	rows, err := r.database.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing teams: %w", err)
	}
	defer rows.Close()

	var teams []models.Team
	for rows.Next() {
		var t models.Team
		err := rows.Scan(&t.ID, &t.EventID, &t.Name, &t.LeaderID,
			&t.RequiredSkills, &t.MaxSize, &t.Status, &t.CreatedAt, &t.UpdatedAt,
			&t.MemberCount)
		if err != nil {
			return nil, fmt.Errorf("error scanning team row: %w", err)
		}
		if t.RequiredSkills == nil {
			t.RequiredSkills = []string{}
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

// UpdateStatus changes the formation status of a team
func (r *TeamRepository) UpdateStatus(ctx context.Context, teamID int64, status models.TeamStatus) error {
	sql, args, err := r.sb.Update("teams").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": teamID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update team status query: %w", err)
	}

	tag, err := r.database.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating team status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTeamNotFound
	}
	return nil
}

// IsMemberOfEvent checks whether the user already belongs to any team of the event
func (r *TeamRepository) IsMemberOfEvent(ctx context.Context, eventID, userID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("team_members tm").
		Join("teams t ON t.id = tm.team_id").
		Where(squirrel.Eq{"t.event_id": eventID, "tm.user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build membership query: %w", err)
	}

	var one int
	err = r.database.Pool.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error checking membership: %w", err)
	}
	return true, nil
}

// AddMember inserts a membership under a row lock so the capacity
// check and the insert cannot race with concurrent joins
func (r *TeamRepository) AddMember(ctx context.Context, teamID, userID int64) error {
	return r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return addMemberTx(ctx, tx, r.sb, teamID, userID)
	})
}

func addMemberTx(ctx context.Context, tx pgx.Tx, sb squirrel.StatementBuilderType, teamID, userID int64) error {
	sql, args, err := sb.Select("max_size", "status").
		From("teams").
		Where(squirrel.Eq{"id": teamID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build lock team query: %w", err)
	}

	var maxSize int
	var status models.TeamStatus
	err = tx.QueryRow(ctx, sql, args...).Scan(&maxSize, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("error locking team: %w", err)
	}

	if status != models.TeamStatusPending && status != models.TeamStatusApproved {
		return apperrors.ErrTeamNotJoinable
	}

	sql, args, err = sb.Select("COUNT(*)").
		From("team_members").
		Where(squirrel.Eq{"team_id": teamID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build member count query: %w", err)
	}

	var count int
	if err := tx.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return fmt.Errorf("error counting members: %w", err)
	}
	if maxSize > 0 && count >= maxSize {
		return apperrors.ErrTeamFull
	}

	sql, args, err = sb.Insert("team_members").
		Columns("team_id", "user_id").
		Values(teamID, userID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build add member query: %w", err)
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyTeamMember
		}
		return fmt.Errorf("error adding member: %w", err)
	}
	return nil
}

// LockFormation locks team formation for an event and freezes every
// approved team in the same transaction
func (r *TeamRepository) LockFormation(ctx context.Context, eventID int64) (int64, error) {
	var locked int64
	err := r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Update("events").
			Set("formation_locked", true).
			Set("updated_at", time.Now()).
			Where(squirrel.Eq{"id": eventID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build lock formation query: %w", err)
		}
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("error locking formation: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrEventNotFound
		}

		sql, args, err = r.sb.Update("teams").
			Set("status", models.TeamStatusLocked).
			Set("updated_at", time.Now()).
			Where(squirrel.Eq{"event_id": eventID, "status": models.TeamStatusApproved}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build lock teams query: %w", err)
		}
		tag, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("error locking teams: %w", err)
		}
		locked = tag.RowsAffected()
		return nil
	})
	return locked, err
}

// CountByStatus returns how many teams of the event are in each status
func (r *TeamRepository) CountByStatus(ctx context.Context, eventID int64) (map[models.TeamStatus]int, error) {
	sql, args, err := r.sb.Select("status", "COUNT(*)").
		From("teams").
		Where(squirrel.Eq{"event_id": eventID}).
		GroupBy("status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build count teams query: %w", err)
	}

	rows, err := r.database.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error counting teams: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.TeamStatus]int)
	for rows.Next() {
		var status models.TeamStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("error scanning count row: %w", err)
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
