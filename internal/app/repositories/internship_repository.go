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

var internshipColumns = []string{
	"i.id", "i.startup_id", "i.role_title", "i.description", "i.internship_type",
	"i.location", "i.stipend", "i.duration", "i.application_deadline",
	"i.external_link", "i.created_at",
}

// InternshipRepository handles database operations for internships and applications
type InternshipRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInternshipRepository creates a new InternshipRepository
func NewInternshipRepository(db *pgxpool.Pool) *InternshipRepository {
	return &InternshipRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new internship posting and sets its ID
func (r *InternshipRepository) Create(ctx context.Context, i *models.Internship) error {
	sql, args, err := r.sb.Insert("internships").
		Columns("startup_id", "role_title", "description", "internship_type", "location",
			"stipend", "duration", "application_deadline", "external_link").
		Values(i.StartupID, i.RoleTitle, i.Description, i.Type, i.Location,
			i.Stipend, i.Duration, i.ApplicationDeadline, i.ExternalLink).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create internship query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&i.ID, &i.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating internship: %w", err)
	}
	return nil
}

// GetByID retrieves an internship by ID with its startup name
func (r *InternshipRepository) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	sql, args, err := r.sb.Select(internshipColumns...).
		Column("s.name").
		From("internships i").
		Join("startups s ON s.id = i.startup_id").
		Where(squirrel.Eq{"i.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get internship query: %w", err)
	}

	var i models.Internship
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&i.ID, &i.StartupID, &i.RoleTitle, &i.Description, &i.Type,
		&i.Location, &i.Stipend, &i.Duration, &i.ApplicationDeadline,
		&i.ExternalLink, &i.CreatedAt, &i.StartupName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInternshipNotFound
		}
		return nil, fmt.Errorf("error getting internship: %w", err)
	}
	return &i, nil
}

// InternshipFilter narrows internship listings. Zero value lists every
// posting whose deadline has not passed.
type InternshipFilter struct {
	Types          []string
	Location       string
	Search         string
	IncludeExpired bool
}

// GetAll retrieves internships newest first, filtered
func (r *InternshipRepository) GetAll(ctx context.Context, filter InternshipFilter, page, pageSize int) ([]models.Internship, int64, error) {
	query := r.sb.Select(internshipColumns...).
		Column("s.name").
		Column("COUNT(*) OVER()").
		From("internships i").
		Join("startups s ON s.id = i.startup_id")
	if len(filter.Types) > 0 {
		query = query.Where(squirrel.Eq{"i.internship_type": filter.Types})
	}
	if filter.Location != "" {
		query = query.Where(squirrel.ILike{"i.location": "%" + filter.Location + "%"})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"i.role_title": pattern},
			squirrel.ILike{"i.description": pattern},
			squirrel.ILike{"s.name": pattern},
		})
	}
	if !filter.IncludeExpired {
		query = query.Where(squirrel.Or{
			squirrel.Eq{"i.application_deadline": nil},
			squirrel.Expr("i.application_deadline >= NOW()"),
		})
	}

	offset := (page - 1) * pageSize
	sql, args, err := query.OrderBy("i.created_at DESC", "i.id DESC").
		Limit(uint64(pageSize)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list internships query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing internships: %w", err)
	}
	defer rows.Close()

	var internships []models.Internship
	var total int64
	for rows.Next() {
		var i models.Internship
		err := rows.Scan(
			&i.ID, &i.StartupID, &i.RoleTitle, &i.Description, &i.Type,
			&i.Location, &i.Stipend, &i.Duration, &i.ApplicationDeadline,
			&i.ExternalLink, &i.CreatedAt, &i.StartupName, &total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning internship row: %w", err)
		}
		internships = append(internships, i)
	}
	return internships, total, rows.Err()
}

// CreateApplication inserts a new application with status APPLIED.
// A unique constraint on (internship_id, applicant_id) turns repeat
// submissions into ErrDuplicateApplication.
func (r *InternshipRepository) CreateApplication(ctx context.Context, a *models.Application) error {
	sql, args, err := r.sb.Insert("internship_applications").
		Columns("internship_id", "applicant_id", "status").
		Values(a.InternshipID, a.ApplicantID, models.ApplicationStatusApplied).
		Suffix("RETURNING id, status, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create application query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDuplicateApplication
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrInternshipNotFound
		}
		return fmt.Errorf("error creating application: %w", err)
	}
	return nil
}

// GetApplicationByID retrieves an application by ID
func (r *InternshipRepository) GetApplicationByID(ctx context.Context, id int64) (*models.Application, error) {
	sql, args, err := r.sb.Select("id", "internship_id", "applicant_id", "status",
		"created_at", "updated_at").
		From("internship_applications").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get application query: %w", err)
	}

	var a models.Application
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&a.ID, &a.InternshipID, &a.ApplicantID, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error getting application: %w", err)
	}
	return &a, nil
}

// GetApplicationsByInternship retrieves the applications for a posting
// with applicant names
func (r *InternshipRepository) GetApplicationsByInternship(ctx context.Context, internshipID int64) ([]models.Application, error) {
	sql, args, err := r.sb.Select("a.id", "a.internship_id", "a.applicant_id", "a.status",
		"a.created_at", "a.updated_at",
		"u.first_name || ' ' || u.last_name").
		From("internship_applications a").
		Join("users u ON u.id = a.applicant_id").
		Where(squirrel.Eq{"a.internship_id": internshipID}).
		OrderBy("a.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	var applications []models.Application
	for rows.Next() {
		var a models.Application
		err := rows.Scan(&a.ID, &a.InternshipID, &a.ApplicantID, &a.Status,
			&a.CreatedAt, &a.UpdatedAt, &a.ApplicantName)
		if err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		applications = append(applications, a)
	}
	return applications, rows.Err()
}

// UpdateApplicationStatus records a founder decision on an application
func (r *InternshipRepository) UpdateApplicationStatus(ctx context.Context, applicationID int64, status models.ApplicationStatus) error {
	sql, args, err := r.sb.Update("internship_applications").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": applicationID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update application query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}
