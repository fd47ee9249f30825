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

// EventContentRepository handles database operations for event resources and FAQs
type EventContentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventContentRepository creates a new EventContentRepository
func NewEventContentRepository(db *pgxpool.Pool) *EventContentRepository {
	return &EventContentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateResource inserts a new event resource and sets its ID
func (r *EventContentRepository) CreateResource(ctx context.Context, res *models.Resource) error {
	sql, args, err := r.sb.Insert("event_resources").
		Columns("event_id", "title", "url", "resource_type", "description", "created_by").
		Values(res.EventID, res.Title, res.URL, res.Type, res.Description, res.CreatedBy).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create resource query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating resource: %w", err)
	}
	return nil
}

// GetResourceByID retrieves an event resource by ID
func (r *EventContentRepository) GetResourceByID(ctx context.Context, id int64) (*models.Resource, error) {
	sql, args, err := r.sb.Select("id", "event_id", "title", "url", "resource_type",
		"description", "created_by", "created_at", "updated_at").
		From("event_resources").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get resource query: %w", err)
	}

	var res models.Resource
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&res.ID, &res.EventID, &res.Title, &res.URL, &res.Type,
		&res.Description, &res.CreatedBy, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error getting resource: %w", err)
	}
	return &res, nil
}

// GetResourcesByEvent retrieves all resources of an event
func (r *EventContentRepository) GetResourcesByEvent(ctx context.Context, eventID int64) ([]models.Resource, error) {
	sql, args, err := r.sb.Select("id", "event_id", "title", "url", "resource_type",
		"description", "created_by", "created_at", "updated_at").
		From("event_resources").
		Where(squirrel.Eq{"event_id": eventID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list resources query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing resources: %w", err)
	}
	defer rows.Close()

	var resources []models.Resource
	for rows.Next() {
		var res models.Resource
		err := rows.Scan(&res.ID, &res.EventID, &res.Title, &res.URL, &res.Type,
			&res.Description, &res.CreatedBy, &res.CreatedAt, &res.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning resource row: %w", err)
		}
		resources = append(resources, res)
	}
	return resources, rows.Err()
}

// UpdateResource updates an event resource
func (r *EventContentRepository) UpdateResource(ctx context.Context, res *models.Resource) error {
	sql, args, err := r.sb.Update("event_resources").
		Set("title", res.Title).
		Set("url", res.URL).
		Set("resource_type", res.Type).
		Set("description", res.Description).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": res.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update resource query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating resource: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// DeleteResource removes an event resource
func (r *EventContentRepository) DeleteResource(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("event_resources").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete resource query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting resource: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// CreateFAQ inserts a new event FAQ entry and sets its ID
func (r *EventContentRepository) CreateFAQ(ctx context.Context, faq *models.FAQ) error {
	sql, args, err := r.sb.Insert("event_faqs").
		Columns("event_id", "question", "answer").
		Values(faq.EventID, faq.Question, faq.Answer).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create faq query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&faq.ID, &faq.CreatedAt, &faq.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating faq: %w", err)
	}
	return nil
}

// GetFAQByID retrieves a FAQ entry by ID
func (r *EventContentRepository) GetFAQByID(ctx context.Context, id int64) (*models.FAQ, error) {
	sql, args, err := r.sb.Select("id", "event_id", "question", "answer", "created_at", "updated_at").
		From("event_faqs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faq query: %w", err)
	}

	var faq models.FAQ
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&faq.ID, &faq.EventID, &faq.Question, &faq.Answer, &faq.CreatedAt, &faq.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error getting faq: %w", err)
	}
	return &faq, nil
}

// GetFAQsByEvent retrieves all FAQ entries of an event
func (r *EventContentRepository) GetFAQsByEvent(ctx context.Context, eventID int64) ([]models.FAQ, error) {
	sql, args, err := r.sb.Select("id", "event_id", "question", "answer", "created_at", "updated_at").
		From("event_faqs").
		Where(squirrel.Eq{"event_id": eventID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list faqs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing faqs: %w", err)
	}
	defer rows.Close()

	var faqs []models.FAQ
	for rows.Next() {
		var faq models.FAQ
		err := rows.Scan(&faq.ID, &faq.EventID, &faq.Question, &faq.Answer, &faq.CreatedAt, &faq.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning faq row: %w", err)
		}
		faqs = append(faqs, faq)
	}
	return faqs, rows.Err()
}

// UpdateFAQ updates a FAQ entry
func (r *EventContentRepository) UpdateFAQ(ctx context.Context, faq *models.FAQ) error {
	sql, args, err := r.sb.Update("event_faqs").
		Set("question", faq.Question).
		Set("answer", faq.Answer).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": faq.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update faq query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating faq: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// DeleteFAQ removes a FAQ entry
func (r *EventContentRepository) DeleteFAQ(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("event_faqs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete faq query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting faq: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
