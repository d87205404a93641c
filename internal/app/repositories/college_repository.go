package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shariarmdimtiaz/college-booking-server/internal/app/models"
	"github.com/shariarmdimtiaz/college-booking-server/internal/pkg/apperrors"
	"github.com/shariarmdimtiaz/college-booking-server/internal/pkg/logger"
)

// CollegeRepository handles college database operations
type CollegeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCollegeRepository creates a new CollegeRepository
func NewCollegeRepository(db *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var collegeColumns = []string{"id", "name", "image_url", "admission_date", "events_count", "research_count", "sports", "rating"}

func scanCollege(row pgx.Row) (*models.College, error) {
	college := &models.College{}
	err := row.Scan(
		&college.ID,
		&college.Name,
		&college.ImageURL,
		&college.AdmissionDate,
		&college.EventsCount,
		&college.ResearchCount,
		&college.Sports,
		&college.Rating,
	)
	if err != nil {
		return nil, err
	}
	return college, nil
}

// Create inserts a new college
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) (int64, error) {
	sql, args, err := r.sb.Insert("colleges").
		Columns("name", "image_url", "admission_date", "events_count", "research_count", "sports", "rating").
		Values(college.Name, college.ImageURL, college.AdmissionDate, college.EventsCount, college.ResearchCount, college.Sports, college.Rating).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create college SQL")
		return 0, fmt.Errorf("failed to build create college query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create college query")
		return 0, fmt.Errorf("error creating college: %w", err)
	}

	return id, nil
}

// GetAll retrieves all colleges in the store's natural order
func (r *CollegeRepository) GetAll(ctx context.Context) ([]*models.College, error) {
	sql, args, err := r.sb.Select(collegeColumns...).
		From("colleges").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all colleges SQL")
		return nil, fmt.Errorf("failed to build get all colleges query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all colleges query")
		return nil, fmt.Errorf("error querying colleges: %w", err)
	}
	defer rows.Close()

	colleges := []*models.College{}
	for rows.Next() {
		college, err := scanCollege(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning college row")
			return nil, fmt.Errorf("error scanning college row: %w", err)
		}
		colleges = append(colleges, college)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating college rows")
		return nil, fmt.Errorf("error iterating college rows: %w", err)
	}

	return colleges, nil
}

// GetByID retrieves a college by ID
func (r *CollegeRepository) GetByID(ctx context.Context, id int64) (*models.College, error) {
	sql, args, err := r.sb.Select(collegeColumns...).
		From("colleges").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get college by ID SQL")
		return nil, fmt.Errorf("failed to build get college query: %w", err)
	}

	college, err := scanCollege(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCollegeNotFound
		}
		logger.Error().Err(err).Int64("collegeID", id).Msg("Error scanning college row")
		return nil, fmt.Errorf("error getting college by ID: %w", err)
	}

	return college, nil
}
