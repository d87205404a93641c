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

// ResearchRepository handles research database operations
type ResearchRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewResearchRepository creates a new ResearchRepository
func NewResearchRepository(db *pgxpool.Pool) *ResearchRepository {
	return &ResearchRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new research record
func (r *ResearchRepository) Create(ctx context.Context, research *models.Research) (int64, error) {
	sql, args, err := r.sb.Insert("research").
		Columns("college_id", "title", "cite", "published_at").
		Values(research.CollegeID, research.Title, research.Cite, research.PublishedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create research SQL")
		return 0, fmt.Errorf("failed to build create research query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create research query")
		return 0, fmt.Errorf("error creating research: %w", err)
	}

	return id, nil
}

// GetAll retrieves all research records
func (r *ResearchRepository) GetAll(ctx context.Context) ([]*models.Research, error) {
	sql, args, err := r.sb.Select("id", "college_id", "title", "cite", "published_at").
		From("research").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all research SQL")
		return nil, fmt.Errorf("failed to build get all research query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all research query")
		return nil, fmt.Errorf("error querying research: %w", err)
	}
	defer rows.Close()

	records := []*models.Research{}
	for rows.Next() {
		research := &models.Research{}
		if err := rows.Scan(&research.ID, &research.CollegeID, &research.Title, &research.Cite, &research.PublishedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning research row")
			return nil, fmt.Errorf("error scanning research row: %w", err)
		}
		records = append(records, research)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating research rows")
		return nil, fmt.Errorf("error iterating research rows: %w", err)
	}

	return records, nil
}

// GetByCollegeID retrieves a single research record for a college,
// projected to the citation fields. This lookup keeps the one-document
// cardinality of the route it serves.
func (r *ResearchRepository) GetByCollegeID(ctx context.Context, collegeID int64) (*models.ResearchCitation, error) {
	sql, args, err := r.sb.Select("id", "college_id", "cite").
		From("research").
		Where(squirrel.Eq{"college_id": collegeID}).
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get research by college SQL")
		return nil, fmt.Errorf("failed to build get research query: %w", err)
	}

	citation := &models.ResearchCitation{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&citation.ID, &citation.CollegeID, &citation.Cite)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResearchNotFound
		}
		logger.Error().Err(err).Int64("collegeID", collegeID).Msg("Error scanning research row")
		return nil, fmt.Errorf("error getting research by college ID: %w", err)
	}

	return citation, nil
}
