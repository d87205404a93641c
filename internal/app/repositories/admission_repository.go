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

// AdmissionRepository handles admission database operations
type AdmissionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdmissionRepository creates a new AdmissionRepository
func NewAdmissionRepository(db *pgxpool.Pool) *AdmissionRepository {
	return &AdmissionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var admissionColumns = []string{
	"id", "college_id", "college", "email", "candidate_name", "phone",
	"address", "date_of_birth", "image_url", "subject", "review", "rating",
}

func scanAdmission(row pgx.Row) (*models.Admission, error) {
	admission := &models.Admission{}
	err := row.Scan(
		&admission.ID,
		&admission.CollegeID,
		&admission.College,
		&admission.Email,
		&admission.CandidateName,
		&admission.Phone,
		&admission.Address,
		&admission.DateOfBirth,
		&admission.ImageURL,
		&admission.Subject,
		&admission.Review,
		&admission.Rating,
	)
	if err != nil {
		return nil, err
	}
	return admission, nil
}

// Create inserts a new admission application
func (r *AdmissionRepository) Create(ctx context.Context, admission *models.Admission) (int64, error) {
	sql, args, err := r.sb.Insert("admissions").
		Columns("college_id", "college", "email", "candidate_name", "phone", "address", "date_of_birth", "image_url", "subject").
		Values(admission.CollegeID, admission.College, admission.Email, admission.CandidateName, admission.Phone,
			admission.Address, admission.DateOfBirth, admission.ImageURL, admission.Subject).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create admission SQL")
		return 0, fmt.Errorf("failed to build create admission query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create admission query")
		return 0, fmt.Errorf("error creating admission: %w", err)
	}

	return id, nil
}

// GetAll retrieves all admission applications
func (r *AdmissionRepository) GetAll(ctx context.Context) ([]*models.Admission, error) {
	return r.list(ctx, nil)
}

// GetByEmail retrieves the admissions owned by an email address
func (r *AdmissionRepository) GetByEmail(ctx context.Context, email string) ([]*models.Admission, error) {
	return r.list(ctx, squirrel.Eq{"email": email})
}

func (r *AdmissionRepository) list(ctx context.Context, filter interface{}) ([]*models.Admission, error) {
	builder := r.sb.Select(admissionColumns...).From("admissions").OrderBy("id ASC")
	if filter != nil {
		builder = builder.Where(filter)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list admissions SQL")
		return nil, fmt.Errorf("failed to build list admissions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list admissions query")
		return nil, fmt.Errorf("error querying admissions: %w", err)
	}
	defer rows.Close()

	admissions := []*models.Admission{}
	for rows.Next() {
		admission, err := scanAdmission(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning admission row")
			return nil, fmt.Errorf("error scanning admission row: %w", err)
		}
		admissions = append(admissions, admission)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating admission rows")
		return nil, fmt.Errorf("error iterating admission rows: %w", err)
	}

	return admissions, nil
}

// GetByID retrieves a single admission by ID
func (r *AdmissionRepository) GetByID(ctx context.Context, id int64) (*models.Admission, error) {
	sql, args, err := r.sb.Select(admissionColumns...).
		From("admissions").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get admission by ID SQL")
		return nil, fmt.Errorf("failed to build get admission query: %w", err)
	}

	admission, err := scanAdmission(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdmissionNotFound
		}
		logger.Error().Err(err).Int64("admissionID", id).Msg("Error scanning admission row")
		return nil, fmt.Errorf("error getting admission by ID: %w", err)
	}

	return admission, nil
}

// Delete removes an admission by ID and returns the number of rows
// removed. Deleting a missing ID yields 0, not an error.
func (r *AdmissionRepository) Delete(ctx context.Context, id int64) (int64, error) {
	sql, args, err := r.sb.Delete("admissions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete admission SQL")
		return 0, fmt.Errorf("failed to build delete admission query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("admissionID", id).Msg("Error executing delete admission query")
		return 0, fmt.Errorf("error deleting admission: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// UpdateFeedback merge-sets the review and rating columns of one
// admission, leaving every other column untouched. Returns the number of
// rows matched.
func (r *AdmissionRepository) UpdateFeedback(ctx context.Context, id int64, review string, rating float64) (int64, error) {
	sql, args, err := r.sb.Update("admissions").
		SetMap(map[string]interface{}{
			"review": review,
			"rating": rating,
		}).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update feedback SQL")
		return 0, fmt.Errorf("failed to build update feedback query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("admissionID", id).Msg("Error executing update feedback query")
		return 0, fmt.Errorf("error updating admission feedback: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
