package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shariarmdimtiaz/college-booking-server/internal/app/models"
	"github.com/shariarmdimtiaz/college-booking-server/internal/pkg/apperrors"
)

// AdmissionStore is the slice of the admission repository this service needs
type AdmissionStore interface {
	Create(ctx context.Context, admission *models.Admission) (int64, error)
	GetAll(ctx context.Context) ([]*models.Admission, error)
	GetByEmail(ctx context.Context, email string) ([]*models.Admission, error)
	GetByID(ctx context.Context, id int64) (*models.Admission, error)
	Delete(ctx context.Context, id int64) (int64, error)
	UpdateFeedback(ctx context.Context, id int64, review string, rating float64) (int64, error)
}

// AdmissionService defines the interface for admission operations
type AdmissionService interface {
	Apply(ctx context.Context, admission *models.Admission) (int64, error)
	GetAllAdmissions(ctx context.Context) ([]*models.Admission, error)
	GetAdmissionsByEmail(ctx context.Context, email string) ([]*models.Admission, error)
	GetAdmissionByID(ctx context.Context, id int64) (*models.Admission, error)
	// DeleteAdmission removes an admission by ID, returning the affected
	// count; a missing ID yields 0.
	DeleteAdmission(ctx context.Context, id int64) (int64, error)
	// UpdateFeedback merge-sets only the review and rating fields of one
	// admission, returning how many documents matched.
	UpdateFeedback(ctx context.Context, id int64, review string, rating float64) (int64, error)
}

// admissionServiceImpl implements the AdmissionService interface
type admissionServiceImpl struct {
	admissionStore AdmissionStore
}

// NewAdmissionService creates a new admission service instance
func NewAdmissionService(admissionStore AdmissionStore) AdmissionService {
	return &admissionServiceImpl{
		admissionStore: admissionStore,
	}
}

// Apply records a new admission application
func (s *admissionServiceImpl) Apply(ctx context.Context, admission *models.Admission) (int64, error) {
	if admission == nil || strings.TrimSpace(admission.Email) == "" {
		return 0, fmt.Errorf("%w: email is required", apperrors.ErrValidationFailed)
	}
	if admission.CollegeID <= 0 {
		return 0, fmt.Errorf("%w: collegeId is required", apperrors.ErrValidationFailed)
	}
	return s.admissionStore.Create(ctx, admission)
}

// GetAllAdmissions returns every admission application
func (s *admissionServiceImpl) GetAllAdmissions(ctx context.Context) ([]*models.Admission, error) {
	return s.admissionStore.GetAll(ctx)
}

// GetAdmissionsByEmail returns the admissions owned by an email
func (s *admissionServiceImpl) GetAdmissionsByEmail(ctx context.Context, email string) ([]*models.Admission, error) {
	return s.admissionStore.GetByEmail(ctx, email)
}

// GetAdmissionByID returns a single admission
func (s *admissionServiceImpl) GetAdmissionByID(ctx context.Context, id int64) (*models.Admission, error) {
	return s.admissionStore.GetByID(ctx, id)
}

// DeleteAdmission removes an admission
func (s *admissionServiceImpl) DeleteAdmission(ctx context.Context, id int64) (int64, error) {
	return s.admissionStore.Delete(ctx, id)
}

// UpdateFeedback passes exactly the review and rating through to the
// store; no other field of the admission is touched.
func (s *admissionServiceImpl) UpdateFeedback(ctx context.Context, id int64, review string, rating float64) (int64, error) {
	return s.admissionStore.UpdateFeedback(ctx, id, review, rating)
}
