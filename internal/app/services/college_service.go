package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shariarmdimtiaz/college-booking-server/internal/app/models"
	"github.com/shariarmdimtiaz/college-booking-server/internal/pkg/apperrors"
)

// CollegeStore is the slice of the college repository this service needs
type CollegeStore interface {
	Create(ctx context.Context, college *models.College) (int64, error)
	GetAll(ctx context.Context) ([]*models.College, error)
	GetByID(ctx context.Context, id int64) (*models.College, error)
}

// SubjectStore is the slice of the subject repository this service needs
type SubjectStore interface {
	GetByCollegeID(ctx context.Context, collegeID int64) ([]*models.Subject, error)
}

// ResearchStore is the slice of the research repository this service needs
type ResearchStore interface {
	GetAll(ctx context.Context) ([]*models.Research, error)
	GetByCollegeID(ctx context.Context, collegeID int64) (*models.ResearchCitation, error)
}

// CollegeService defines the interface for the college catalog: colleges
// plus their subjects and research records.
type CollegeService interface {
	AddCollege(ctx context.Context, college *models.College) (int64, error)
	GetAllColleges(ctx context.Context) ([]*models.College, error)
	GetCollegeByID(ctx context.Context, id int64) (*models.College, error)
	GetSubjectsByCollegeID(ctx context.Context, collegeID int64) ([]*models.Subject, error)
	GetAllResearch(ctx context.Context) ([]*models.Research, error)
	GetResearchByCollegeID(ctx context.Context, collegeID int64) (*models.ResearchCitation, error)
}

// collegeServiceImpl implements the CollegeService interface
type collegeServiceImpl struct {
	collegeStore  CollegeStore
	subjectStore  SubjectStore
	researchStore ResearchStore
}

// NewCollegeService creates a new college service instance
func NewCollegeService(collegeStore CollegeStore, subjectStore SubjectStore, researchStore ResearchStore) CollegeService {
	return &collegeServiceImpl{
		collegeStore:  collegeStore,
		subjectStore:  subjectStore,
		researchStore: researchStore,
	}
}

// AddCollege creates a new college
func (s *collegeServiceImpl) AddCollege(ctx context.Context, college *models.College) (int64, error) {
	if college == nil || strings.TrimSpace(college.Name) == "" {
		return 0, fmt.Errorf("%w: name is required", apperrors.ErrValidationFailed)
	}
	return s.collegeStore.Create(ctx, college)
}

// GetAllColleges returns the full college catalog
func (s *collegeServiceImpl) GetAllColleges(ctx context.Context) ([]*models.College, error) {
	return s.collegeStore.GetAll(ctx)
}

// GetCollegeByID returns one college
func (s *collegeServiceImpl) GetCollegeByID(ctx context.Context, id int64) (*models.College, error) {
	return s.collegeStore.GetByID(ctx, id)
}

// GetSubjectsByCollegeID returns the subjects a college offers; a college
// with none yields an empty list.
func (s *collegeServiceImpl) GetSubjectsByCollegeID(ctx context.Context, collegeID int64) ([]*models.Subject, error) {
	return s.subjectStore.GetByCollegeID(ctx, collegeID)
}

// GetAllResearch returns every research record
func (s *collegeServiceImpl) GetAllResearch(ctx context.Context) ([]*models.Research, error) {
	return s.researchStore.GetAll(ctx)
}

// GetResearchByCollegeID returns one projected research record for a
// college.
func (s *collegeServiceImpl) GetResearchByCollegeID(ctx context.Context, collegeID int64) (*models.ResearchCitation, error) {
	return s.researchStore.GetByCollegeID(ctx, collegeID)
}
