package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/shariarmdimtiaz/college-booking-server/internal/app/models"
	"github.com/shariarmdimtiaz/college-booking-server/internal/pkg/apperrors"
)

// fakeCollegeService serves a fixed catalog for handler tests.
type fakeCollegeService struct {
	colleges map[int64]*models.College
	subjects map[int64][]*models.Subject
	research map[int64]*models.ResearchCitation
}

func (f *fakeCollegeService) AddCollege(_ context.Context, college *models.College) (int64, error) {
	id := int64(len(f.colleges) + 1)
	college.ID = id
	f.colleges[id] = college
	return id, nil
}

func (f *fakeCollegeService) GetAllColleges(_ context.Context) ([]*models.College, error) {
	colleges := make([]*models.College, 0, len(f.colleges))
	for _, c := range f.colleges {
		colleges = append(colleges, c)
	}
	return colleges, nil
}

func (f *fakeCollegeService) GetCollegeByID(_ context.Context, id int64) (*models.College, error) {
	college, ok := f.colleges[id]
	if !ok {
		return nil, apperrors.ErrCollegeNotFound
	}
	return college, nil
}

func (f *fakeCollegeService) GetSubjectsByCollegeID(_ context.Context, collegeID int64) ([]*models.Subject, error) {
	return f.subjects[collegeID], nil
}

func (f *fakeCollegeService) GetAllResearch(_ context.Context) ([]*models.Research, error) {
	return []*models.Research{}, nil
}

func (f *fakeCollegeService) GetResearchByCollegeID(_ context.Context, collegeID int64) (*models.ResearchCitation, error) {
	citation, ok := f.research[collegeID]
	if !ok {
		return nil, apperrors.ErrResearchNotFound
	}
	return citation, nil
}

func newCollegeRouter(svc *fakeCollegeService) *gin.Engine {
	controller := NewCollegeController(svc)
	router := gin.New()
	router.GET("/college", controller.GetAllColleges)
	router.GET("/collegeDetails/:id", controller.GetCollegeByID)
	router.GET("/subjects/:id", controller.GetSubjectsByCollegeID)
	router.GET("/research/:id", controller.GetResearchByCollegeID)
	return router
}

func newCatalog() *fakeCollegeService {
	return &fakeCollegeService{
		colleges: map[int64]*models.College{
			1: {ID: 1, Name: "Harvard University", Rating: 4.9},
		},
		subjects: map[int64][]*models.Subject{
			1: {{ID: 1, CollegeID: 1, Name: "Computer Science"}},
			2: {},
		},
		research: map[int64]*models.ResearchCitation{
			1: {ID: 1, CollegeID: 1, Cite: "doi.org/10.1000/example"},
		},
	}
}

func TestGetCollegeByID(t *testing.T) {
	router := newCollegeRouter(newCatalog())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/collegeDetails/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Harvard University")
}

func TestGetCollegeByID_NotFound(t *testing.T) {
	router := newCollegeRouter(newCatalog())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/collegeDetails/999", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "RES_001")
}

// A college with no subjects is an empty array, never a 404.
func TestGetSubjectsByCollegeID_Empty(t *testing.T) {
	router := newCollegeRouter(newCatalog())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/subjects/2", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetResearchByCollegeID(t *testing.T) {
	router := newCollegeRouter(newCatalog())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/research/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "doi.org/10.1000/example")

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/research/999", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
