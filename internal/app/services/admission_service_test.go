package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shariarmdimtiaz/college-booking-server/internal/app/models"
	"github.com/shariarmdimtiaz/college-booking-server/internal/pkg/apperrors"
)

// fakeAdmissionStore records calls and keeps admissions by id
type fakeAdmissionStore struct {
	admissions map[int64]*models.Admission
	nextID     int64

	lastFeedbackID     int64
	lastFeedbackReview string
	lastFeedbackRating float64
}

func newFakeAdmissionStore() *fakeAdmissionStore {
	return &fakeAdmissionStore{admissions: map[int64]*models.Admission{}, nextID: 1}
}

func (f *fakeAdmissionStore) Create(_ context.Context, admission *models.Admission) (int64, error) {
	id := f.nextID
	f.nextID++
	stored := *admission
	stored.ID = id
	f.admissions[id] = &stored
	return id, nil
}

func (f *fakeAdmissionStore) GetAll(_ context.Context) ([]*models.Admission, error) {
	all := []*models.Admission{}
	for _, a := range f.admissions {
		all = append(all, a)
	}
	return all, nil
}

func (f *fakeAdmissionStore) GetByEmail(_ context.Context, email string) ([]*models.Admission, error) {
	matched := []*models.Admission{}
	for _, a := range f.admissions {
		if a.Email == email {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (f *fakeAdmissionStore) GetByID(_ context.Context, id int64) (*models.Admission, error) {
	a, ok := f.admissions[id]
	if !ok {
		return nil, apperrors.ErrAdmissionNotFound
	}
	return a, nil
}

func (f *fakeAdmissionStore) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := f.admissions[id]; !ok {
		return 0, nil
	}
	delete(f.admissions, id)
	return 1, nil
}

func (f *fakeAdmissionStore) UpdateFeedback(_ context.Context, id int64, review string, rating float64) (int64, error) {
	f.lastFeedbackID = id
	f.lastFeedbackReview = review
	f.lastFeedbackRating = rating

	a, ok := f.admissions[id]
	if !ok {
		return 0, nil
	}
	a.Review = &review
	a.Rating = &rating
	return 1, nil
}

func TestApply_Validation(t *testing.T) {
	svc := NewAdmissionService(newFakeAdmissionStore())
	ctx := context.Background()

	_, err := svc.Apply(ctx, &models.Admission{CollegeID: 1})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Apply(ctx, &models.Admission{Email: "a@x.com"})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	id, err := svc.Apply(ctx, &models.Admission{Email: "a@x.com", CollegeID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestUpdateFeedback_TouchesOnlyReviewAndRating(t *testing.T) {
	store := newFakeAdmissionStore()
	svc := NewAdmissionService(store)
	ctx := context.Background()

	id, err := svc.Apply(ctx, &models.Admission{
		Email:         "a@x.com",
		CollegeID:     7,
		College:       "Springfield College",
		CandidateName: "Ada",
	})
	require.NoError(t, err)

	matched, err := svc.UpdateFeedback(ctx, id, "Great", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)
	assert.Equal(t, id, store.lastFeedbackID)
	assert.Equal(t, "Great", store.lastFeedbackReview)
	assert.Equal(t, float64(5), store.lastFeedbackRating)

	// every other field is unchanged
	after, err := svc.GetAdmissionByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(7), after.CollegeID)
	assert.Equal(t, "a@x.com", after.Email)
	assert.Equal(t, "Springfield College", after.College)
	assert.Equal(t, "Ada", after.CandidateName)
	require.NotNil(t, after.Review)
	assert.Equal(t, "Great", *after.Review)
}

func TestUpdateFeedback_MissingAdmissionMatchesZero(t *testing.T) {
	svc := NewAdmissionService(newFakeAdmissionStore())

	matched, err := svc.UpdateFeedback(context.Background(), 42, "Great", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(0), matched)
}

func TestDeleteAdmission_Idempotent(t *testing.T) {
	store := newFakeAdmissionStore()
	svc := NewAdmissionService(store)
	ctx := context.Background()

	id, err := svc.Apply(ctx, &models.Admission{Email: "a@x.com", CollegeID: 1})
	require.NoError(t, err)

	count, err := svc.DeleteAdmission(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = svc.DeleteAdmission(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestGetAdmissionsByEmail(t *testing.T) {
	store := newFakeAdmissionStore()
	svc := NewAdmissionService(store)
	ctx := context.Background()

	_, err := svc.Apply(ctx, &models.Admission{Email: "a@x.com", CollegeID: 1})
	require.NoError(t, err)
	_, err = svc.Apply(ctx, &models.Admission{Email: "b@x.com", CollegeID: 2})
	require.NoError(t, err)

	mine, err := svc.GetAdmissionsByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "a@x.com", mine[0].Email)

	none, err := svc.GetAdmissionsByEmail(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.Empty(t, none)
}
