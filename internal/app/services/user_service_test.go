package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shariarmdimtiaz/college-booking-server/internal/app/models"
	"github.com/shariarmdimtiaz/college-booking-server/internal/pkg/apperrors"
)

// fakeUserStore is an in-memory UserStore keyed by email
type fakeUserStore struct {
	users     map[string]*models.User
	nextID    int64
	createErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}, nextID: 1}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	if _, ok := f.users[user.Email]; ok {
		return 0, apperrors.ErrEmailAlreadyExists
	}
	id := f.nextID
	f.nextID++
	stored := *user
	stored.ID = id
	f.users[user.Email] = &stored
	return id, nil
}

func (f *fakeUserStore) GetAll(_ context.Context) ([]*models.User, error) {
	all := []*models.User{}
	for _, u := range f.users {
		all = append(all, u)
	}
	return all, nil
}

func (f *fakeUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

func (f *fakeUserStore) Delete(_ context.Context, id int64) (int64, error) {
	for email, u := range f.users {
		if u.ID == id {
			delete(f.users, email)
			return 1, nil
		}
	}
	return 0, nil
}

func TestAddUser_InsertsThenReportsDuplicate(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)
	ctx := context.Background()

	id, created, err := svc.AddUser(ctx, &models.User{Email: "a@x.com"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(1), id)

	id, created, err = svc.AddUser(ctx, &models.User{Email: "a@x.com"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Zero(t, id)

	// exactly one record survives for the email
	assert.Len(t, store.users, 1)
}

func TestAddUser_ConcurrentInsertLosesAsDuplicate(t *testing.T) {
	// Simulates the window where two registrations pass the existence
	// lookup and the second insert hits the unique index.
	store := newFakeUserStore()
	store.createErr = apperrors.ErrEmailAlreadyExists
	svc := NewUserService(store)

	_, created, err := svc.AddUser(context.Background(), &models.User{Email: "a@x.com"})
	require.NoError(t, err)
	assert.False(t, created)
}

func TestAddUser_RequiresEmail(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	_, _, err := svc.AddUser(context.Background(), &models.User{Email: "  "})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, _, err = svc.AddUser(context.Background(), nil)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestIsUser(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)
	ctx := context.Background()

	exists, err := svc.IsUser(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, exists)

	_, _, err = svc.AddUser(ctx, &models.User{Email: "a@x.com"})
	require.NoError(t, err)

	exists, err = svc.IsUser(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestDeleteUser_Idempotent(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)
	ctx := context.Background()

	id, _, err := svc.AddUser(ctx, &models.User{Email: "a@x.com"})
	require.NoError(t, err)

	count, err := svc.DeleteUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = svc.DeleteUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
