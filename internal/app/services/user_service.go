package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shariarmdimtiaz/college-booking-server/internal/app/models"
	"github.com/shariarmdimtiaz/college-booking-server/internal/pkg/apperrors"
)

// UserStore is the slice of the user repository this service needs
type UserStore interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// UserService defines the interface for user-related operations
type UserService interface {
	// AddUser registers a user unless the email is already taken. The
	// boolean reports whether a record was inserted; a duplicate email is
	// not an error.
	AddUser(ctx context.Context, user *models.User) (int64, bool, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	// IsUser reports whether a user is registered under the email.
	IsUser(ctx context.Context, email string) (bool, error)
	// DeleteUser removes a user by ID, returning the affected count.
	DeleteUser(ctx context.Context, id int64) (int64, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userStore UserStore
}

// NewUserService creates a new user service instance
func NewUserService(userStore UserStore) UserService {
	return &userServiceImpl{
		userStore: userStore,
	}
}

// AddUser keeps the registration contract idempotent per email: the first
// call inserts, later calls report a duplicate. The lookup and insert are
// not one atomic step, so two concurrent registrations can both pass the
// lookup; the store's unique index on email closes that window and the
// losing insert is reported as the same duplicate outcome.
func (s *userServiceImpl) AddUser(ctx context.Context, user *models.User) (int64, bool, error) {
	if user == nil || strings.TrimSpace(user.Email) == "" {
		return 0, false, fmt.Errorf("%w: email is required", apperrors.ErrValidationFailed)
	}

	exists, err := s.userStore.EmailExists(ctx, user.Email)
	if err != nil {
		return 0, false, err
	}
	if exists {
		return 0, false, nil
	}

	id, err := s.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return 0, false, nil
		}
		return 0, false, err
	}

	return id, true, nil
}

// GetAllUsers returns every registered user
func (s *userServiceImpl) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userStore.GetAll(ctx)
}

// IsUser probes for a registered user; absence is a false result, not an
// error.
func (s *userServiceImpl) IsUser(ctx context.Context, email string) (bool, error) {
	return s.userStore.EmailExists(ctx, email)
}

// DeleteUser removes a user by ID. Deleting a missing ID yields a zero
// count.
func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64) (int64, error) {
	return s.userStore.Delete(ctx, id)
}
