package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/smarteredu/portal/internal/app/models"
	"github.com/smarteredu/portal/internal/app/repositories"
	"github.com/smarteredu/portal/internal/pkg/apperrors"
	"github.com/smarteredu/portal/internal/pkg/auth"
	"github.com/smarteredu/portal/internal/pkg/helpers"
)

// UserService defines the interface for user directory operations
type UserService interface {
	Create(ctx context.Context, username, email, password string, role models.RoleType) (*models.User, error)
	List(ctx context.Context, skip, limit int) ([]*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo repositories.IUserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repositories.IUserRepository) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

// Create registers a new user. The role defaults to student when empty, the
// password is stored as a bcrypt hash, and a duplicate email is rejected
// before touching the users table.
func (s *userServiceImpl) Create(ctx context.Context, username, email, password string, role models.RoleType) (*models.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: username cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password cannot be empty", apperrors.ErrValidationFailed)
	}

	if role == "" {
		role = models.RoleStudent
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, role)
	}

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:       username,
		Email:          email,
		HashedPassword: hashed,
		Role:           role,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		// The unique constraints arbitrate creates racing past the
		// pre-check; both outcomes surface as the same domain errors.
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) || errors.Is(err, apperrors.ErrUsernameAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	user.ID = id
	return user, nil
}

// List retrieves users in id order, applying offset pagination. Out-of-range
// skip and limit values are normalized, so callers that bypass the HTTP
// layer's query parsing get the same bounds.
func (s *userServiceImpl) List(ctx context.Context, skip, limit int) ([]*models.User, error) {
	skip, limit = helpers.ClampSkipLimit(skip, limit)
	users, err := s.userRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	return users, nil
}

// GetByID retrieves a user by ID
func (s *userServiceImpl) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// Delete removes a user. Courses that reference the user as their teacher
// are not checked or updated; their references stay in place and resolve to
// a null teacher_username from then on.
func (s *userServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}

	err := s.userRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}
