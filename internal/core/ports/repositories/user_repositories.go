package repositories

import (
	"context"

	"github.com/doctrackph/doctrack-backend/internal/core/domain"
)

// UserRepository persists the user directory.
type UserRepository interface {
	// CreateUser inserts a new user. Returns apperrors.ErrDuplicate when
	// the ID number or email is already taken.
	CreateUser(ctx context.Context, user domain.User) error

	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByIDNumber(ctx context.Context, idNumber string) (*domain.User, error)
	FindUsers(ctx context.Context) ([]domain.User, error)

	// UpdateUser rewrites the user's directory fields. The password hash is
	// only touched via UpdatePassword.
	UpdateUser(ctx context.Context, user domain.User) error
	UpdatePassword(ctx context.Context, userID string, passwordHash string, updaterUserID string) error

	DeleteUser(ctx context.Context, userID string) error
	CountUsers(ctx context.Context) (int64, error)
}
