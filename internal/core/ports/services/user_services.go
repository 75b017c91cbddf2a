package services

import (
	"context"

	"github.com/doctrackph/doctrack-backend/internal/core/domain"
	"github.com/doctrackph/doctrack-backend/internal/dto"
)

// UserSvcFacade manages the user directory and authentication lookups.
type UserSvcFacade interface {
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest, creatorUserID string) (*domain.User, error)
	Authenticate(ctx context.Context, idNumber, password string) (*domain.User, error)

	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string, deleterUserID string) error
}
