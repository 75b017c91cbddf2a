package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/doctrackph/doctrack-backend/internal/apperrors"
	"github.com/doctrackph/doctrack-backend/internal/core/domain"
	portsrepo "github.com/doctrackph/doctrack-backend/internal/core/ports/repositories"
	portssvc "github.com/doctrackph/doctrack-backend/internal/core/ports/services"
	"github.com/doctrackph/doctrack-backend/internal/dto"
	"github.com/doctrackph/doctrack-backend/internal/utils"
)

// ErrInvalidCredentials is returned on a failed login attempt; handlers
// must not reveal whether the ID number or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid ID number or password")

// userService manages the user directory.
type userService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates the user directory service.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest, creatorUserID string) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		IDNumber:     req.IDNumber,
		FirstName:    req.FirstName,
		MiddleName:   req.MiddleName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.Role(req.Role),
		Address:      req.Address,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) Authenticate(ctx context.Context, idNumber, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByIDNumber(ctx, idNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.FindUsers(ctx)
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user.IDNumber = req.IDNumber
	user.FirstName = req.FirstName
	user.MiddleName = req.MiddleName
	user.LastName = req.LastName
	user.Email = req.Email
	user.Role = domain.Role(req.Role)
	user.Address = req.Address
	user.LastUpdatedAt = now
	user.LastUpdatedBy = updaterUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}

	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		if err := s.userRepo.UpdatePassword(ctx, userID, hash, updaterUserID); err != nil {
			return nil, err
		}
	}

	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user.FirstName = req.FirstName
	user.MiddleName = req.MiddleName
	user.LastName = req.LastName
	user.Email = req.Email
	user.Address = req.Address
	user.LastUpdatedAt = now
	user.LastUpdatedBy = userID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}

	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		if err := s.userRepo.UpdatePassword(ctx, userID, hash, userID); err != nil {
			return nil, err
		}
	}

	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string, deleterUserID string) error {
	if userID == deleterUserID {
		return fmt.Errorf("%w: cannot delete your own account", apperrors.ErrValidation)
	}
	return s.userRepo.DeleteUser(ctx, userID)
}
