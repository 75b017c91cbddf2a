package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/doctrackph/doctrack-backend/internal/apperrors"
	"github.com/doctrackph/doctrack-backend/internal/core/domain"
	portssvc "github.com/doctrackph/doctrack-backend/internal/core/ports/services"
	"github.com/doctrackph/doctrack-backend/internal/core/services"
	"github.com/doctrackph/doctrack-backend/internal/dto"
	"github.com/doctrackph/doctrack-backend/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		IDNumber:  "EMP-001",
		FirstName: "Maria",
		LastName:  "Santos",
		Email:     "maria.santos@example.gov.ph",
		Password:  "correct horse battery",
		Role:      string(domain.RoleStaff),
	}

	suite.mockRepo.On("CreateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID != "" &&
			u.IDNumber == "EMP-001" &&
			u.PasswordHash != "" &&
			u.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, u.PasswordHash) &&
			u.CreatedBy == "admin-1"
	})).Return(nil).Once()

	created, err := suite.service.RegisterUser(ctx, req, "admin-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.UserID)
	suite.Equal(domain.RoleStaff, created.Role)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateIDNumber() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		IDNumber:  "EMP-001",
		FirstName: "Maria",
		LastName:  "Santos",
		Email:     "maria.santos@example.gov.ph",
		Password:  "correct horse battery",
		Role:      string(domain.RoleStaff),
	}

	suite.mockRepo.On("CreateUser", ctx, mock.AnythingOfType("domain.User")).
		Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.RegisterUser(ctx, req, "admin-1")

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)

	suite.mockRepo.On("FindUserByIDNumber", ctx, "EMP-001").
		Return(&domain.User{UserID: "u-1", IDNumber: "EMP-001", PasswordHash: hash}, nil).Once()

	user, err := suite.service.Authenticate(ctx, "EMP-001", "s3cret-pass")

	suite.Require().NoError(err)
	suite.Equal("u-1", user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)

	suite.mockRepo.On("FindUserByIDNumber", ctx, "EMP-001").
		Return(&domain.User{UserID: "u-1", PasswordHash: hash}, nil).Once()

	_, err = suite.service.Authenticate(ctx, "EMP-001", "wrong")

	suite.ErrorIs(err, services.ErrInvalidCredentials)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownIDNumber() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByIDNumber", ctx, "EMP-404").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Authenticate(ctx, "EMP-404", "whatever")

	// An unknown ID number reads the same as a wrong password.
	suite.ErrorIs(err, services.ErrInvalidCredentials)
}

func (suite *UserServiceTestSuite) TestUpdateUser_PasswordOnlyRehashedWhenSupplied() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u-1", IDNumber: "EMP-001", PasswordHash: "old-hash"}

	suite.mockRepo.On("FindUserByID", ctx, "u-1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "new@example.gov.ph" && u.LastUpdatedBy == "admin-1"
	})).Return(nil).Once()

	req := dto.UpdateUserRequest{
		IDNumber:  "EMP-001",
		FirstName: "Maria",
		LastName:  "Santos",
		Email:     "new@example.gov.ph",
		Role:      string(domain.RoleStaff),
	}

	_, err := suite.service.UpdateUser(ctx, "u-1", req, "admin-1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdatePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateUser_WithPassword() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u-1", IDNumber: "EMP-001", PasswordHash: "old-hash"}

	suite.mockRepo.On("FindUserByID", ctx, "u-1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()
	suite.mockRepo.On("UpdatePassword", ctx, "u-1", mock.MatchedBy(func(hash string) bool {
		return utils.CheckPasswordHash("new-password-1", hash)
	}), "admin-1").Return(nil).Once()

	req := dto.UpdateUserRequest{
		IDNumber:  "EMP-001",
		FirstName: "Maria",
		LastName:  "Santos",
		Email:     "maria.santos@example.gov.ph",
		Role:      string(domain.RoleStaff),
		Password:  "new-password-1",
	}

	_, err := suite.service.UpdateUser(ctx, "u-1", req, "admin-1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_SelfDeleteRejected() {
	ctx := context.Background()

	err := suite.service.DeleteUser(ctx, "u-1", "u-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteUser", ctx, "u-2").Return(nil).Once()

	err := suite.service.DeleteUser(ctx, "u-2", "u-1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
