package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/doctrackph/doctrack-backend/internal/apperrors"
	"github.com/doctrackph/doctrack-backend/internal/core/domain"
	"github.com/doctrackph/doctrack-backend/internal/core/services"
	portssvc "github.com/doctrackph/doctrack-backend/internal/core/ports/services"
)

// MockLogRepository is a mock type for the LogRepository interface
type MockLogRepository struct {
	mock.Mock
}

func (m *MockLogRepository) SaveLog(ctx context.Context, entry domain.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLogRepository) CountEntriesOnDate(ctx context.Context, date string) (int64, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLogRepository) FindLogs(ctx context.Context) ([]domain.LogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LogEntry), args.Error(1)
}

func (m *MockLogRepository) CountLogs(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock type for the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByIDNumber(ctx context.Context, idNumber string) (*domain.User, error) {
	args := m.Called(ctx, idNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string, updaterUserID string) error {
	args := m.Called(ctx, userID, passwordHash, updaterUserID)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- BuildLogDescription ---

func TestBuildLogDescription(t *testing.T) {
	changes := &domain.ChangeSet{
		Fields: map[string]domain.FieldChange{
			"status": {From: "Received", To: "Released"},
			"agency": {From: "(empty)", To: "Provincial Treasury"},
			"payee":  {From: "Juan dela Cruz", To: "Maria Santos"},
		},
	}

	tests := []struct {
		name         string
		action       domain.LogAction
		documentType string
		controlNo    string
		changes      *domain.ChangeSet
		want         string
	}{
		{
			name:         "create",
			action:       domain.ActionCreate,
			documentType: "Disbursement Voucher",
			controlNo:    "2024-05-001",
			want:         "Created Disbursement Voucher with Control No. 2024-05-001",
		},
		{
			name:         "create without control number",
			action:       domain.ActionCreate,
			documentType: "Disbursement Voucher",
			want:         "Created Disbursement Voucher",
		},
		{
			name:         "update reports fields in the fixed order",
			action:       domain.ActionUpdate,
			documentType: "Disbursement Voucher",
			controlNo:    "2024-05-001",
			changes:      changes,
			want:         "Updated Disbursement Voucher (2024-05-001): agency: (empty) → Provincial Treasury, status: Received → Released, payee: Juan dela Cruz → Maria Santos",
		},
		{
			name:         "update with particulars marker",
			action:       domain.ActionUpdate,
			documentType: "Official Receipt",
			controlNo:    "2024-06-014",
			changes: &domain.ChangeSet{
				Fields:             map[string]domain.FieldChange{"status": {From: "Received", To: "Released"}},
				ParticularsUpdated: true,
			},
			want: "Updated Official Receipt (2024-06-014): status: Received → Released [Particulars Updated]",
		},
		{
			name:         "update with no change set",
			action:       domain.ActionUpdate,
			documentType: "Official Receipt",
			controlNo:    "2024-06-014",
			want:         "Updated Official Receipt (2024-06-014)",
		},
		{
			name:         "delete",
			action:       domain.ActionDelete,
			documentType: "Purchase Order",
			controlNo:    "2024-05-003",
			want:         "Deleted Purchase Order (Control No. 2024-05-003)",
		},
		{
			name:         "unknown action renders generically",
			action:       domain.LogAction("EXPORT"),
			documentType: "Purchase Order",
			controlNo:    "2024-05-003",
			want:         "Performed action on Purchase Order (2024-05-003)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.BuildLogDescription(tt.action, tt.documentType, tt.controlNo, tt.changes)
			assert.Equal(t, tt.want, got)
		})
	}
}

// --- Test Suite Setup ---

type AuditLogServiceTestSuite struct {
	suite.Suite
	mockLogRepo  *MockLogRepository
	mockUserRepo *MockUserRepository
	service      portssvc.AuditLogSvcFacade
}

func (suite *AuditLogServiceTestSuite) SetupTest() {
	suite.mockLogRepo = new(MockLogRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewAuditLogService(suite.mockLogRepo, suite.mockUserRepo)
}

func (suite *AuditLogServiceTestSuite) TestLogDocumentAction_DerivesLogID() {
	ctx := context.Background()
	today := time.Now().UTC().Format("2006-01-02")

	suite.mockUserRepo.On("FindUserByID", ctx, "user-1").
		Return(&domain.User{FirstName: "Maria", LastName: "Santos"}, nil).Once()
	suite.mockLogRepo.On("CountEntriesOnDate", ctx, today).Return(int64(4), nil).Once()
	suite.mockLogRepo.On("SaveLog", ctx, mock.MatchedBy(func(e domain.LogEntry) bool {
		return e.LogID == fmt.Sprintf("LOG_005_%s", today) &&
			e.Action == "CREATE" &&
			e.Description == "Created Disbursement Voucher with Control No. 2024-05-001" &&
			e.User == "Maria Santos"
	})).Return(nil).Once()

	err := suite.service.LogDocumentAction(ctx, domain.ActionCreate, "Disbursement Voucher", "2024-05-001", nil, "user-1")

	suite.Require().NoError(err)
	suite.mockLogRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuditLogServiceTestSuite) TestLogDocumentAction_UnknownActorFallsBackToSystem() {
	ctx := context.Background()
	today := time.Now().UTC().Format("2006-01-02")

	suite.mockUserRepo.On("FindUserByID", ctx, "gone").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockLogRepo.On("CountEntriesOnDate", ctx, today).Return(int64(0), nil).Once()
	suite.mockLogRepo.On("SaveLog", ctx, mock.MatchedBy(func(e domain.LogEntry) bool {
		return e.LogID == fmt.Sprintf("LOG_001_%s", today) && e.User == "System"
	})).Return(nil).Once()

	err := suite.service.LogDocumentAction(ctx, domain.ActionDelete, "Purchase Order", "2024-05-003", nil, "gone")

	suite.Require().NoError(err)
	suite.mockLogRepo.AssertExpectations(suite.T())
}

func (suite *AuditLogServiceTestSuite) TestLogAction_NoActorSkipsLookup() {
	ctx := context.Background()
	today := time.Now().UTC().Format("2006-01-02")

	suite.mockLogRepo.On("CountEntriesOnDate", ctx, today).Return(int64(0), nil).Once()
	suite.mockLogRepo.On("SaveLog", ctx, mock.MatchedBy(func(e domain.LogEntry) bool {
		return e.Action == "EXPORT" && e.Description == "Exported the incoming ledger" && e.User == "System"
	})).Return(nil).Once()

	err := suite.service.LogAction(ctx, "EXPORT", "Exported the incoming ledger", "")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
	suite.mockLogRepo.AssertExpectations(suite.T())
}

func (suite *AuditLogServiceTestSuite) TestLogAction_CountFailurePropagates() {
	ctx := context.Background()
	today := time.Now().UTC().Format("2006-01-02")

	suite.mockLogRepo.On("CountEntriesOnDate", ctx, today).Return(int64(0), assert.AnError).Once()

	err := suite.service.LogAction(ctx, "EXPORT", "Exported the incoming ledger", "")

	suite.Require().Error(err)
	suite.mockLogRepo.AssertNotCalled(suite.T(), "SaveLog", mock.Anything, mock.Anything)
}

func TestAuditLogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditLogServiceTestSuite))
}
