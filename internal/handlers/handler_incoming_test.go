package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/doctrackph/doctrack-backend/internal/apperrors"
	"github.com/doctrackph/doctrack-backend/internal/core/domain"
	portssvc "github.com/doctrackph/doctrack-backend/internal/core/ports/services"
	"github.com/doctrackph/doctrack-backend/internal/dto"
	"github.com/doctrackph/doctrack-backend/internal/handlers"
	"github.com/doctrackph/doctrack-backend/internal/platform/config"
	"github.com/doctrackph/doctrack-backend/internal/utils"
)

// --- Mock DocumentService ---
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) CreateIncoming(ctx context.Context, req dto.CreateIncomingRequest, actorUserID string) (*domain.Document, error) {
	args := m.Called(ctx, req, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}
func (m *MockDocumentService) ListIncoming(ctx context.Context) ([]domain.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}
func (m *MockDocumentService) UpdateIncoming(ctx context.Context, id int64, req dto.UpdateIncomingRequest, actorUserID string) (*domain.Document, error) {
	args := m.Called(ctx, id, req, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}
func (m *MockDocumentService) DeleteIncoming(ctx context.Context, id int64, actorUserID string) error {
	args := m.Called(ctx, id, actorUserID)
	return args.Error(0)
}
func (m *MockDocumentService) CreateOutgoing(ctx context.Context, req dto.CreateOutgoingRequest, actorUserID string) (*domain.Document, error) {
	args := m.Called(ctx, req, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}
func (m *MockDocumentService) ListOutgoing(ctx context.Context) ([]domain.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}
func (m *MockDocumentService) UpdateOutgoing(ctx context.Context, id int64, req dto.UpdateOutgoingRequest, actorUserID string) (*domain.Document, error) {
	args := m.Called(ctx, id, req, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}
func (m *MockDocumentService) DeleteOutgoing(ctx context.Context, id int64, actorUserID string) error {
	args := m.Called(ctx, id, actorUserID)
	return args.Error(0)
}
func (m *MockDocumentService) ListDocumentTypes(ctx context.Context) ([]domain.DocumentType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentType), args.Error(1)
}

var _ portssvc.DocumentSvcFacade = (*MockDocumentService)(nil)

// --- Mock AuditLogService ---
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogDocumentAction(ctx context.Context, action domain.LogAction, documentType, controlNo string, changes *domain.ChangeSet, actorUserID string) error {
	args := m.Called(ctx, action, documentType, controlNo, changes, actorUserID)
	return args.Error(0)
}
func (m *MockAuditService) LogAction(ctx context.Context, action, description string, actorUserID string) error {
	args := m.Called(ctx, action, description, actorUserID)
	return args.Error(0)
}
func (m *MockAuditService) ListLogs(ctx context.Context) ([]domain.LogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LogEntry), args.Error(1)
}

var _ portssvc.AuditLogSvcFacade = (*MockAuditService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest, creatorUserID string) (*domain.User, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) Authenticate(ctx context.Context, idNumber, password string) (*domain.User, error) {
	args := m.Called(ctx, idNumber, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) DeleteUser(ctx context.Context, userID string, deleterUserID string) error {
	args := m.Called(ctx, userID, deleterUserID)
	return args.Error(0)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) DashboardCounts(ctx context.Context) (*dto.DashboardCountsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DashboardCountsResponse), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Test Suite ---

type IncomingHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockDocumentService *MockDocumentService
	mockAuditService    *MockAuditService
	mockUserService     *MockUserService
	mockReporting       *MockReportingService
	cfg                 *config.Config
}

func (suite *IncomingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "doctrack-test",
	}

	suite.mockDocumentService = new(MockDocumentService)
	suite.mockAuditService = new(MockAuditService)
	suite.mockUserService = new(MockUserService)
	suite.mockReporting = new(MockReportingService)

	handlers.RegisterRoutes(suite.router, suite.cfg, &portssvc.ServiceContainer{
		Document:  suite.mockDocumentService,
		AuditLog:  suite.mockAuditService,
		User:      suite.mockUserService,
		Reporting: suite.mockReporting,
	})
}

func (suite *IncomingHandlerTestSuite) generateTestToken(userID string, role domain.Role) string {
	token, err := utils.GenerateJWT(userID, string(role), suite.cfg.JWTSecret, time.Hour, suite.cfg.JWTIssuer)
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *IncomingHandlerTestSuite) doRequest(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *IncomingHandlerTestSuite) TestListIncoming_Success() {
	userID := uuid.NewString()
	token := suite.generateTestToken(userID, domain.RoleStaff)

	docs := []domain.Document{
		{
			ID:           1,
			ControlNo:    "2024-05-001",
			DocumentType: domain.DocTypeDisbursementVoucher,
			TotalAmount:  decimal.RequireFromString("7.5"),
		},
	}
	suite.mockDocumentService.On("ListIncoming", mock.Anything).Return(docs, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/incoming", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListDocumentsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Documents, 1)
	suite.Equal("2024-05-001", resp.Documents[0].ControlNo)
	suite.mockDocumentService.AssertExpectations(suite.T())
}

func (suite *IncomingHandlerTestSuite) TestListIncoming_Unauthorized() {
	w := suite.doRequest(http.MethodGet, "/api/v1/incoming", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockDocumentService.AssertNotCalled(suite.T(), "ListIncoming", mock.Anything)
}

func (suite *IncomingHandlerTestSuite) TestCreateIncoming_Success() {
	userID := uuid.NewString()
	token := suite.generateTestToken(userID, domain.RoleStaff)

	body := dto.CreateIncomingRequest{
		DocumentType: domain.DocTypeDisbursementVoucher,
		Items:        []string{"Bond paper"},
	}

	suite.mockDocumentService.On("CreateIncoming", mock.Anything, mock.AnythingOfType("dto.CreateIncomingRequest"), userID).
		Return(&domain.Document{ID: 1, ControlNo: "2024-05-001", DocumentType: domain.DocTypeDisbursementVoucher}, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/incoming", token, body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.DocumentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2024-05-001", resp.ControlNo)
	suite.mockDocumentService.AssertExpectations(suite.T())
}

func (suite *IncomingHandlerTestSuite) TestCreateIncoming_MissingDocumentType() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleStaff)

	w := suite.doRequest(http.MethodPost, "/api/v1/incoming", token, map[string]any{
		"description": "no type",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDocumentService.AssertNotCalled(suite.T(), "CreateIncoming", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *IncomingHandlerTestSuite) TestCreateIncoming_ValidationErrorFromService() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleStaff)

	suite.mockDocumentService.On("CreateIncoming", mock.Anything, mock.AnythingOfType("dto.CreateIncomingRequest"), mock.Anything).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/incoming", token, dto.CreateIncomingRequest{
		DocumentType: "Memo",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *IncomingHandlerTestSuite) TestUpdateIncoming_NotFound() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleStaff)

	suite.mockDocumentService.On("UpdateIncoming", mock.Anything, int64(42), mock.AnythingOfType("dto.UpdateIncomingRequest"), mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodPut, "/api/v1/incoming/42", token, dto.UpdateIncomingRequest{
		DateOfAda:    "2024-05-10",
		DocumentType: domain.DocTypeOfficialReceipt,
		OrNo:         "OR-1",
		Items:        []string{"Bond paper"},
		Agency:       "Provincial Treasury",
		Status:       "Received",
	})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *IncomingHandlerTestSuite) TestDeleteIncoming_Success() {
	userID := uuid.NewString()
	token := suite.generateTestToken(userID, domain.RoleStaff)

	suite.mockDocumentService.On("DeleteIncoming", mock.Anything, int64(7), userID).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/incoming/7", token, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockDocumentService.AssertExpectations(suite.T())
}

func (suite *IncomingHandlerTestSuite) TestDeleteIncoming_InvalidID() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleStaff)

	w := suite.doRequest(http.MethodDelete, "/api/v1/incoming/not-a-number", token, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDocumentService.AssertNotCalled(suite.T(), "DeleteIncoming", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *IncomingHandlerTestSuite) TestUserRoutes_RequireAdminRole() {
	staffToken := suite.generateTestToken(uuid.NewString(), domain.RoleStaff)

	w := suite.doRequest(http.MethodGet, "/api/v1/users", staffToken, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	adminToken := suite.generateTestToken(uuid.NewString(), domain.RoleAdmin)
	suite.mockUserService.On("ListUsers", mock.Anything).Return([]domain.User{}, nil).Once()

	w = suite.doRequest(http.MethodGet, "/api/v1/users", adminToken, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.mockUserService.AssertExpectations(suite.T())
}

func TestIncomingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(IncomingHandlerTestSuite))
}
