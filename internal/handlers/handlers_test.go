package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/municipal_approval_app/internal/apperrors"
	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
	portssvc "github.com/SscSPs/municipal_approval_app/internal/core/ports/services"
	"github.com/SscSPs/municipal_approval_app/internal/dto"
	"github.com/SscSPs/municipal_approval_app/internal/handlers"
	"github.com/SscSPs/municipal_approval_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ApprovalService ---
type MockApprovalService struct {
	mock.Mock
}

func (m *MockApprovalService) GetApprovalByID(ctx context.Context, id int64) (*domain.ApprovalRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovalRequest), args.Error(1)
}
func (m *MockApprovalService) ListApprovals(ctx context.Context) ([]domain.ApprovalRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApprovalRequest), args.Error(1)
}
func (m *MockApprovalService) ListPendingApprovalsByCity(ctx context.Context, cityID int64) ([]domain.ApprovalRequest, error) {
	args := m.Called(ctx, cityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApprovalRequest), args.Error(1)
}
func (m *MockApprovalService) FilterApprovals(ctx context.Context, criteria domain.ApprovalFilterCriteria) ([]domain.ApprovalFilterRow, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApprovalFilterRow), args.Error(1)
}
func (m *MockApprovalService) CreateApproval(ctx context.Context, municipalityID int64) (*domain.ApprovalRequest, error) {
	args := m.Called(ctx, municipalityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovalRequest), args.Error(1)
}
func (m *MockApprovalService) Approve(ctx context.Context, id int64, termStart, termEnd time.Time) (*domain.ApprovalRequest, error) {
	args := m.Called(ctx, id, termStart, termEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovalRequest), args.Error(1)
}
func (m *MockApprovalService) ApproveWithEdits(ctx context.Context, id int64, edits domain.MunicipalityEdits, termStart, termEnd time.Time) (*domain.ApprovalRequest, error) {
	args := m.Called(ctx, id, edits, termStart, termEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovalRequest), args.Error(1)
}
func (m *MockApprovalService) Reject(ctx context.Context, id int64, justification string) (*domain.ApprovalRequest, error) {
	args := m.Called(ctx, id, justification)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovalRequest), args.Error(1)
}
func (m *MockApprovalService) ResendApprovalNotification(ctx context.Context, municipalityID int64, emails string) bool {
	args := m.Called(ctx, municipalityID, emails)
	return args.Bool(0)
}

var _ portssvc.ApprovalSvcFacade = (*MockApprovalService)(nil)

// --- Mock MunicipalityService ---
type MockMunicipalityService struct {
	mock.Mock
}

func (m *MockMunicipalityService) FindMunicipalityByID(ctx context.Context, id int64) (*domain.Municipality, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Municipality), args.Error(1)
}
func (m *MockMunicipalityService) ListMunicipalities(ctx context.Context) ([]domain.Municipality, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Municipality), args.Error(1)
}
func (m *MockMunicipalityService) RegisterCity(ctx context.Context, city domain.City) (*domain.City, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}
func (m *MockMunicipalityService) RegisterMunicipality(ctx context.Context, municipality domain.Municipality) (*domain.Municipality, error) {
	args := m.Called(ctx, municipality)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Municipality), args.Error(1)
}
func (m *MockMunicipalityService) UpdateTermDates(ctx context.Context, municipality *domain.Municipality, start, end time.Time) error {
	return m.Called(ctx, municipality, start, end).Error(0)
}
func (m *MockMunicipalityService) UpdateEmails(ctx context.Context, municipalityID int64, emails string) error {
	return m.Called(ctx, municipalityID, emails).Error(0)
}

var _ portssvc.MunicipalitySvcFacade = (*MockMunicipalityService)(nil)

// --- Test Suite ---
type HandlersTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockApproval     *MockApprovalService
	mockMunicipality *MockMunicipalityService
}

func (suite *HandlersTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterValidations())
}

func (suite *HandlersTestSuite) SetupTest() {
	suite.router = gin.New()
	suite.mockApproval = new(MockApprovalService)
	suite.mockMunicipality = new(MockMunicipalityService)
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, &portssvc.ServiceContainer{
		Approval:     suite.mockApproval,
		Municipality: suite.mockMunicipality,
	})
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.mockApproval.AssertExpectations(suite.T())
	suite.mockMunicipality.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// --- Test Cases ---

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestCreateApproval_Success() {
	created := &domain.ApprovalRequest{ID: 7, MunicipalityID: 3, Status: domain.StatusPending, RequestedAt: date(2024, 5, 1), Version: 1}
	suite.mockApproval.On("CreateApproval", mock.Anything, int64(3)).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/approvals", gin.H{"municipalityId": 3})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ApprovalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(7), resp.ID)
	suite.Equal(domain.StatusPending, resp.Status)
}

func (suite *HandlersTestSuite) TestCreateApproval_MissingMunicipality() {
	w := suite.do(http.MethodPost, "/api/v1/approvals", gin.H{})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestGetApproval_NotFound() {
	suite.mockApproval.On("GetApprovalByID", mock.Anything, int64(99)).
		Return(nil, apperrors.NewNotFoundError("approval request 99 not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/approvals/99", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("approval request 99 not found", suite.decode(w)["error"])
}

func (suite *HandlersTestSuite) TestGetApproval_InvalidID() {
	w := suite.do(http.MethodGet, "/api/v1/approvals/abc", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestApprove_Success() {
	decided := date(2024, 5, 2)
	approved := &domain.ApprovalRequest{ID: 5, MunicipalityID: 3, Status: domain.StatusApproved, DecidedAt: &decided, Version: 2}
	suite.mockApproval.On("Approve", mock.Anything, int64(5), date(2025, 1, 1), date(2028, 12, 31)).Return(approved, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/approvals/5/approve", gin.H{"termStart": "2025-01-01", "termEnd": "2028-12-31"})

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Approved", suite.decode(w)["status"])
}

func (suite *HandlersTestSuite) TestApprove_MalformedDate() {
	w := suite.do(http.MethodPost, "/api/v1/approvals/5/approve", gin.H{"termStart": "01/01/2025", "termEnd": "2028-12-31"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestApprove_TerminalIsConflict() {
	suite.mockApproval.On("Approve", mock.Anything, int64(5), mock.Anything, mock.Anything).
		Return(nil, apperrors.NewInvalidStateError("Rejected", "approve")).Once()

	w := suite.do(http.MethodPost, "/api/v1/approvals/5/approve", gin.H{"termStart": "2025-01-01", "termEnd": "2028-12-31"})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal(false, suite.decode(w)["retryable"])
}

func (suite *HandlersTestSuite) TestApprove_ConcurrentModificationIsRetryable() {
	suite.mockApproval.On("Approve", mock.Anything, int64(5), mock.Anything, mock.Anything).
		Return(nil, apperrors.NewConflictError("approval request was modified concurrently")).Once()

	w := suite.do(http.MethodPost, "/api/v1/approvals/5/approve", gin.H{"termStart": "2025-01-01", "termEnd": "2028-12-31"})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal(true, suite.decode(w)["retryable"])
}

func (suite *HandlersTestSuite) TestApproveWithEdits_PassesEdits() {
	approved := &domain.ApprovalRequest{ID: 5, Status: domain.StatusApproved, Version: 2}
	edits := domain.MunicipalityEdits{MayorName: "Ana Souza", Office: domain.OfficeMayorFeminine}
	suite.mockApproval.On("ApproveWithEdits", mock.Anything, int64(5), mock.MatchedBy(func(e domain.MunicipalityEdits) bool {
		return e.MayorName == edits.MayorName && e.Office == edits.Office
	}), date(2025, 1, 1), date(2028, 12, 31)).Return(approved, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/approvals/5/approve-with-edits", gin.H{
		"municipality": gin.H{"mayorName": "Ana Souza", "office": "Prefeita"},
		"termStart":    "2025-01-01",
		"termEnd":      "2028-12-31",
	})

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestApproveWithEdits_InvalidEmails() {
	w := suite.do(http.MethodPost, "/api/v1/approvals/5/approve-with-edits", gin.H{
		"municipality": gin.H{"emails": "not-an-email"},
		"termStart":    "2025-01-01",
		"termEnd":      "2028-12-31",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestReject_Success() {
	justification := "budget concerns"
	rejected := &domain.ApprovalRequest{ID: 5, Status: domain.StatusRejected, Justification: &justification, Version: 2}
	suite.mockApproval.On("Reject", mock.Anything, int64(5), "budget concerns").Return(rejected, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/approvals/5/reject", gin.H{"justification": "budget concerns"})

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("budget concerns", suite.decode(w)["justification"])
}

func (suite *HandlersTestSuite) TestListApprovals() {
	suite.mockApproval.On("ListApprovals", mock.Anything).Return([]domain.ApprovalRequest{{ID: 2}, {ID: 1}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/approvals", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.ApprovalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Equal(int64(2), resp[0].ID)
}

func (suite *HandlersTestSuite) TestFilterApprovals_BindsQuery() {
	criteria := domain.ApprovalFilterCriteria{SubjectNameContains: "rio", Status: "Pending"}
	suite.mockApproval.On("FilterApprovals", mock.Anything, criteria).
		Return([]domain.ApprovalFilterRow{{RequestID: 1, CityName: "Rio de Janeiro"}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/approvals/filter?subjectNameContains=rio&status=Pending", nil)

	suite.Equal(http.StatusOK, w.Code)
	var rows []domain.ApprovalFilterRow
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &rows))
	suite.Require().Len(rows, 1)
	suite.Equal("Rio de Janeiro", rows[0].CityName)
}

func (suite *HandlersTestSuite) TestFilterApprovals_InvalidFilter() {
	suite.mockApproval.On("FilterApprovals", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewInvalidFilterError("requestedOnExactDate", "yesterday")).Once()

	w := suite.do(http.MethodGet, "/api/v1/approvals/filter?requestedOnExactDate=yesterday", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestListPendingByCity() {
	suite.mockApproval.On("ListPendingApprovalsByCity", mock.Anything, int64(4)).Return([]domain.ApprovalRequest{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/cities/4/approvals/pending", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq("[]", w.Body.String())
}

func (suite *HandlersTestSuite) TestResendApprovalEmail() {
	suite.mockApproval.On("ResendApprovalNotification", mock.Anything, int64(3), "a@x.gov.br;b@x.gov.br").Return(false).Once()

	w := suite.do(http.MethodPost, "/api/v1/municipalities/3/approval-email", gin.H{"emails": "a@x.gov.br;b@x.gov.br"})

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(false, suite.decode(w)["sent"])
}

func (suite *HandlersTestSuite) TestUnexpectedErrorHidesDetails() {
	suite.mockApproval.On("ListApprovals", mock.Anything).Return(nil, context.DeadlineExceeded).Once()

	w := suite.do(http.MethodGet, "/api/v1/approvals", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to list approval requests", suite.decode(w)["error"])
}

func (suite *HandlersTestSuite) TestCreateCity() {
	suite.mockMunicipality.On("RegisterCity", mock.Anything, domain.City{Name: "Niterói", StateName: "Rio de Janeiro", StateCode: "RJ"}).
		Return(&domain.City{ID: 1, Name: "Niterói", StateName: "Rio de Janeiro", StateCode: "RJ"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/cities", gin.H{"name": "Niterói", "stateName": "Rio de Janeiro", "stateCode": "RJ"})

	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal(float64(1), suite.decode(w)["id"])
}

func (suite *HandlersTestSuite) TestCreateMunicipality_UnknownCity() {
	suite.mockMunicipality.On("RegisterMunicipality", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewNotFoundError("city 9 not found")).Once()

	w := suite.do(http.MethodPost, "/api/v1/municipalities", gin.H{"cityId": 9, "mayorName": "José Lima", "emails": "gabinete@x.gov.br"})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestGetMunicipality() {
	start, end := date(2025, 1, 1), date(2028, 12, 31)
	suite.mockMunicipality.On("FindMunicipalityByID", mock.Anything, int64(3)).Return(&domain.Municipality{
		ID: 3, CityID: 1, MayorName: "José Lima", Office: domain.OfficeMayor, TermStart: &start, TermEnd: &end,
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/municipalities/3", nil)

	suite.Equal(http.StatusOK, w.Code)
	body := suite.decode(w)
	suite.Equal("2025-01-01", body["termStart"])
	suite.Equal("2028-12-31", body["termEnd"])
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
