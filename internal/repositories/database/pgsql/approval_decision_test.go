package pgsql

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/municipal_approval_app/internal/apperrors"
	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/suite"
)

var approvalColumns = []string{"id", "municipality_id", "status", "requested_at", "decided_at", "justification", "version"}

type ApprovalDecisionTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo *PgxApprovalRepository
	ctx  context.Context
}

func (suite *ApprovalDecisionTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	suite.Require().NoError(err)
	suite.mock = mock
	suite.repo = newPgxApprovalRepository(mock)
	suite.ctx = context.Background()
}

func (suite *ApprovalDecisionTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func (suite *ApprovalDecisionTestSuite) approvedRequest() *domain.ApprovalRequest {
	decided := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	return &domain.ApprovalRequest{
		ID:             7,
		MunicipalityID: 3,
		Status:         domain.StatusApproved,
		RequestedAt:    time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		DecidedAt:      &decided,
		Version:        1,
	}
}

func (suite *ApprovalDecisionTestSuite) TestUpdate_IncrementsVersion() {
	request := suite.approvedRequest()
	suite.mock.ExpectExec(`UPDATE approval_requests`).
		WithArgs("Approved", pgxmock.AnyArg(), pgxmock.AnyArg(), int64(7), int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	suite.Require().NoError(suite.repo.UpdateApprovalDecision(suite.ctx, request))
	suite.Equal(int64(2), request.Version)
}

func (suite *ApprovalDecisionTestSuite) TestUpdate_StaleVersionIsRetryableConflict() {
	request := suite.approvedRequest()
	suite.mock.ExpectExec(`UPDATE approval_requests`).
		WithArgs("Approved", pgxmock.AnyArg(), pgxmock.AnyArg(), int64(7), int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	decided := time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)
	justification := "late"
	suite.mock.ExpectQuery(`FROM approval_requests r`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows(approvalColumns).
			AddRow(int64(7), int64(3), "Rejected", request.RequestedAt, &decided, &justification, int64(2)))

	err := suite.repo.UpdateApprovalDecision(suite.ctx, request)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.NotErrorIs(err, apperrors.ErrInvalidState)
	suite.Equal(int64(1), request.Version)
}

func (suite *ApprovalDecisionTestSuite) TestUpdate_MissingRowIsNotFound() {
	request := suite.approvedRequest()
	suite.mock.ExpectExec(`UPDATE approval_requests`).
		WithArgs("Approved", pgxmock.AnyArg(), pgxmock.AnyArg(), int64(7), int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	suite.mock.ExpectQuery(`FROM approval_requests r`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows(approvalColumns))

	err := suite.repo.UpdateApprovalDecision(suite.ctx, request)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.NotErrorIs(err, apperrors.ErrConflict)
}

func TestApprovalDecisionTestSuite(t *testing.T) {
	suite.Run(t, new(ApprovalDecisionTestSuite))
}
