package services

import (
	"context"
	"time"

	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
)

// ApprovalReaderSvc defines read operations for approval requests
type ApprovalReaderSvc interface {
	// GetApprovalByID fails with apperrors.ErrNotFound and a user-facing message if absent.
	GetApprovalByID(ctx context.Context, id int64) (*domain.ApprovalRequest, error)

	// ListApprovals returns every request, newest first.
	ListApprovals(ctx context.Context) ([]domain.ApprovalRequest, error)

	// ListPendingApprovalsByCity scopes pending requests to one city.
	ListPendingApprovalsByCity(ctx context.Context, cityID int64) ([]domain.ApprovalRequest, error)

	// FilterApprovals fails with apperrors.ErrInvalidFilter on malformed criteria.
	FilterApprovals(ctx context.Context, criteria domain.ApprovalFilterCriteria) ([]domain.ApprovalFilterRow, error)
}

// ApprovalDecisionSvc defines the state transitions of an approval request
type ApprovalDecisionSvc interface {
	// CreateApproval opens a pending request for an existing municipality.
	CreateApproval(ctx context.Context, municipalityID int64) (*domain.ApprovalRequest, error)

	// Approve approves a pending request, updates term dates and issues an email token.
	Approve(ctx context.Context, id int64, termStart, termEnd time.Time) (*domain.ApprovalRequest, error)

	// ApproveWithEdits is Approve preceded by merging edits onto the stored municipality.
	ApproveWithEdits(ctx context.Context, id int64, edits domain.MunicipalityEdits, termStart, termEnd time.Time) (*domain.ApprovalRequest, error)

	// Reject rejects a pending request with the given justification.
	Reject(ctx context.Context, id int64, justification string) (*domain.ApprovalRequest, error)

	// ResendApprovalNotification re-sends the approval email with a fresh token.
	// It reports whether the email went out and never returns an error.
	ResendApprovalNotification(ctx context.Context, municipalityID int64, emails string) bool
}

// ApprovalSvcFacade combines all approval-related service interfaces
type ApprovalSvcFacade interface {
	ApprovalReaderSvc
	ApprovalDecisionSvc
}
