package repositories

import (
	"context"

	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
)

// ApprovalReader defines read operations for approval requests
type ApprovalReader interface {
	// FindApprovalByID retrieves a request; apperrors.ErrNotFound if absent.
	FindApprovalByID(ctx context.Context, id int64) (*domain.ApprovalRequest, error)

	// FindLatestApprovalByMunicipalityAndStatus returns the most recently requested match; apperrors.ErrNotFound if none.
	FindLatestApprovalByMunicipalityAndStatus(ctx context.Context, municipalityID int64, status domain.ApprovalStatus) (*domain.ApprovalRequest, error)

	// ListApprovalsByRequestedAtDesc returns every request, newest first.
	ListApprovalsByRequestedAtDesc(ctx context.Context) ([]domain.ApprovalRequest, error)

	// ListPendingApprovalsByCity returns pending requests of municipalities in the city.
	ListPendingApprovalsByCity(ctx context.Context, cityID int64) ([]domain.ApprovalRequest, error)

	// FilterApprovals returns the rows matching every predicate of the query, in id order.
	FilterApprovals(ctx context.Context, query domain.ApprovalQuery) ([]domain.ApprovalFilterRow, error)
}

// ApprovalWriter defines write operations for approval requests
type ApprovalWriter interface {
	// SaveApproval inserts a new request and sets its ID.
	SaveApproval(ctx context.Context, request *domain.ApprovalRequest) error

	// UpdateApprovalDecision persists status, decidedAt and justification when the stored
	// version equals request.Version, then bumps request.Version.
	// Returns apperrors.ErrConflict when the version moved.
	UpdateApprovalDecision(ctx context.Context, request *domain.ApprovalRequest) error
}

// ApprovalRepositoryFacade combines all approval-related repository interfaces
type ApprovalRepositoryFacade interface {
	ApprovalReader
	ApprovalWriter
}
