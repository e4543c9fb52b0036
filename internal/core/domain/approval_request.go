package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/municipal_approval_app/internal/apperrors"
)

// ApprovalStatus is the lifecycle state of an ApprovalRequest.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "Pending"
	StatusApproved ApprovalStatus = "Approved"
	StatusRejected ApprovalStatus = "Rejected"
)

// ParseApprovalStatus accepts any casing of a known status name.
func ParseApprovalStatus(raw string) (ApprovalStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return StatusPending, nil
	case "approved":
		return StatusApproved, nil
	case "rejected":
		return StatusRejected, nil
	}
	return "", fmt.Errorf("unknown approval status %q", raw)
}

// IsTerminal reports whether no further transition is allowed from s.
func (s ApprovalStatus) IsTerminal() bool {
	switch s {
	case StatusApproved, StatusRejected:
		return true
	case StatusPending:
		return false
	}
	return false
}

func (s ApprovalStatus) String() string { return string(s) }

// ApprovalRequest tracks one municipality's registration review.
type ApprovalRequest struct {
	ID             int64          `json:"id"`
	MunicipalityID int64          `json:"municipalityId"`
	Status         ApprovalStatus `json:"status"`
	RequestedAt    time.Time      `json:"requestedAt"`
	DecidedAt      *time.Time     `json:"decidedAt,omitempty"`
	Justification  *string        `json:"justification,omitempty"`
	Version        int64          `json:"version"`
}

// NewApprovalRequest returns a pending request for the municipality.
func NewApprovalRequest(municipalityID int64, now time.Time) ApprovalRequest {
	return ApprovalRequest{
		MunicipalityID: municipalityID,
		Status:         StatusPending,
		RequestedAt:    now,
		Version:        1,
	}
}

// Approve moves a pending request to Approved.
func (r *ApprovalRequest) Approve(now time.Time) error {
	if r.Status.IsTerminal() {
		return apperrors.NewInvalidStateError(strings.ToLower(r.Status.String()), "approve")
	}
	r.Status = StatusApproved
	r.DecidedAt = &now
	r.Justification = nil
	return nil
}

// Reject moves a pending request to Rejected. An empty justification is kept as such.
func (r *ApprovalRequest) Reject(justification string, now time.Time) error {
	if r.Status.IsTerminal() {
		return apperrors.NewInvalidStateError(strings.ToLower(r.Status.String()), "reject")
	}
	r.Status = StatusRejected
	r.DecidedAt = &now
	r.Justification = &justification
	return nil
}

// Validate checks the decision fields against the status.
func (r ApprovalRequest) Validate() error {
	switch r.Status {
	case StatusPending:
		if r.DecidedAt != nil || r.Justification != nil {
			return fmt.Errorf("%w: pending request carries a decision", apperrors.ErrValidation)
		}
	case StatusApproved:
		if r.DecidedAt == nil || r.Justification != nil {
			return fmt.Errorf("%w: approved request must have decidedAt and no justification", apperrors.ErrValidation)
		}
	case StatusRejected:
		if r.DecidedAt == nil || r.Justification == nil {
			return fmt.Errorf("%w: rejected request must have decidedAt and justification", apperrors.ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, r.Status)
	}
	return nil
}
