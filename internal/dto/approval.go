package dto

import (
	"time"

	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
)

// CreateApprovalRequest opens a new approval request for a municipality.
type CreateApprovalRequest struct {
	MunicipalityID int64 `json:"municipalityId" binding:"required,gt=0"`
}

// ApproveRequest carries the mandate dates recorded on approval, as yyyy-MM-dd.
type ApproveRequest struct {
	TermStart string `json:"termStart" binding:"required,datetime=2006-01-02"`
	TermEnd   string `json:"termEnd" binding:"required,datetime=2006-01-02"`
}

// MunicipalityEditsRequest holds coordinator corrections; blank fields keep the stored value.
type MunicipalityEditsRequest struct {
	MayorName string `json:"mayorName"`
	Office    string `json:"office" binding:"omitempty,oneof=Prefeito Prefeita"`
	Emails    string `json:"emails" binding:"omitempty,emaillist"`
	Phone     string `json:"phone"`
}

// ToDomain converts the request to domain edits.
func (r MunicipalityEditsRequest) ToDomain() domain.MunicipalityEdits {
	return domain.MunicipalityEdits{
		MayorName: r.MayorName,
		Office:    domain.Office(r.Office),
		Emails:    r.Emails,
		Phone:     r.Phone,
	}
}

// ApproveWithEditsRequest approves after applying edits to the municipality.
type ApproveWithEditsRequest struct {
	Municipality MunicipalityEditsRequest `json:"municipality"`
	TermStart    string                   `json:"termStart" binding:"required,datetime=2006-01-02"`
	TermEnd      string                   `json:"termEnd" binding:"required,datetime=2006-01-02"`
}

// RejectRequest carries the reason shown to the mayor.
type RejectRequest struct {
	Justification string `json:"justification"`
}

// ApprovalResponse defines the data returned for an approval request.
type ApprovalResponse struct {
	ID             int64                 `json:"id"`
	MunicipalityID int64                 `json:"municipalityId"`
	Status         domain.ApprovalStatus `json:"status"`
	RequestedAt    time.Time             `json:"requestedAt"`
	DecidedAt      *time.Time            `json:"decidedAt,omitempty"`
	Justification  *string               `json:"justification,omitempty"`
	Version        int64                 `json:"version"`
}

// ToApprovalResponse converts a domain.ApprovalRequest to ApprovalResponse DTO
func ToApprovalResponse(r *domain.ApprovalRequest) ApprovalResponse {
	return ApprovalResponse{
		ID:             r.ID,
		MunicipalityID: r.MunicipalityID,
		Status:         r.Status,
		RequestedAt:    r.RequestedAt,
		DecidedAt:      r.DecidedAt,
		Justification:  r.Justification,
		Version:        r.Version,
	}
}

// ToListApprovalResponse converts a slice of domain.ApprovalRequest to DTOs
func ToListApprovalResponse(list []domain.ApprovalRequest) []ApprovalResponse {
	res := make([]ApprovalResponse, len(list))
	for i := range list {
		res[i] = ToApprovalResponse(&list[i])
	}
	return res
}

// ResendEmailRequest replaces the recipient list before re-sending the approval email.
type ResendEmailRequest struct {
	Emails string `json:"emails" binding:"required,emaillist"`
}

// ResendEmailResponse reports whether the email went out.
type ResendEmailResponse struct {
	Sent bool `json:"sent"`
}
