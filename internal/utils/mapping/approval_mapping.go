package mapping

import (
	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
	"github.com/SscSPs/municipal_approval_app/internal/models"
)

// ToDomainApprovalRequest converts a model ApprovalRequest to a domain ApprovalRequest
func ToDomainApprovalRequest(m models.ApprovalRequest) domain.ApprovalRequest {
	return domain.ApprovalRequest{
		ID:             m.ID,
		MunicipalityID: m.MunicipalityID,
		Status:         domain.ApprovalStatus(m.Status),
		RequestedAt:    m.RequestedAt,
		DecidedAt:      m.DecidedAt,
		Justification:  m.Justification,
		Version:        m.Version,
	}
}

// ToDomainApprovalRequestSlice converts a slice of model ApprovalRequests
func ToDomainApprovalRequestSlice(ms []models.ApprovalRequest) []domain.ApprovalRequest {
	ds := make([]domain.ApprovalRequest, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainApprovalRequest(m)
	}
	return ds
}

// ToDomainApprovalFilterRows converts filter projections; a missing city maps to empty strings.
func ToDomainApprovalFilterRows(ms []models.ApprovalFilterRow) []domain.ApprovalFilterRow {
	ds := make([]domain.ApprovalFilterRow, len(ms))
	for i, m := range ms {
		ds[i] = domain.ApprovalFilterRow{
			RequestID:      m.RequestID,
			Status:         domain.ApprovalStatus(m.Status),
			RequestedAt:    m.RequestedAt,
			DecidedAt:      m.DecidedAt,
			Justification:  m.Justification,
			MunicipalityID: m.MunicipalityID,
			MayorName:      m.MayorName,
			CityName:       deref(m.CityName),
			StateCode:      deref(m.StateCode),
			TermStart:      m.TermStart,
			TermEnd:        m.TermEnd,
		}
	}
	return ds
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
