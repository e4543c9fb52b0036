package mapping

import (
	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
	"github.com/SscSPs/municipal_approval_app/internal/models"
)

// ToDomainEmailToken converts a model EmailToken to a domain EmailToken
func ToDomainEmailToken(m models.EmailToken) domain.EmailToken {
	return domain.EmailToken{
		ID:                m.ID,
		Hash:              m.Hash,
		Purpose:           domain.TokenPurpose(m.Purpose),
		Active:            m.Active,
		ApprovalRequestID: m.ApprovalRequestID,
		MunicipalityID:    m.MunicipalityID,
		CreatedAt:         m.CreatedAt,
	}
}
