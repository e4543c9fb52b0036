package domain

import "time"

// TokenPurpose names the workflow an EmailToken authorizes.
type TokenPurpose string

const (
	PurposeMunicipalityApproval TokenPurpose = "MUNICIPALITY_APPROVAL"
)

// EmailToken is a single-use capability embedded in a follow-up link.
type EmailToken struct {
	ID                int64        `json:"id"`
	Hash              string       `json:"-"`
	Purpose           TokenPurpose `json:"purpose"`
	Active            bool         `json:"active"`
	ApprovalRequestID *int64       `json:"approvalRequestId,omitempty"`
	MunicipalityID    int64        `json:"municipalityId"`
	CreatedAt         time.Time    `json:"createdAt"`
}
