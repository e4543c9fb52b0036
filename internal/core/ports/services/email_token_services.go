package services

import (
	"context"

	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
)

// EmailTokenSvcFacade issues single-use email tokens
type EmailTokenSvcFacade interface {
	// Issue builds an active token for the request without persisting it.
	Issue(purpose domain.TokenPurpose, request domain.ApprovalRequest, municipality domain.Municipality) domain.EmailToken

	// Save persists a token.
	Save(ctx context.Context, token *domain.EmailToken) error

	// RegenerateForInvite returns the active token for the municipality and purpose,
	// or a new persisted one when none exists or forceNew is set. Older tokens are deactivated.
	RegenerateForInvite(ctx context.Context, municipality domain.Municipality, request domain.ApprovalRequest, purpose domain.TokenPurpose, forceNew bool) (*domain.EmailToken, error)
}
