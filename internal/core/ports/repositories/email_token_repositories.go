package repositories

import (
	"context"

	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
)

// EmailTokenRepositoryFacade defines persistence for email tokens
type EmailTokenRepositoryFacade interface {
	// SaveEmailToken inserts the token and sets its ID.
	SaveEmailToken(ctx context.Context, token *domain.EmailToken) error

	// FindActiveEmailToken returns the newest active token; apperrors.ErrNotFound if none.
	FindActiveEmailToken(ctx context.Context, municipalityID int64, purpose domain.TokenPurpose) (*domain.EmailToken, error)

	// DeactivateEmailTokens marks every active token of the municipality and purpose inactive.
	DeactivateEmailTokens(ctx context.Context, municipalityID int64, purpose domain.TokenPurpose) error
}
