package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/SscSPs/municipal_approval_app/internal/apperrors"
	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
	portsrepo "github.com/SscSPs/municipal_approval_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/municipal_approval_app/internal/core/ports/services"
	"github.com/SscSPs/municipal_approval_app/internal/utils"
)

// emailTokenService implements the EmailTokenSvcFacade interface
type emailTokenService struct {
	BaseService
	repo portsrepo.EmailTokenRepositoryFacade
}

// NewEmailTokenService creates a new token issuer backed by repo
func NewEmailTokenService(repo portsrepo.EmailTokenRepositoryFacade) portssvc.EmailTokenSvcFacade {
	return &emailTokenService{repo: repo}
}

var _ portssvc.EmailTokenSvcFacade = (*emailTokenService)(nil)

// Issue derives the token hash from the request id, the mayor's name and the clock's nanoseconds.
func (s *emailTokenService) Issue(purpose domain.TokenPurpose, request domain.ApprovalRequest, m domain.Municipality) domain.EmailToken {
	now := s.Now()
	requestID := request.ID
	return domain.EmailToken{
		Hash:              utils.SHA256Hex(strconv.FormatInt(request.ID, 10), m.MayorName, strconv.Itoa(now.Nanosecond())),
		Purpose:           purpose,
		Active:            true,
		ApprovalRequestID: &requestID,
		MunicipalityID:    m.ID,
		CreatedAt:         now,
	}
}

// Save persists a token
func (s *emailTokenService) Save(ctx context.Context, token *domain.EmailToken) error {
	if err := s.repo.SaveEmailToken(ctx, token); err != nil {
		s.LogError(ctx, err, "Failed to save email token",
			slog.Int64("municipality_id", token.MunicipalityID),
			slog.String("purpose", string(token.Purpose)))
		return fmt.Errorf("saving email token: %w", err)
	}
	return nil
}

// RegenerateForInvite reuses an active token unless forceNew is set
func (s *emailTokenService) RegenerateForInvite(ctx context.Context, m domain.Municipality, request domain.ApprovalRequest, purpose domain.TokenPurpose, forceNew bool) (*domain.EmailToken, error) {
	if !forceNew {
		existing, err := s.repo.FindActiveEmailToken(ctx, m.ID, purpose)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("looking up active email token: %w", err)
		}
	}

	if err := s.repo.DeactivateEmailTokens(ctx, m.ID, purpose); err != nil {
		return nil, fmt.Errorf("deactivating email tokens: %w", err)
	}
	token := s.Issue(purpose, request, m)
	if err := s.Save(ctx, &token); err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Email token regenerated",
		slog.Int64("municipality_id", m.ID),
		slog.Bool("force_new", forceNew))
	return &token, nil
}
