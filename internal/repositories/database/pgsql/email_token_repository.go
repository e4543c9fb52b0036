package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/municipal_approval_app/internal/apperrors"
	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
	portsrepo "github.com/SscSPs/municipal_approval_app/internal/core/ports/repositories"
	"github.com/SscSPs/municipal_approval_app/internal/models"
	"github.com/SscSPs/municipal_approval_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxEmailTokenRepository struct {
	BaseRepository
}

func newPgxEmailTokenRepository(pool Conn) *PgxEmailTokenRepository {
	return &PgxEmailTokenRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.EmailTokenRepositoryFacade = (*PgxEmailTokenRepository)(nil)

func (r *PgxEmailTokenRepository) SaveEmailToken(ctx context.Context, token *domain.EmailToken) error {
	query := `
		INSERT INTO email_tokens (hash, purpose, active, approval_request_id, municipality_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	err := r.db(ctx).QueryRow(ctx, query,
		token.Hash,
		string(token.Purpose),
		token.Active,
		token.ApprovalRequestID,
		token.MunicipalityID,
		token.CreatedAt,
	).Scan(&token.ID)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("email token for municipality %d", token.MunicipalityID))
	}
	return nil
}

func (r *PgxEmailTokenRepository) FindActiveEmailToken(ctx context.Context, municipalityID int64, purpose domain.TokenPurpose) (*domain.EmailToken, error) {
	query := `
		SELECT id, hash, purpose, active, approval_request_id, municipality_id, created_at
		FROM email_tokens
		WHERE municipality_id = $1 AND purpose = $2 AND active
		ORDER BY id DESC
		LIMIT 1;
	`
	rows, err := r.db(ctx).Query(ctx, query, municipalityID, string(purpose))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query email tokens", err)
	}
	token, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.EmailToken])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to collect email token", err)
	}
	t := mapping.ToDomainEmailToken(token)
	return &t, nil
}

func (r *PgxEmailTokenRepository) DeactivateEmailTokens(ctx context.Context, municipalityID int64, purpose domain.TokenPurpose) error {
	_, err := r.db(ctx).Exec(ctx,
		`UPDATE email_tokens SET active = false WHERE municipality_id = $1 AND purpose = $2 AND active;`,
		municipalityID, string(purpose))
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate email tokens", err)
	}
	return nil
}
