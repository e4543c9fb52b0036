package pgsql

import (
	portsrepo "github.com/SscSPs/municipal_approval_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ApprovalRepo:     newPgxApprovalRepository(dbPool),
		MunicipalityRepo: newPgxMunicipalityRepository(dbPool),
		EmailTokenRepo:   newPgxEmailTokenRepository(dbPool),
		TxManager:        &BaseRepository{Pool: dbPool},
	}
}
