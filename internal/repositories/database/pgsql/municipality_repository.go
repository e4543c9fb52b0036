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

type PgxMunicipalityRepository struct {
	BaseRepository
}

func newPgxMunicipalityRepository(pool Conn) *PgxMunicipalityRepository {
	return &PgxMunicipalityRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MunicipalityRepositoryFacade = (*PgxMunicipalityRepository)(nil)

const municipalitySelectQuery = `
SELECT
	m.id, m.city_id, m.political_party, m.mayor_name, m.office, m.emails, m.phone,
	m.term_start, m.term_end, m.created_at, m.updated_at,
	c.name AS city_name, c.state_name AS city_state_name, c.state_code AS city_state_code
FROM municipalities m
JOIN cities c ON c.id = m.city_id
`

func (r *PgxMunicipalityRepository) getMunicipalities(ctx context.Context, filterQuery string, args ...any) ([]domain.Municipality, error) {
	rows, err := r.db(ctx).Query(ctx, municipalitySelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query municipalities", err)
	}
	defer rows.Close()
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Municipality])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect municipality rows", err)
	}
	return mapping.ToDomainMunicipalitySlice(list), nil
}

func (r *PgxMunicipalityRepository) FindMunicipalityByID(ctx context.Context, id int64) (*domain.Municipality, error) {
	list, err := r.getMunicipalities(ctx, `WHERE m.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &list[0], nil
}

func (r *PgxMunicipalityRepository) ListMunicipalities(ctx context.Context) ([]domain.Municipality, error) {
	return r.getMunicipalities(ctx, `ORDER BY m.id`)
}

func (r *PgxMunicipalityRepository) FindCityByID(ctx context.Context, id int64) (*domain.City, error) {
	rows, err := r.db(ctx).Query(ctx, `SELECT id, name, state_name, state_code FROM cities WHERE id = $1`, id)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query cities", err)
	}
	city, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.City])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find city %d", id), err)
	}
	c := mapping.ToDomainCity(city)
	return &c, nil
}

func (r *PgxMunicipalityRepository) SaveCity(ctx context.Context, city *domain.City) error {
	err := r.db(ctx).QueryRow(ctx,
		`INSERT INTO cities (name, state_name, state_code) VALUES ($1, $2, $3) RETURNING id;`,
		city.Name, city.StateName, city.StateCode,
	).Scan(&city.ID)
	if err != nil {
		return mapWriteError(err, "city "+city.Name)
	}
	return nil
}

func (r *PgxMunicipalityRepository) SaveMunicipality(ctx context.Context, m *domain.Municipality) error {
	query := `
		INSERT INTO municipalities (
			city_id, political_party, mayor_name, office, emails, phone,
			term_start, term_end, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id;
	`
	err := r.db(ctx).QueryRow(ctx, query,
		m.CityID,
		m.PoliticalParty,
		m.MayorName,
		string(m.Office),
		m.Emails,
		m.Phone,
		m.TermStart,
		m.TermEnd,
		m.CreatedAt,
		m.UpdatedAt,
	).Scan(&m.ID)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("municipality for city %d", m.CityID))
	}
	return nil
}

func (r *PgxMunicipalityRepository) UpdateMunicipality(ctx context.Context, m domain.Municipality) error {
	query := `
		UPDATE municipalities
		SET mayor_name = $1, office = $2, emails = $3, phone = $4,
			term_start = $5, term_end = $6, updated_at = $7
		WHERE id = $8;
	`
	result, err := r.db(ctx).Exec(ctx, query,
		m.MayorName,
		string(m.Office),
		m.Emails,
		m.Phone,
		m.TermStart,
		m.TermEnd,
		m.UpdatedAt,
		m.ID,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("municipality %d", m.ID))
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMunicipalityRepository) UpdateMunicipalityEmails(ctx context.Context, id int64, emails string) error {
	result, err := r.db(ctx).Exec(ctx,
		`UPDATE municipalities SET emails = $1, updated_at = NOW() WHERE id = $2;`, emails, id)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("municipality %d emails", id))
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
