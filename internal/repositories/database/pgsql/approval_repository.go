package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/municipal_approval_app/internal/apperrors"
	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
	portsrepo "github.com/SscSPs/municipal_approval_app/internal/core/ports/repositories"
	"github.com/SscSPs/municipal_approval_app/internal/models"
	"github.com/SscSPs/municipal_approval_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxApprovalRepository struct {
	BaseRepository
}

func newPgxApprovalRepository(pool Conn) *PgxApprovalRepository {
	return &PgxApprovalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ApprovalRepositoryFacade = (*PgxApprovalRepository)(nil)

const approvalSelectQuery = `
SELECT r.id, r.municipality_id, r.status, r.requested_at, r.decided_at, r.justification, r.version
FROM approval_requests r
`

const approvalFilterSelectQuery = `
SELECT
	r.id AS request_id, r.status, r.requested_at, r.decided_at, r.justification,
	r.municipality_id, m.mayor_name, c.name AS city_name, c.state_code AS state_code,
	m.term_start, m.term_end
FROM approval_requests r
JOIN municipalities m ON m.id = r.municipality_id
LEFT JOIN cities c ON c.id = m.city_id
WHERE 1=1`

// filterColumns maps each filter field to the expression it constrains.
var filterColumns = map[domain.FilterField]string{
	domain.FilterSubjectNameContains:  "lower(c.name)",
	domain.FilterStatus:               "r.status",
	domain.FilterTermStartOnOrAfter:   "m.term_start",
	domain.FilterTermEndOnOrBefore:    "m.term_end",
	domain.FilterRequestedOnExactDate: "(r.requested_at AT TIME ZONE 'UTC')::date",
}

// buildFilterQuery renders query as SQL with positional arguments, one AND clause per predicate.
func buildFilterQuery(query domain.ApprovalQuery) (string, []any, error) {
	var sb strings.Builder
	sb.WriteString(approvalFilterSelectQuery)
	args := make([]any, 0, len(query.Predicates))
	argNum := 1

	for _, p := range query.Predicates {
		column, ok := filterColumns[p.Field]
		if !ok {
			return "", nil, apperrors.NewInvalidFilterError(string(p.Field), fmt.Sprint(p.Value))
		}
		switch p.Op {
		case domain.OpContainsFold:
			fmt.Fprintf(&sb, " AND %s LIKE '%%' || $%d || '%%'", column, argNum)
			args = append(args, escapeLike(fmt.Sprint(p.Value)))
		case domain.OpEquals:
			fmt.Fprintf(&sb, " AND %s = $%d", column, argNum)
			args = append(args, fmt.Sprint(p.Value))
		case domain.OpDateOnOrAfter:
			fmt.Fprintf(&sb, " AND %s >= $%d::date", column, argNum)
			args = append(args, p.Value)
		case domain.OpDateOnOrBefore:
			fmt.Fprintf(&sb, " AND %s <= $%d::date", column, argNum)
			args = append(args, p.Value)
		case domain.OpDateEquals:
			fmt.Fprintf(&sb, " AND %s = $%d::date", column, argNum)
			args = append(args, p.Value)
		default:
			return "", nil, apperrors.NewInvalidFilterError(string(p.Field), fmt.Sprint(p.Value))
		}
		argNum++
	}
	sb.WriteString(" ORDER BY r.id;")
	return sb.String(), args, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }

func (r *PgxApprovalRepository) getApprovals(ctx context.Context, filterQuery string, args ...any) ([]domain.ApprovalRequest, error) {
	rows, err := r.db(ctx).Query(ctx, approvalSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query approval requests", err)
	}
	defer rows.Close()
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ApprovalRequest])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect approval request rows", err)
	}
	return mapping.ToDomainApprovalRequestSlice(list), nil
}

func (r *PgxApprovalRepository) FindApprovalByID(ctx context.Context, id int64) (*domain.ApprovalRequest, error) {
	list, err := r.getApprovals(ctx, `WHERE r.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &list[0], nil
}

func (r *PgxApprovalRepository) FindLatestApprovalByMunicipalityAndStatus(ctx context.Context, municipalityID int64, status domain.ApprovalStatus) (*domain.ApprovalRequest, error) {
	list, err := r.getApprovals(ctx,
		`WHERE r.municipality_id = $1 AND r.status = $2 ORDER BY r.requested_at DESC, r.id DESC LIMIT 1`,
		municipalityID, string(status))
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &list[0], nil
}

func (r *PgxApprovalRepository) ListApprovalsByRequestedAtDesc(ctx context.Context) ([]domain.ApprovalRequest, error) {
	return r.getApprovals(ctx, `ORDER BY r.requested_at DESC, r.id DESC`)
}

func (r *PgxApprovalRepository) ListPendingApprovalsByCity(ctx context.Context, cityID int64) ([]domain.ApprovalRequest, error) {
	return r.getApprovals(ctx,
		`JOIN municipalities m ON m.id = r.municipality_id
		WHERE m.city_id = $1 AND r.status = $2
		ORDER BY r.requested_at DESC, r.id DESC`,
		cityID, string(domain.StatusPending))
}

func (r *PgxApprovalRepository) FilterApprovals(ctx context.Context, query domain.ApprovalQuery) ([]domain.ApprovalFilterRow, error) {
	sql, args, err := buildFilterQuery(query)
	if err != nil {
		return nil, err
	}
	rows, err := r.db(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to filter approval requests", err)
	}
	defer rows.Close()
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ApprovalFilterRow])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect approval filter rows", err)
	}
	return mapping.ToDomainApprovalFilterRows(list), nil
}

func (r *PgxApprovalRepository) SaveApproval(ctx context.Context, request *domain.ApprovalRequest) error {
	if request.Version == 0 {
		request.Version = 1
	}
	query := `
		INSERT INTO approval_requests (municipality_id, status, requested_at, decided_at, justification, version)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	err := r.db(ctx).QueryRow(ctx, query,
		request.MunicipalityID,
		string(request.Status),
		request.RequestedAt,
		request.DecidedAt,
		request.Justification,
		request.Version,
	).Scan(&request.ID)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("approval request for municipality %d", request.MunicipalityID))
	}
	return nil
}

func (r *PgxApprovalRepository) UpdateApprovalDecision(ctx context.Context, request *domain.ApprovalRequest) error {
	query := `
		UPDATE approval_requests
		SET status = $1, decided_at = $2, justification = $3, version = version + 1
		WHERE id = $4 AND version = $5;
	`
	result, err := r.db(ctx).Exec(ctx, query,
		string(request.Status),
		request.DecidedAt,
		request.Justification,
		request.ID,
		request.Version,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("approval request %d", request.ID))
	}
	if result.RowsAffected() == 0 {
		if _, findErr := r.FindApprovalByID(ctx, request.ID); errors.Is(findErr, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewConflictError("approval request was modified concurrently")
	}
	request.Version++
	return nil
}
