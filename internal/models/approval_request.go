package models

import "time"

// ApprovalRequest mirrors a row of approval_requests.
type ApprovalRequest struct {
	ID             int64      `db:"id"`
	MunicipalityID int64      `db:"municipality_id"`
	Status         string     `db:"status"`
	RequestedAt    time.Time  `db:"requested_at"`
	DecidedAt      *time.Time `db:"decided_at"`
	Justification  *string    `db:"justification"`
	Version        int64      `db:"version"`
}

// ApprovalFilterRow is the projection produced by the approval filter query.
type ApprovalFilterRow struct {
	RequestID      int64      `db:"request_id"`
	Status         string     `db:"status"`
	RequestedAt    time.Time  `db:"requested_at"`
	DecidedAt      *time.Time `db:"decided_at"`
	Justification  *string    `db:"justification"`
	MunicipalityID int64      `db:"municipality_id"`
	MayorName      string     `db:"mayor_name"`
	CityName       *string    `db:"city_name"`
	StateCode      *string    `db:"state_code"`
	TermStart      *time.Time `db:"term_start"`
	TermEnd        *time.Time `db:"term_end"`
}
