package models

import "time"

// EmailToken mirrors a row of email_tokens.
type EmailToken struct {
	ID                int64     `db:"id"`
	Hash              string    `db:"hash"`
	Purpose           string    `db:"purpose"`
	Active            bool      `db:"active"`
	ApprovalRequestID *int64    `db:"approval_request_id"`
	MunicipalityID    int64     `db:"municipality_id"`
	CreatedAt         time.Time `db:"created_at"`
}
