package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/municipal_approval_app/internal/apperrors"
	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseApprovalStatus(t *testing.T) {
	tests := []struct {
		raw     string
		want    domain.ApprovalStatus
		wantErr bool
	}{
		{raw: "Pending", want: domain.StatusPending},
		{raw: "approved", want: domain.StatusApproved},
		{raw: " REJECTED ", want: domain.StatusRejected},
		{raw: "Pendente", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := domain.ParseApprovalStatus(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApprovalRequest_Transitions(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		start     domain.ApprovalStatus
		act       func(r *domain.ApprovalRequest) error
		wantState domain.ApprovalStatus
		wantErr   error
	}{
		{
			name:      "pending to approved",
			start:     domain.StatusPending,
			act:       func(r *domain.ApprovalRequest) error { return r.Approve(now) },
			wantState: domain.StatusApproved,
		},
		{
			name:      "pending to rejected",
			start:     domain.StatusPending,
			act:       func(r *domain.ApprovalRequest) error { return r.Reject("budget concerns", now) },
			wantState: domain.StatusRejected,
		},
		{
			name:      "approved cannot be approved again",
			start:     domain.StatusApproved,
			act:       func(r *domain.ApprovalRequest) error { return r.Approve(now) },
			wantState: domain.StatusApproved,
			wantErr:   apperrors.ErrInvalidState,
		},
		{
			name:      "approved cannot be rejected",
			start:     domain.StatusApproved,
			act:       func(r *domain.ApprovalRequest) error { return r.Reject("late", now) },
			wantState: domain.StatusApproved,
			wantErr:   apperrors.ErrConflict,
		},
		{
			name:      "rejected cannot be approved",
			start:     domain.StatusRejected,
			act:       func(r *domain.ApprovalRequest) error { return r.Approve(now) },
			wantState: domain.StatusRejected,
			wantErr:   apperrors.ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := domain.NewApprovalRequest(7, now.Add(-time.Hour))
			if tt.start != domain.StatusPending {
				decided := now.Add(-time.Minute)
				req.Status = tt.start
				req.DecidedAt = &decided
				if tt.start == domain.StatusRejected {
					j := "earlier"
					req.Justification = &j
				}
			}

			err := tt.act(&req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, now, *req.DecidedAt)
			}
			assert.Equal(t, tt.wantState, req.Status)
			assert.NoError(t, req.Validate())
		})
	}
}

func TestApprovalRequest_RejectKeepsJustification(t *testing.T) {
	req := domain.NewApprovalRequest(1, time.Now())

	require.NoError(t, req.Reject("", time.Now()))

	require.NotNil(t, req.Justification)
	assert.Equal(t, "", *req.Justification)
}

func TestApprovalRequest_Validate(t *testing.T) {
	now := time.Now()
	why := "missing documents"

	tests := []struct {
		name    string
		req     domain.ApprovalRequest
		wantErr bool
	}{
		{name: "fresh pending", req: domain.NewApprovalRequest(1, now)},
		{name: "pending with decidedAt", req: domain.ApprovalRequest{Status: domain.StatusPending, DecidedAt: &now}, wantErr: true},
		{name: "approved without decidedAt", req: domain.ApprovalRequest{Status: domain.StatusApproved}, wantErr: true},
		{name: "approved with justification", req: domain.ApprovalRequest{Status: domain.StatusApproved, DecidedAt: &now, Justification: &why}, wantErr: true},
		{name: "rejected without justification", req: domain.ApprovalRequest{Status: domain.StatusRejected, DecidedAt: &now}, wantErr: true},
		{name: "rejected complete", req: domain.ApprovalRequest{Status: domain.StatusRejected, DecidedAt: &now, Justification: &why}},
		{name: "unknown status", req: domain.ApprovalRequest{Status: "Pendente"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
