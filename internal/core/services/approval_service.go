package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SscSPs/municipal_approval_app/internal/apperrors"
	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
	portsrepo "github.com/SscSPs/municipal_approval_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/municipal_approval_app/internal/core/ports/services"
	"github.com/SscSPs/municipal_approval_app/internal/observability"
	"go.opentelemetry.io/otel/attribute"
)

// approvalNotFoundMessage is the user-facing message for unknown request ids.
const approvalNotFoundMessage = "approval request not found"

// Analytics event names.
const (
	EventApprovalCreated  = "approval_request_created"
	EventApprovalApproved = "approval_request_approved"
	EventApprovalRejected = "approval_request_rejected"
	EventApprovalResent   = "approval_email_resent"
)

// approvalService implements the ApprovalSvcFacade interface
type approvalService struct {
	BaseService
	repo           portsrepo.ApprovalRepositoryFacade
	txManager      portsrepo.TransactionManager
	municipalities portssvc.MunicipalitySvcFacade
	tokens         portssvc.EmailTokenSvcFacade
	notifications  *notificationAdapter
	tracker        portssvc.DecisionTracker
}

// ApprovalServiceOption is a functional option for configuring the approval service
type ApprovalServiceOption func(*approvalService)

// WithClock replaces the wall clock used for requestedAt/decidedAt
func WithClock(now func() time.Time) ApprovalServiceOption {
	return func(s *approvalService) {
		s.Clock = now
	}
}

// WithDecisionTracker publishes workflow events to product analytics
func WithDecisionTracker(tracker portssvc.DecisionTracker) ApprovalServiceOption {
	return func(s *approvalService) {
		s.tracker = tracker
	}
}

// ApprovalDeps groups the collaborators of the approval workflow.
type ApprovalDeps struct {
	Repo           portsrepo.ApprovalRepositoryFacade
	TxManager      portsrepo.TransactionManager
	Municipalities portssvc.MunicipalitySvcFacade
	Tokens         portssvc.EmailTokenSvcFacade
	Notifier       portssvc.Notifier
	Composer       portssvc.EmailComposer
	Config         portssvc.ConfigProvider
}

// NewApprovalService creates the approval workflow
func NewApprovalService(deps ApprovalDeps, opts ...ApprovalServiceOption) portssvc.ApprovalSvcFacade {
	s := &approvalService{
		repo:           deps.Repo,
		txManager:      deps.TxManager,
		municipalities: deps.Municipalities,
		tokens:         deps.Tokens,
		notifications:  newNotificationAdapter(deps.Notifier, deps.Composer, deps.Config),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ApprovalSvcFacade = (*approvalService)(nil)

// CreateApproval opens a pending request for an existing municipality
func (s *approvalService) CreateApproval(ctx context.Context, municipalityID int64) (_ *domain.ApprovalRequest, err error) {
	ctx, span := observability.StartSpan(ctx, "approval", "create", attribute.Int64("municipality.id", municipalityID))
	defer func() { observability.EndSpan(span, err) }()

	if _, err = s.municipalities.FindMunicipalityByID(ctx, municipalityID); err != nil {
		return nil, err
	}

	request := domain.NewApprovalRequest(municipalityID, s.Now())
	if err = s.repo.SaveApproval(ctx, &request); err != nil {
		s.LogError(ctx, err, "Failed to save approval request", slog.Int64("municipality_id", municipalityID))
		return nil, fmt.Errorf("saving approval request: %w", err)
	}

	s.LogInfo(ctx, "Approval request created",
		slog.Int64("approval_id", request.ID),
		slog.Int64("municipality_id", municipalityID))
	s.track(municipalityID, EventApprovalCreated, map[string]any{"approval_id": request.ID})
	return &request, nil
}

// Approve approves a pending request
func (s *approvalService) Approve(ctx context.Context, id int64, termStart, termEnd time.Time) (*domain.ApprovalRequest, error) {
	return s.approve(ctx, "approve", id, nil, termStart, termEnd)
}

// ApproveWithEdits approves a pending request after merging edits onto the municipality
func (s *approvalService) ApproveWithEdits(ctx context.Context, id int64, edits domain.MunicipalityEdits, termStart, termEnd time.Time) (*domain.ApprovalRequest, error) {
	return s.approve(ctx, "approve_with_edits", id, &edits, termStart, termEnd)
}

// approve runs the status write, municipality update and token issuance in one
// transaction, then notifies outside of it.
func (s *approvalService) approve(ctx context.Context, action string, id int64, edits *domain.MunicipalityEdits, termStart, termEnd time.Time) (_ *domain.ApprovalRequest, err error) {
	ctx, span := observability.StartSpan(ctx, "approval", action, attribute.Int64("approval.id", id))
	defer func() {
		observability.EndSpan(span, err)
		s.recordDecision(action, err)
	}()

	var (
		request      *domain.ApprovalRequest
		municipality *domain.Municipality
		token        domain.EmailToken
	)
	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		r, err := s.findRequest(txCtx, id)
		if err != nil {
			return err
		}
		if err := r.Approve(s.Now()); err != nil {
			return err
		}
		if err := s.repo.UpdateApprovalDecision(txCtx, r); err != nil {
			return err
		}

		m, err := s.municipalities.FindMunicipalityByID(txCtx, r.MunicipalityID)
		if err != nil {
			return err
		}
		if edits != nil {
			merged := m.MergeEdits(*edits)
			m = &merged
		}
		if err := s.municipalities.UpdateTermDates(txCtx, m, termStart, termEnd); err != nil {
			return err
		}

		token = s.tokens.Issue(domain.PurposeMunicipalityApproval, *r, *m)
		if err := s.tokens.Save(txCtx, &token); err != nil {
			return err
		}

		request, municipality = r, m
		return nil
	})
	if err != nil {
		s.logDecisionFailure(ctx, err, action, id)
		return nil, err
	}

	s.LogInfo(ctx, "Approval request approved",
		slog.Int64("approval_id", request.ID),
		slog.Int64("municipality_id", municipality.ID),
		slog.Bool("with_edits", edits != nil))

	sent := s.notifications.NotifyApproval(ctx, *municipality, token)
	s.track(municipality.ID, EventApprovalApproved, map[string]any{
		"approval_id": request.ID,
		"with_edits":  edits != nil,
		"email_sent":  sent,
		"term_start":  termStart.Format(domain.DateLayout),
		"term_end":    termEnd.Format(domain.DateLayout),
	})
	return request, nil
}

// Reject rejects a pending request
func (s *approvalService) Reject(ctx context.Context, id int64, justification string) (_ *domain.ApprovalRequest, err error) {
	ctx, span := observability.StartSpan(ctx, "approval", "reject", attribute.Int64("approval.id", id))
	defer func() {
		observability.EndSpan(span, err)
		s.recordDecision("reject", err)
	}()

	var (
		request      *domain.ApprovalRequest
		municipality *domain.Municipality
	)
	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		r, err := s.findRequest(txCtx, id)
		if err != nil {
			return err
		}
		if err := r.Reject(justification, s.Now()); err != nil {
			return err
		}
		if err := s.repo.UpdateApprovalDecision(txCtx, r); err != nil {
			return err
		}
		m, err := s.municipalities.FindMunicipalityByID(txCtx, r.MunicipalityID)
		if err != nil {
			return err
		}
		request, municipality = r, m
		return nil
	})
	if err != nil {
		s.logDecisionFailure(ctx, err, "reject", id)
		return nil, err
	}

	s.LogInfo(ctx, "Approval request rejected",
		slog.Int64("approval_id", request.ID),
		slog.Int64("municipality_id", municipality.ID))

	sent := s.notifications.NotifyRejection(ctx, *municipality, justification)
	s.track(municipality.ID, EventApprovalRejected, map[string]any{
		"approval_id": request.ID,
		"email_sent":  sent,
	})
	return request, nil
}

// ResendApprovalNotification re-sends the approval email of the latest approved request
func (s *approvalService) ResendApprovalNotification(ctx context.Context, municipalityID int64, emails string) (sent bool) {
	ctx, span := observability.StartSpan(ctx, "approval", "resend_notification", attribute.Int64("municipality.id", municipalityID))
	defer func() {
		span.SetAttributes(attribute.Bool("email.sent", sent))
		observability.EndSpan(span, nil)
	}()

	request, err := s.repo.FindLatestApprovalByMunicipalityAndStatus(ctx, municipalityID, domain.StatusApproved)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "No approved request to resend", slog.Int64("municipality_id", municipalityID))
		} else {
			s.LogError(ctx, err, "Failed to look up approved request", slog.Int64("municipality_id", municipalityID))
		}
		observability.ApprovalDecisions.WithLabelValues("resend", observability.OutcomeSkipped).Inc()
		return false
	}

	var (
		municipality *domain.Municipality
		token        *domain.EmailToken
	)
	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.municipalities.UpdateEmails(txCtx, municipalityID, emails); err != nil {
			return err
		}
		m, err := s.municipalities.FindMunicipalityByID(txCtx, municipalityID)
		if err != nil {
			return err
		}
		t, err := s.tokens.RegenerateForInvite(txCtx, *m, *request, domain.PurposeMunicipalityApproval, true)
		if err != nil {
			return err
		}
		municipality, token = m, t
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to prepare approval email resend", slog.Int64("municipality_id", municipalityID))
		observability.ApprovalDecisions.WithLabelValues("resend", observability.OutcomeError).Inc()
		return false
	}

	sent = s.notifications.NotifyApproval(ctx, *municipality, *token)
	outcome := observability.OutcomeSuccess
	if !sent {
		outcome = observability.OutcomeError
	}
	observability.ApprovalDecisions.WithLabelValues("resend", outcome).Inc()
	s.track(municipalityID, EventApprovalResent, map[string]any{
		"approval_id": request.ID,
		"email_sent":  sent,
	})
	return sent
}

// GetApprovalByID retrieves one request
func (s *approvalService) GetApprovalByID(ctx context.Context, id int64) (*domain.ApprovalRequest, error) {
	return s.findRequest(ctx, id)
}

// ListApprovals returns every request, newest first
func (s *approvalService) ListApprovals(ctx context.Context) ([]domain.ApprovalRequest, error) {
	list, err := s.repo.ListApprovalsByRequestedAtDesc(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list approval requests")
		return nil, err
	}
	if list == nil {
		return []domain.ApprovalRequest{}, nil
	}
	return list, nil
}

// ListPendingApprovalsByCity scopes pending requests to one city
func (s *approvalService) ListPendingApprovalsByCity(ctx context.Context, cityID int64) ([]domain.ApprovalRequest, error) {
	list, err := s.repo.ListPendingApprovalsByCity(ctx, cityID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list pending approval requests", slog.Int64("city_id", cityID))
		return nil, err
	}
	if list == nil {
		return []domain.ApprovalRequest{}, nil
	}
	return list, nil
}

// FilterApprovals builds the query specification from criteria and runs it
func (s *approvalService) FilterApprovals(ctx context.Context, criteria domain.ApprovalFilterCriteria) (_ []domain.ApprovalFilterRow, err error) {
	ctx, span := observability.StartSpan(ctx, "approval", "filter")
	defer func() { observability.EndSpan(span, err) }()

	query, err := domain.BuildApprovalQuery(criteria)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("filter.predicates", len(query.Predicates)))

	rows, err := s.repo.FilterApprovals(ctx, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to filter approval requests")
		return nil, err
	}
	if rows == nil {
		return []domain.ApprovalFilterRow{}, nil
	}
	return rows, nil
}

func (s *approvalService) findRequest(ctx context.Context, id int64) (*domain.ApprovalRequest, error) {
	request, err := s.repo.FindApprovalByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(approvalNotFoundMessage)
		}
		s.LogError(ctx, err, "Failed to find approval request", slog.Int64("approval_id", id))
		return nil, err
	}
	return request, nil
}

func (s *approvalService) logDecisionFailure(ctx context.Context, err error, action string, id int64) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrValidation):
		s.LogDebug(ctx, "Approval decision refused", slog.String("action", action), slog.Int64("approval_id", id), slog.String("reason", err.Error()))
	case errors.Is(err, apperrors.ErrConflict):
		s.LogWarn(ctx, "Approval decision conflicted", slog.String("action", action), slog.Int64("approval_id", id), slog.String("reason", err.Error()))
	default:
		s.LogError(ctx, err, "Approval decision failed", slog.String("action", action), slog.Int64("approval_id", id))
	}
}

func (s *approvalService) recordDecision(action string, err error) {
	outcome := observability.OutcomeSuccess
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrConflict):
		outcome = observability.OutcomeConflict
	default:
		outcome = observability.OutcomeError
	}
	observability.ApprovalDecisions.WithLabelValues(action, outcome).Inc()
}

func (s *approvalService) track(municipalityID int64, event string, props map[string]any) {
	if s.tracker == nil {
		return
	}
	s.tracker.Enqueue("municipality:"+strconv.FormatInt(municipalityID, 10), event, props)
}
