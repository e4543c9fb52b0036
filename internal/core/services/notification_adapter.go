package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/municipal_approval_app/internal/apperrors"
	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
	portssvc "github.com/SscSPs/municipal_approval_app/internal/core/ports/services"
	"github.com/SscSPs/municipal_approval_app/internal/observability"
)

// PropertyFrontendURL is the config key of the coordinator front-end base URL.
const PropertyFrontendURL = "FRONTEND_BASE_URL"

// delegateFormPath is appended to the front-end URL in approval emails.
const delegateFormPath = "/add-responsavel?token="

// notificationAdapter renders and dispatches workflow emails. It never returns
// an error: failures are logged as ErrNotification and reported as false.
type notificationAdapter struct {
	BaseService
	notifier portssvc.Notifier
	composer portssvc.EmailComposer
	config   portssvc.ConfigProvider
}

func newNotificationAdapter(notifier portssvc.Notifier, composer portssvc.EmailComposer, config portssvc.ConfigProvider) *notificationAdapter {
	return &notificationAdapter{notifier: notifier, composer: composer, config: config}
}

func (a *notificationAdapter) portalURL() string {
	if a.config == nil {
		return ""
	}
	return strings.TrimRight(a.config.GetProperty(PropertyFrontendURL), "/")
}

// NotifyApproval sends the welcome email with the token link to every registered recipient.
func (a *notificationAdapter) NotifyApproval(ctx context.Context, m domain.Municipality, token domain.EmailToken) bool {
	portal := a.portalURL()
	subject, body, err := a.composer.ComposeApproval(portssvc.ApprovalEmail{
		Municipality: m,
		FormLink:     portal + delegateFormPath + token.Hash,
		PortalURL:    portal,
	})
	if err != nil {
		return a.fail(ctx, "approval", m.ID, err)
	}
	return a.dispatch(ctx, "approval", m.ID, m.Recipients(), subject, body)
}

// NotifyRejection sends the refusal email to the primary recipient.
func (a *notificationAdapter) NotifyRejection(ctx context.Context, m domain.Municipality, justification string) bool {
	subject, body, err := a.composer.ComposeRejection(portssvc.RejectionEmail{
		Municipality:  m,
		Justification: justification,
		PortalURL:     a.portalURL(),
	})
	if err != nil {
		return a.fail(ctx, "rejection", m.ID, err)
	}
	var recipients []string
	if primary := m.PrimaryEmail(); primary != "" {
		recipients = []string{primary}
	}
	return a.dispatch(ctx, "rejection", m.ID, recipients, subject, body)
}

func (a *notificationAdapter) dispatch(ctx context.Context, template string, municipalityID int64, recipients []string, subject, body string) bool {
	if len(recipients) == 0 {
		return a.fail(ctx, template, municipalityID, errors.New("municipality has no registered email"))
	}
	res := a.notifier.SendHTMLEmail(ctx, recipients, subject, body)
	if res.Err != nil || !res.Delivered {
		err := res.Err
		if err == nil {
			err = errors.New("notifier reported no delivery")
		}
		return a.fail(ctx, template, municipalityID, err)
	}
	observability.NotificationsSent.WithLabelValues(template, observability.OutcomeSuccess).Inc()
	a.LogInfo(ctx, "Notification sent",
		slog.String("template", template),
		slog.Int64("municipality_id", municipalityID),
		slog.Int("recipients", len(recipients)))
	return true
}

func (a *notificationAdapter) fail(ctx context.Context, template string, municipalityID int64, err error) bool {
	observability.NotificationsSent.WithLabelValues(template, observability.OutcomeError).Inc()
	a.LogError(ctx, apperrors.NewNotificationError(err), "Notification failed",
		slog.String("template", template),
		slog.Int64("municipality_id", municipalityID))
	return false
}
