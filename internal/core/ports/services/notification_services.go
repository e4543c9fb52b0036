package services

import (
	"context"

	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
)

// NotificationResult reports the outcome of one dispatch.
type NotificationResult struct {
	Delivered bool
	Err       error
}

// Notifier sends HTML email. Failures are reported in the result, never panicked.
type Notifier interface {
	SendHTMLEmail(ctx context.Context, recipients []string, subject, htmlBody string) NotificationResult
}

// ConfigProvider resolves string properties such as the front-end base URL.
type ConfigProvider interface {
	GetProperty(key string) string
}

// DecisionTracker records product analytics for workflow events.
type DecisionTracker interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}

// ApprovalEmail is the data rendered into the approval message.
type ApprovalEmail struct {
	Municipality domain.Municipality
	FormLink     string
	PortalURL    string
}

// RejectionEmail is the data rendered into the rejection message.
type RejectionEmail struct {
	Municipality  domain.Municipality
	Justification string
	PortalURL     string
}

// EmailComposer renders subject lines and HTML bodies.
type EmailComposer interface {
	ComposeApproval(data ApprovalEmail) (subject, htmlBody string, err error)
	ComposeRejection(data RejectionEmail) (subject, htmlBody string, err error)
}
