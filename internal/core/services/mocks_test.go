package services_test

import (
	"context"

	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
	portssvc "github.com/SscSPs/municipal_approval_app/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// MockNotifier is a mock type for the Notifier interface
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendHTMLEmail(ctx context.Context, recipients []string, subject, htmlBody string) portssvc.NotificationResult {
	args := m.Called(ctx, recipients, subject, htmlBody)
	return args.Get(0).(portssvc.NotificationResult)
}

// MockDecisionTracker is a mock type for the DecisionTracker interface
type MockDecisionTracker struct {
	mock.Mock
}

func (m *MockDecisionTracker) Enqueue(distinctID, event string, properties map[string]any) {
	m.Called(distinctID, event, properties)
}

// MockEmailTokenService is a mock type for the EmailTokenSvcFacade interface
type MockEmailTokenService struct {
	mock.Mock
}

func (m *MockEmailTokenService) Issue(purpose domain.TokenPurpose, request domain.ApprovalRequest, municipality domain.Municipality) domain.EmailToken {
	args := m.Called(purpose, request, municipality)
	return args.Get(0).(domain.EmailToken)
}

func (m *MockEmailTokenService) Save(ctx context.Context, token *domain.EmailToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockEmailTokenService) RegenerateForInvite(ctx context.Context, municipality domain.Municipality, request domain.ApprovalRequest, purpose domain.TokenPurpose, forceNew bool) (*domain.EmailToken, error) {
	args := m.Called(ctx, municipality, request, purpose, forceNew)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmailToken), args.Error(1)
}

// staticConfig serves properties from a map.
type staticConfig map[string]string

func (c staticConfig) GetProperty(key string) string { return c[key] }

func delivered() portssvc.NotificationResult {
	return portssvc.NotificationResult{Delivered: true}
}
