package services

import (
	portsrepo "github.com/SscSPs/municipal_approval_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/municipal_approval_app/internal/core/ports/services"
)

// Collaborators are the outbound adapters the services need besides repositories.
type Collaborators struct {
	Notifier portssvc.Notifier
	Composer portssvc.EmailComposer
	Config   portssvc.ConfigProvider
	Tracker  portssvc.DecisionTracker
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, collab Collaborators) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Municipality = NewMunicipalityService(repos.MunicipalityRepo)
	container.EmailToken = NewEmailTokenService(repos.EmailTokenRepo)

	var opts []ApprovalServiceOption
	if collab.Tracker != nil {
		opts = append(opts, WithDecisionTracker(collab.Tracker))
	}
	container.Approval = NewApprovalService(ApprovalDeps{
		Repo:           repos.ApprovalRepo,
		TxManager:      repos.TxManager,
		Municipalities: container.Municipality,
		Tokens:         container.EmailToken,
		Notifier:       collab.Notifier,
		Composer:       collab.Composer,
		Config:         collab.Config,
	}, opts...)

	return container
}
