package main

import (
	"context"

	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
	portssvc "github.com/SscSPs/municipal_approval_app/internal/core/ports/services"
)

type demoMunicipality struct {
	city   domain.City
	mayor  string
	office domain.Office
	emails string
}

var demoData = []demoMunicipality{
	{domain.City{Name: "Rio de Janeiro", StateName: "Rio de Janeiro", StateCode: "RJ"}, "Ana Souza", domain.OfficeMayorFeminine, "gabinete@rio.rj.gov.br;ana.souza@rio.rj.gov.br"},
	{domain.City{Name: "Niterói", StateName: "Rio de Janeiro", StateCode: "RJ"}, "Carlos Lima", domain.OfficeMayor, "prefeito@niteroi.rj.gov.br"},
	{domain.City{Name: "São Paulo", StateName: "São Paulo", StateCode: "SP"}, "Marta Reis", domain.OfficeMayorFeminine, "gabinete@sp.gov.br"},
}

// seedDemo registers one pending request per demo municipality. The last one
// is rejected so every status filter has something to show.
func seedDemo(ctx context.Context, svc *portssvc.ServiceContainer) error {
	var last *domain.ApprovalRequest
	for _, d := range demoData {
		city, err := svc.Municipality.RegisterCity(ctx, d.city)
		if err != nil {
			return err
		}
		m, err := svc.Municipality.RegisterMunicipality(ctx, domain.Municipality{
			CityID:    city.ID,
			MayorName: d.mayor,
			Office:    d.office,
			Emails:    d.emails,
		})
		if err != nil {
			return err
		}
		if last, err = svc.Approval.CreateApproval(ctx, m.ID); err != nil {
			return err
		}
	}
	_, err := svc.Approval.Reject(ctx, last.ID, "documentação incompleta")
	return err
}
