package mapping

import (
	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
	"github.com/SscSPs/municipal_approval_app/internal/models"
)

// ToDomainMunicipality converts a joined municipality row, attaching its city
func ToDomainMunicipality(m models.Municipality) domain.Municipality {
	return domain.Municipality{
		ID:             m.ID,
		CityID:         m.CityID,
		City:           &domain.City{ID: m.CityID, Name: m.CityName, StateName: m.CityStateName, StateCode: m.CityStateCode},
		PoliticalParty: m.PoliticalParty,
		MayorName:      m.MayorName,
		Office:         domain.Office(m.Office),
		Emails:         m.Emails,
		Phone:          m.Phone,
		TermStart:      m.TermStart,
		TermEnd:        m.TermEnd,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ToDomainMunicipalitySlice converts a slice of joined municipality rows
func ToDomainMunicipalitySlice(ms []models.Municipality) []domain.Municipality {
	ds := make([]domain.Municipality, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMunicipality(m)
	}
	return ds
}

// ToDomainCity converts a model City to a domain City
func ToDomainCity(m models.City) domain.City {
	return domain.City{ID: m.ID, Name: m.Name, StateName: m.StateName, StateCode: m.StateCode}
}
