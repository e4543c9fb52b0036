package dto

import (
	"time"

	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
)

// CreateCityRequest registers a city.
type CreateCityRequest struct {
	Name      string `json:"name" binding:"required"`
	StateName string `json:"stateName"`
	StateCode string `json:"stateCode" binding:"omitempty,len=2"`
}

// ToDomain converts the request to a domain city.
func (r CreateCityRequest) ToDomain() domain.City {
	return domain.City{Name: r.Name, StateName: r.StateName, StateCode: r.StateCode}
}

// CreateMunicipalityRequest registers the administration of a city.
type CreateMunicipalityRequest struct {
	CityID         int64  `json:"cityId" binding:"required,gt=0"`
	PoliticalParty string `json:"politicalParty"`
	MayorName      string `json:"mayorName" binding:"required"`
	Office         string `json:"office" binding:"omitempty,oneof=Prefeito Prefeita"`
	Emails         string `json:"emails" binding:"required,emaillist"`
	Phone          string `json:"phone"`
}

// ToDomain converts the request to a domain municipality.
func (r CreateMunicipalityRequest) ToDomain() domain.Municipality {
	return domain.Municipality{
		CityID:         r.CityID,
		PoliticalParty: r.PoliticalParty,
		MayorName:      r.MayorName,
		Office:         domain.Office(r.Office),
		Emails:         r.Emails,
		Phone:          r.Phone,
	}
}

// CityResponse defines the data returned for a city.
type CityResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StateName string `json:"stateName"`
	StateCode string `json:"stateCode"`
}

// ToCityResponse converts a domain.City to CityResponse DTO
func ToCityResponse(c *domain.City) CityResponse {
	return CityResponse{ID: c.ID, Name: c.Name, StateName: c.StateName, StateCode: c.StateCode}
}

// MunicipalityResponse defines the data returned for a municipality.
type MunicipalityResponse struct {
	ID             int64         `json:"id"`
	City           *CityResponse `json:"city,omitempty"`
	CityID         int64         `json:"cityId"`
	PoliticalParty string        `json:"politicalParty"`
	MayorName      string        `json:"mayorName"`
	Office         domain.Office `json:"office"`
	Emails         string        `json:"emails"`
	Phone          string        `json:"phone"`
	TermStart      string        `json:"termStart,omitempty"`
	TermEnd        string        `json:"termEnd,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// ToMunicipalityResponse converts a domain.Municipality to MunicipalityResponse DTO
func ToMunicipalityResponse(m *domain.Municipality) MunicipalityResponse {
	res := MunicipalityResponse{
		ID:             m.ID,
		CityID:         m.CityID,
		PoliticalParty: m.PoliticalParty,
		MayorName:      m.MayorName,
		Office:         m.Office,
		Emails:         m.Emails,
		Phone:          m.Phone,
		TermStart:      formatDate(m.TermStart),
		TermEnd:        formatDate(m.TermEnd),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.City != nil {
		city := ToCityResponse(m.City)
		res.City = &city
	}
	return res
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(domain.DateLayout)
}
