package repositories

import (
	"context"

	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
)

// MunicipalityReader defines read operations for municipalities and cities
type MunicipalityReader interface {
	// FindMunicipalityByID retrieves a municipality with its city loaded.
	FindMunicipalityByID(ctx context.Context, id int64) (*domain.Municipality, error)

	// ListMunicipalities returns all municipalities ordered by id.
	ListMunicipalities(ctx context.Context) ([]domain.Municipality, error)

	// FindCityByID retrieves a city.
	FindCityByID(ctx context.Context, id int64) (*domain.City, error)
}

// MunicipalityWriter defines write operations for municipalities and cities
type MunicipalityWriter interface {
	SaveCity(ctx context.Context, city *domain.City) error
	SaveMunicipality(ctx context.Context, municipality *domain.Municipality) error

	// UpdateMunicipality overwrites the editable fields and term dates.
	UpdateMunicipality(ctx context.Context, municipality domain.Municipality) error

	// UpdateMunicipalityEmails replaces the stored recipient list.
	UpdateMunicipalityEmails(ctx context.Context, id int64, emails string) error
}

// MunicipalityRepositoryFacade combines all municipality-related repository interfaces
type MunicipalityRepositoryFacade interface {
	MunicipalityReader
	MunicipalityWriter
}
