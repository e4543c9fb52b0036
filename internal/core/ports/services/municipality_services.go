package services

import (
	"context"
	"time"

	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
)

// MunicipalityReaderSvc defines read operations for municipalities
type MunicipalityReaderSvc interface {
	FindMunicipalityByID(ctx context.Context, id int64) (*domain.Municipality, error)
	ListMunicipalities(ctx context.Context) ([]domain.Municipality, error)
}

// MunicipalityWriterSvc defines write operations for municipalities
type MunicipalityWriterSvc interface {
	// RegisterCity persists a new city.
	RegisterCity(ctx context.Context, city domain.City) (*domain.City, error)

	// RegisterMunicipality persists a municipality under an existing city.
	RegisterMunicipality(ctx context.Context, municipality domain.Municipality) (*domain.Municipality, error)

	// UpdateTermDates stores the mandate dates; start must not be after end.
	UpdateTermDates(ctx context.Context, municipality *domain.Municipality, start, end time.Time) error

	// UpdateEmails replaces the stored recipient list.
	UpdateEmails(ctx context.Context, municipalityID int64, emails string) error
}

// MunicipalitySvcFacade combines all municipality-related service interfaces
type MunicipalitySvcFacade interface {
	MunicipalityReaderSvc
	MunicipalityWriterSvc
}
