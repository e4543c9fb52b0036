package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/municipal_approval_app/internal/apperrors"
	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
	portsrepo "github.com/SscSPs/municipal_approval_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/municipal_approval_app/internal/core/ports/services"
)

// municipalityService implements the MunicipalitySvcFacade interface
type municipalityService struct {
	BaseService
	repo portsrepo.MunicipalityRepositoryFacade
}

// NewMunicipalityService creates a new municipality service with the provided dependencies
func NewMunicipalityService(repo portsrepo.MunicipalityRepositoryFacade) portssvc.MunicipalitySvcFacade {
	return &municipalityService{repo: repo}
}

var _ portssvc.MunicipalitySvcFacade = (*municipalityService)(nil)

// FindMunicipalityByID retrieves a municipality with its city
func (s *municipalityService) FindMunicipalityByID(ctx context.Context, id int64) (*domain.Municipality, error) {
	m, err := s.repo.FindMunicipalityByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("municipality %d not found", id))
		}
		s.LogError(ctx, err, "Failed to find municipality", slog.Int64("municipality_id", id))
		return nil, err
	}
	return m, nil
}

// ListMunicipalities returns every municipality
func (s *municipalityService) ListMunicipalities(ctx context.Context) ([]domain.Municipality, error) {
	list, err := s.repo.ListMunicipalities(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list municipalities")
		return nil, err
	}
	if list == nil {
		return []domain.Municipality{}, nil
	}
	return list, nil
}

// RegisterCity persists a new city
func (s *municipalityService) RegisterCity(ctx context.Context, city domain.City) (*domain.City, error) {
	if strings.TrimSpace(city.Name) == "" {
		return nil, apperrors.NewValidationFailedError("city name is required")
	}
	if err := s.repo.SaveCity(ctx, &city); err != nil {
		s.LogError(ctx, err, "Failed to save city", slog.String("name", city.Name))
		return nil, err
	}
	s.LogInfo(ctx, "City registered", slog.Int64("city_id", city.ID))
	return &city, nil
}

// RegisterMunicipality persists a municipality under an existing city
func (s *municipalityService) RegisterMunicipality(ctx context.Context, m domain.Municipality) (*domain.Municipality, error) {
	if strings.TrimSpace(m.MayorName) == "" {
		return nil, apperrors.NewValidationFailedError("mayor name is required")
	}
	if len(m.Recipients()) == 0 {
		return nil, apperrors.NewValidationFailedError("at least one email is required")
	}
	city, err := s.repo.FindCityByID(ctx, m.CityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("city %d not found", m.CityID))
		}
		return nil, err
	}
	if m.Office == "" {
		m.Office = domain.OfficeMayor
	}
	now := s.Now()
	m.CreatedAt, m.UpdatedAt = now, now
	if err := s.repo.SaveMunicipality(ctx, &m); err != nil {
		s.LogError(ctx, err, "Failed to save municipality", slog.Int64("city_id", m.CityID))
		return nil, err
	}
	m.City = city
	s.LogInfo(ctx, "Municipality registered", slog.Int64("municipality_id", m.ID))
	return &m, nil
}

// UpdateTermDates stores the mandate dates on the municipality
func (s *municipalityService) UpdateTermDates(ctx context.Context, m *domain.Municipality, start, end time.Time) error {
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		return apperrors.NewValidationFailedError("term start must not be after term end")
	}
	if !start.IsZero() {
		d := domain.TruncateToDate(start)
		m.TermStart = &d
	}
	if !end.IsZero() {
		d := domain.TruncateToDate(end)
		m.TermEnd = &d
	}
	m.UpdatedAt = s.Now()
	if err := s.repo.UpdateMunicipality(ctx, *m); err != nil {
		s.LogError(ctx, err, "Failed to update term dates", slog.Int64("municipality_id", m.ID))
		return fmt.Errorf("updating term dates: %w", err)
	}
	return nil
}

// UpdateEmails replaces the stored recipient list
func (s *municipalityService) UpdateEmails(ctx context.Context, id int64, emails string) error {
	if len((domain.Municipality{Emails: emails}).Recipients()) == 0 {
		return apperrors.NewValidationFailedError("at least one email is required")
	}
	if err := s.repo.UpdateMunicipalityEmails(ctx, id, emails); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(fmt.Sprintf("municipality %d not found", id))
		}
		return fmt.Errorf("updating emails: %w", err)
	}
	return nil
}
