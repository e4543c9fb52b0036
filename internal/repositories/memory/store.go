// Package memory provides mutex-guarded in-process repositories. A transaction
// holds the store exclusively and rolls back by restoring a snapshot taken at
// its start; calls made outside a transaction wait for it to finish.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/municipal_approval_app/internal/apperrors"
	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
	portsrepo "github.com/SscSPs/municipal_approval_app/internal/core/ports/repositories"
)

type txKey struct{}

type state struct {
	cities         map[int64]domain.City
	municipalities map[int64]domain.Municipality
	approvals      map[int64]domain.ApprovalRequest
	tokens         map[int64]domain.EmailToken
	nextID         map[string]int64
}

func newState() state {
	return state{
		cities:         map[int64]domain.City{},
		municipalities: map[int64]domain.Municipality{},
		approvals:      map[int64]domain.ApprovalRequest{},
		tokens:         map[int64]domain.EmailToken{},
		nextID:         map[string]int64{},
	}
}

func (s state) clone() state {
	c := newState()
	for k, v := range s.cities {
		c.cities[k] = v
	}
	for k, v := range s.municipalities {
		c.municipalities[k] = v
	}
	for k, v := range s.approvals {
		c.approvals[k] = v
	}
	for k, v := range s.tokens {
		c.tokens[k] = v
	}
	for k, v := range s.nextID {
		c.nextID[k] = v
	}
	return c
}

// Store implements every repository port over in-memory maps.
type Store struct {
	mu   sync.RWMutex
	txMu sync.RWMutex
	data state
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{data: newState()}
}

var (
	_ portsrepo.ApprovalRepositoryFacade     = (*Store)(nil)
	_ portsrepo.MunicipalityRepositoryFacade = (*Store)(nil)
	_ portsrepo.EmailTokenRepositoryFacade   = (*Store)(nil)
	_ portsrepo.TransactionManager           = (*Store)(nil)
)

// Provider exposes the store through a RepositoryProvider.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ApprovalRepo:     s,
		MunicipalityRepo: s,
		EmailTokenRepo:   s,
		TxManager:        s,
	}
}

// WithinTransaction runs fn exclusively; an error restores the pre-transaction
// rows. Id sequences are never rewound. Nested calls join the outer transaction.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := s.data.clone()
	s.mu.RUnlock()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.mu.Lock()
		snapshot.nextID = s.data.nextID
		s.data = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

// enter orders a call against running transactions: reads share the gate,
// writes take it exclusively. Calls inside a transaction already own it.
func (s *Store) enter(ctx context.Context, write bool) func() {
	if ctx.Value(txKey{}) != nil {
		return func() {}
	}
	if write {
		s.txMu.Lock()
		return s.txMu.Unlock
	}
	s.txMu.RLock()
	return s.txMu.RUnlock
}

func (s *Store) next(table string) int64 {
	s.data.nextID[table]++
	return s.data.nextID[table]
}

// --- approvals ---

func (s *Store) FindApprovalByID(ctx context.Context, id int64) (*domain.ApprovalRequest, error) {
	defer s.enter(ctx, false)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.data.approvals[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &r, nil
}

func (s *Store) FindLatestApprovalByMunicipalityAndStatus(ctx context.Context, municipalityID int64, status domain.ApprovalStatus) (*domain.ApprovalRequest, error) {
	defer s.enter(ctx, false)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	var latest *domain.ApprovalRequest
	for _, r := range s.data.approvals {
		if r.MunicipalityID != municipalityID || r.Status != status {
			continue
		}
		if latest == nil || newerFirst(r, *latest) {
			r := r
			latest = &r
		}
	}
	if latest == nil {
		return nil, apperrors.ErrNotFound
	}
	return latest, nil
}

func (s *Store) ListApprovalsByRequestedAtDesc(ctx context.Context) ([]domain.ApprovalRequest, error) {
	defer s.enter(ctx, false)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ApprovalRequest, 0, len(s.data.approvals))
	for _, r := range s.data.approvals {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return newerFirst(out[i], out[j]) })
	return out, nil
}

func (s *Store) ListPendingApprovalsByCity(ctx context.Context, cityID int64) ([]domain.ApprovalRequest, error) {
	defer s.enter(ctx, false)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.ApprovalRequest{}
	for _, r := range s.data.approvals {
		if r.Status != domain.StatusPending {
			continue
		}
		if m, ok := s.data.municipalities[r.MunicipalityID]; ok && m.CityID == cityID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return newerFirst(out[i], out[j]) })
	return out, nil
}

func (s *Store) FilterApprovals(ctx context.Context, query domain.ApprovalQuery) ([]domain.ApprovalFilterRow, error) {
	defer s.enter(ctx, false)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.ApprovalFilterRow{}
	for _, r := range s.data.approvals {
		row := domain.ApprovalFilterRow{
			RequestID:      r.ID,
			Status:         r.Status,
			RequestedAt:    r.RequestedAt,
			DecidedAt:      r.DecidedAt,
			Justification:  r.Justification,
			MunicipalityID: r.MunicipalityID,
		}
		if m, ok := s.data.municipalities[r.MunicipalityID]; ok {
			row.MayorName, row.TermStart, row.TermEnd = m.MayorName, m.TermStart, m.TermEnd
			if c, ok := s.data.cities[m.CityID]; ok {
				row.CityName, row.StateCode = c.Name, c.StateCode
			}
		}
		if query.Matches(row) {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RequestID < out[j].RequestID })
	return out, nil
}

func (s *Store) SaveApproval(ctx context.Context, r *domain.ApprovalRequest) error {
	defer s.enter(ctx, true)()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.municipalities[r.MunicipalityID]; !ok {
		return fmt.Errorf("%w: municipality %d does not exist", apperrors.ErrValidation, r.MunicipalityID)
	}
	r.ID = s.next("approvals")
	if r.Version == 0 {
		r.Version = 1
	}
	s.data.approvals[r.ID] = *r
	return nil
}

func (s *Store) UpdateApprovalDecision(ctx context.Context, r *domain.ApprovalRequest) error {
	defer s.enter(ctx, true)()
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.data.approvals[r.ID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if stored.Version != r.Version {
		return apperrors.NewConflictError("approval request was modified concurrently")
	}
	stored.Status, stored.DecidedAt, stored.Justification = r.Status, r.DecidedAt, r.Justification
	stored.Version++
	s.data.approvals[r.ID] = stored
	r.Version = stored.Version
	return nil
}

func newerFirst(a, b domain.ApprovalRequest) bool {
	if a.RequestedAt.Equal(b.RequestedAt) {
		return a.ID > b.ID
	}
	return a.RequestedAt.After(b.RequestedAt)
}

// --- municipalities ---

func (s *Store) FindMunicipalityByID(ctx context.Context, id int64) (*domain.Municipality, error) {
	defer s.enter(ctx, false)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.data.municipalities[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if c, ok := s.data.cities[m.CityID]; ok {
		m.City = &c
	}
	return &m, nil
}

func (s *Store) ListMunicipalities(ctx context.Context) ([]domain.Municipality, error) {
	defer s.enter(ctx, false)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Municipality, 0, len(s.data.municipalities))
	for _, m := range s.data.municipalities {
		if c, ok := s.data.cities[m.CityID]; ok {
			m.City = &c
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) FindCityByID(ctx context.Context, id int64) (*domain.City, error) {
	defer s.enter(ctx, false)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.data.cities[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (s *Store) SaveCity(ctx context.Context, c *domain.City) error {
	defer s.enter(ctx, true)()
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.next("cities")
	s.data.cities[c.ID] = *c
	return nil
}

func (s *Store) SaveMunicipality(ctx context.Context, m *domain.Municipality) error {
	defer s.enter(ctx, true)()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.cities[m.CityID]; !ok {
		return fmt.Errorf("%w: city %d does not exist", apperrors.ErrValidation, m.CityID)
	}
	m.ID = s.next("municipalities")
	stored := *m
	stored.City = nil
	s.data.municipalities[m.ID] = stored
	return nil
}

func (s *Store) UpdateMunicipality(ctx context.Context, m domain.Municipality) error {
	defer s.enter(ctx, true)()
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.data.municipalities[m.ID]
	if !ok {
		return apperrors.ErrNotFound
	}
	stored.MayorName, stored.Office, stored.Emails, stored.Phone = m.MayorName, m.Office, m.Emails, m.Phone
	stored.TermStart, stored.TermEnd, stored.UpdatedAt = m.TermStart, m.TermEnd, m.UpdatedAt
	s.data.municipalities[m.ID] = stored
	return nil
}

func (s *Store) UpdateMunicipalityEmails(ctx context.Context, id int64, emails string) error {
	defer s.enter(ctx, true)()
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.data.municipalities[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	stored.Emails = emails
	s.data.municipalities[id] = stored
	return nil
}

// --- email tokens ---

func (s *Store) SaveEmailToken(ctx context.Context, t *domain.EmailToken) error {
	defer s.enter(ctx, true)()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.data.tokens {
		if existing.Hash == t.Hash {
			return apperrors.ErrDuplicate
		}
	}
	t.ID = s.next("tokens")
	s.data.tokens[t.ID] = *t
	return nil
}

func (s *Store) FindActiveEmailToken(ctx context.Context, municipalityID int64, purpose domain.TokenPurpose) (*domain.EmailToken, error) {
	defer s.enter(ctx, false)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	var found *domain.EmailToken
	for _, t := range s.data.tokens {
		if t.MunicipalityID == municipalityID && t.Purpose == purpose && t.Active {
			if found == nil || t.ID > found.ID {
				t := t
				found = &t
			}
		}
	}
	if found == nil {
		return nil, apperrors.ErrNotFound
	}
	return found, nil
}

func (s *Store) DeactivateEmailTokens(ctx context.Context, municipalityID int64, purpose domain.TokenPurpose) error {
	defer s.enter(ctx, true)()
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.data.tokens {
		if t.MunicipalityID == municipalityID && t.Purpose == purpose && t.Active {
			t.Active = false
			s.data.tokens[id] = t
		}
	}
	return nil
}

// EmailTokens returns a copy of every stored token ordered by id.
func (s *Store) EmailTokens() []domain.EmailToken {
	s.txMu.RLock()
	defer s.txMu.RUnlock()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.EmailToken, 0, len(s.data.tokens))
	for _, t := range s.data.tokens {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
