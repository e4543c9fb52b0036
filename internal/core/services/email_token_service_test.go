package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
	"github.com/SscSPs/municipal_approval_app/internal/core/services"
	"github.com/SscSPs/municipal_approval_app/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMunicipality(t *testing.T, store *memory.Store) (domain.Municipality, domain.ApprovalRequest) {
	t.Helper()
	ctx := context.Background()
	city := domain.City{Name: "Olinda", StateName: "Pernambuco", StateCode: "PE"}
	require.NoError(t, store.SaveCity(ctx, &city))
	m := domain.Municipality{CityID: city.ID, MayorName: "Ana", Emails: "ana@olinda.pe.gov.br"}
	require.NoError(t, store.SaveMunicipality(ctx, &m))
	r := domain.NewApprovalRequest(m.ID, time.Now())
	require.NoError(t, store.SaveApproval(ctx, &r))
	return m, r
}

func TestEmailTokenService_Issue(t *testing.T) {
	store := memory.NewStore()
	m, r := seedMunicipality(t, store)
	svc := services.NewEmailTokenService(store)

	token := svc.Issue(domain.PurposeMunicipalityApproval, r, m)

	assert.Len(t, token.Hash, 64)
	assert.True(t, token.Active)
	assert.Equal(t, m.ID, token.MunicipalityID)
	require.NotNil(t, token.ApprovalRequestID)
	assert.Equal(t, r.ID, *token.ApprovalRequestID)
	assert.Zero(t, token.ID)
}

func TestEmailTokenService_RegenerateReusesActiveToken(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	m, r := seedMunicipality(t, store)
	svc := services.NewEmailTokenService(store)

	first, err := svc.RegenerateForInvite(ctx, m, r, domain.PurposeMunicipalityApproval, false)
	require.NoError(t, err)
	again, err := svc.RegenerateForInvite(ctx, m, r, domain.PurposeMunicipalityApproval, false)
	require.NoError(t, err)

	assert.Equal(t, first.ID, again.ID)
	assert.Len(t, store.EmailTokens(), 1)
}

func TestEmailTokenService_RegenerateForceNewDeactivatesOld(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	m, r := seedMunicipality(t, store)
	svc := services.NewEmailTokenService(store)

	first, err := svc.RegenerateForInvite(ctx, m, r, domain.PurposeMunicipalityApproval, true)
	require.NoError(t, err)
	second, err := svc.RegenerateForInvite(ctx, m, r, domain.PurposeMunicipalityApproval, true)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	active, err := store.FindActiveEmailToken(ctx, m.ID, domain.PurposeMunicipalityApproval)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)
	tokens := store.EmailTokens()
	require.Len(t, tokens, 2)
	assert.False(t, tokens[0].Active)
}
