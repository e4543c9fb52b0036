package domain_test

import (
	"testing"

	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestMunicipality_Recipients(t *testing.T) {
	tests := []struct {
		name        string
		emails      string
		want        []string
		wantPrimary string
	}{
		{name: "single", emails: "gabinete@cidade.gov.br", want: []string{"gabinete@cidade.gov.br"}, wantPrimary: "gabinete@cidade.gov.br"},
		{name: "semicolon list with spaces", emails: " a@x.br ; b@x.br;c@x.br ", want: []string{"a@x.br", "b@x.br", "c@x.br"}, wantPrimary: "a@x.br"},
		{name: "blank entries dropped", emails: "a@x.br;;  ;", want: []string{"a@x.br"}, wantPrimary: "a@x.br"},
		{name: "empty", emails: "", want: []string{}, wantPrimary: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := domain.Municipality{Emails: tt.emails}
			assert.Equal(t, tt.want, m.Recipients())
			assert.Equal(t, tt.wantPrimary, m.PrimaryEmail())
		})
	}
}

func TestMunicipality_MergeEdits(t *testing.T) {
	stored := domain.Municipality{
		ID:             3,
		CityID:         10,
		PoliticalParty: "PARTIDO A",
		MayorName:      "Jose",
		Office:         domain.OfficeMayor,
		Emails:         "old@x.br",
		Phone:          "1111",
	}

	merged := stored.MergeEdits(domain.MunicipalityEdits{
		MayorName: "Maria",
		Office:    domain.OfficeMayorFeminine,
		Emails:    "new@x.br;other@x.br",
	})

	assert.Equal(t, int64(10), merged.CityID)
	assert.Equal(t, "PARTIDO A", merged.PoliticalParty)
	assert.Equal(t, "Maria", merged.MayorName)
	assert.True(t, merged.Office.IsFeminine())
	assert.Equal(t, "new@x.br;other@x.br", merged.Emails)
	assert.Equal(t, "1111", merged.Phone)
	assert.Equal(t, "Jose", stored.MayorName)
}
