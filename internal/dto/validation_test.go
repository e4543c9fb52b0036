package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmailList(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"gabinete@rio.gov.br", true},
		{"gabinete@rio.gov.br; ana@rio.gov.br", true},
		{"gabinete@rio.gov.br;;ana@rio.gov.br;", true},
		{"", false},
		{" ; ", false},
		{"gabinete@rio.gov.br; not-an-email", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEmailList(tt.raw))
		})
	}
}

func TestMunicipalityEditsRequest_ToDomain(t *testing.T) {
	edits := MunicipalityEditsRequest{MayorName: "Ana", Office: "Prefeita"}.ToDomain()

	assert.Equal(t, "Ana", edits.MayorName)
	assert.True(t, edits.Office.IsFeminine())
	assert.Empty(t, edits.Emails)
}
