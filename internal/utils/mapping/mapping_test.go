package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
	"github.com/SscSPs/municipal_approval_app/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestToDomainApprovalFilterRows_MissingCity(t *testing.T) {
	city := "Recife"
	rows := ToDomainApprovalFilterRows([]models.ApprovalFilterRow{
		{RequestID: 1, Status: "Pending", CityName: &city},
		{RequestID: 2, Status: "Rejected"},
	})

	assert.Equal(t, "Recife", rows[0].CityName)
	assert.Equal(t, domain.StatusPending, rows[0].Status)
	assert.Equal(t, "", rows[1].CityName)
	assert.Equal(t, domain.StatusRejected, rows[1].Status)
}

func TestToDomainMunicipality_AttachesCity(t *testing.T) {
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	m := ToDomainMunicipality(models.Municipality{
		ID: 4, CityID: 9, MayorName: "Ana", Office: "Prefeita", TermStart: &start,
		CityName: "Olinda", CityStateName: "Pernambuco", CityStateCode: "PE",
	})

	assert.Equal(t, "Olinda", m.CityName())
	assert.Equal(t, int64(9), m.City.ID)
	assert.True(t, m.Office.IsFeminine())
	assert.Equal(t, &start, m.TermStart)
}
