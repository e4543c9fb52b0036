package notifications

import (
	"testing"

	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
	portssvc "github.com/SscSPs/municipal_approval_app/internal/core/ports/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func municipality(office domain.Office) domain.Municipality {
	return domain.Municipality{
		MayorName: "Ana Souza",
		Office:    office,
		City:      &domain.City{Name: "Recife", StateName: "Pernambuco"},
	}
}

func TestComposer_ComposeApproval(t *testing.T) {
	c, err := NewComposer(Signature{Name: "Coordenação PCS", ContactEmail: "contato@cidades.org.br"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		office   domain.Office
		contains []string
		excludes []string
	}{
		{
			name:     "masculine wording",
			office:   domain.OfficeMayor,
			contains: []string{"Ao<br />", "Prezado Ana Souza", "bem-vindo", "o senhor"},
			excludes: []string{"Prezada", "bem-vinda"},
		},
		{
			name:     "feminine wording",
			office:   domain.OfficeMayorFeminine,
			contains: []string{"À<br />", "Prefeita de Recife, Pernambuco", "Prezada Ana Souza", "bem-vinda", "a senhora"},
			excludes: []string{"Prezado", "bem-vindo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, body, err := c.ComposeApproval(portssvc.ApprovalEmail{
				Municipality: municipality(tt.office),
				FormLink:     "https://pcs.example/add-responsavel?token=abc123",
				PortalURL:    "https://pcs.example",
			})
			require.NoError(t, err)
			assert.Equal(t, ApprovalSubject, subject)
			assert.Contains(t, body, "https://pcs.example/add-responsavel?token=abc123")
			assert.Contains(t, body, "Coordenação PCS")
			for _, s := range tt.contains {
				assert.Contains(t, body, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, body, s)
			}
		})
	}
}

func TestComposer_ComposeRejection(t *testing.T) {
	c, err := NewComposer(Signature{ContactPhone: "(11) 3894-2400"})
	require.NoError(t, err)

	subject, body, err := c.ComposeRejection(portssvc.RejectionEmail{
		Municipality:  municipality(domain.OfficeMayor),
		Justification: "budget <concerns>",
		PortalURL:     "https://pcs.example",
	})

	require.NoError(t, err)
	assert.Equal(t, RejectionSubject, subject)
	assert.Contains(t, body, "Ao Prefeito de Recife/Pernambuco")
	assert.Contains(t, body, "budget &lt;concerns&gt;")
	assert.Contains(t, body, "(11) 3894-2400")
}
