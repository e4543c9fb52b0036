package notifications

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
	portssvc "github.com/SscSPs/municipal_approval_app/internal/core/ports/services"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	ApprovalSubject  = "Aprovação no PCS!"
	RejectionSubject = "Reprovação no PCS!"
)

// Signature identifies the coordinator signing outgoing messages.
type Signature struct {
	Name         string
	ContactPhone string
	ContactEmail string
}

// Composer renders the workflow emails from embedded templates.
type Composer struct {
	tmpl      *template.Template
	signature Signature
}

var _ portssvc.EmailComposer = (*Composer)(nil)

// NewComposer parses the embedded templates.
func NewComposer(signature Signature) (*Composer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing email templates: %w", err)
	}
	return &Composer{tmpl: tmpl, signature: signature}, nil
}

type messageView struct {
	Feminine      bool
	MayorName     string
	CityName      string
	StateName     string
	FormLink      string
	PortalURL     string
	Justification string
	SignatureName string
	ContactPhone  string
	ContactEmail  string
}

func (c *Composer) view(m domain.Municipality, portalURL string) messageView {
	v := messageView{
		Feminine:      m.Office.IsFeminine(),
		MayorName:     m.MayorName,
		PortalURL:     portalURL,
		SignatureName: c.signature.Name,
		ContactPhone:  c.signature.ContactPhone,
		ContactEmail:  c.signature.ContactEmail,
	}
	if m.City != nil {
		v.CityName = m.City.Name
		v.StateName = m.City.StateName
	}
	return v
}

// ComposeApproval renders the welcome message with the delegate form link.
func (c *Composer) ComposeApproval(data portssvc.ApprovalEmail) (string, string, error) {
	v := c.view(data.Municipality, data.PortalURL)
	v.FormLink = data.FormLink
	body, err := c.render("approval", v)
	return ApprovalSubject, body, err
}

// ComposeRejection renders the refusal message carrying the justification.
func (c *Composer) ComposeRejection(data portssvc.RejectionEmail) (string, string, error) {
	v := c.view(data.Municipality, data.PortalURL)
	v.Justification = data.Justification
	body, err := c.render("rejection", v)
	return RejectionSubject, body, err
}

func (c *Composer) render(name string, v messageView) (string, error) {
	var buf bytes.Buffer
	if err := c.tmpl.ExecuteTemplate(&buf, name, v); err != nil {
		return "", fmt.Errorf("rendering %s email: %w", name, err)
	}
	return buf.String(), nil
}
