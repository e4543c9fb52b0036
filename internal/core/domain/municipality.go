package domain

import (
	"strings"
	"time"
)

// Office is the elected title of the municipality's head; it selects gendered wording in emails.
type Office string

const (
	OfficeMayor         Office = "Prefeito"
	OfficeMayorFeminine Office = "Prefeita"
)

// IsFeminine reports whether correspondence should use feminine forms.
func (o Office) IsFeminine() bool {
	return strings.EqualFold(string(o), string(OfficeMayorFeminine))
}

// City groups municipalities for dashboard scoping.
type City struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StateName string `json:"stateName"`
	StateCode string `json:"stateCode"`
}

// Municipality is the administration whose registration is reviewed.
type Municipality struct {
	ID             int64      `json:"id"`
	CityID         int64      `json:"cityId"`
	City           *City      `json:"city,omitempty"`
	PoliticalParty string     `json:"politicalParty"`
	MayorName      string     `json:"mayorName"`
	Office         Office     `json:"office"`
	Emails         string     `json:"emails"` // semicolon-delimited
	Phone          string     `json:"phone"`
	TermStart      *time.Time `json:"termStart,omitempty"`
	TermEnd        *time.Time `json:"termEnd,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// Recipients splits Emails on ';', trimming entries and dropping blanks.
func (m Municipality) Recipients() []string {
	parts := strings.Split(m.Emails, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// PrimaryEmail is the first registered recipient, or "" if none.
func (m Municipality) PrimaryEmail() string {
	if r := m.Recipients(); len(r) > 0 {
		return r[0]
	}
	return ""
}

// CityName returns the loaded city's name, or "" when the city was not joined.
func (m Municipality) CityName() string {
	if m.City == nil {
		return ""
	}
	return m.City.Name
}

// MunicipalityEdits carries coordinator corrections applied during approval.
// Zero values mean "keep the stored value".
type MunicipalityEdits struct {
	MayorName string
	Office    Office
	Emails    string
	Phone     string
}

// MergeEdits applies edits onto the stored municipality.
// Political party and city assignment always come from the stored record.
func (m Municipality) MergeEdits(edits MunicipalityEdits) Municipality {
	merged := m
	if edits.MayorName != "" {
		merged.MayorName = edits.MayorName
	}
	if edits.Office != "" {
		merged.Office = edits.Office
	}
	if edits.Emails != "" {
		merged.Emails = edits.Emails
	}
	if edits.Phone != "" {
		merged.Phone = edits.Phone
	}
	return merged
}
