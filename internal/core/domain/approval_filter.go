package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/municipal_approval_app/internal/apperrors"
)

// DateLayout is the calendar-date format accepted by filters and term dates.
const DateLayout = "2006-01-02"

// FilterField identifies one optional criterion of an approval filter.
type FilterField string

const (
	FilterSubjectNameContains  FilterField = "subjectNameContains"
	FilterStatus               FilterField = "status"
	FilterTermStartOnOrAfter   FilterField = "termStartOnOrAfter"
	FilterTermEndOnOrBefore    FilterField = "termEndOnOrBefore"
	FilterRequestedOnExactDate FilterField = "requestedOnExactDate"
)

// filterFields fixes predicate order so rendered queries are stable.
var filterFields = []FilterField{
	FilterSubjectNameContains,
	FilterStatus,
	FilterTermStartOnOrAfter,
	FilterTermEndOnOrBefore,
	FilterRequestedOnExactDate,
}

// PredicateOp is the comparison a Predicate performs.
type PredicateOp string

const (
	OpContainsFold   PredicateOp = "contains_fold"
	OpEquals         PredicateOp = "eq"
	OpDateOnOrAfter  PredicateOp = "date_gte"
	OpDateOnOrBefore PredicateOp = "date_lte"
	OpDateEquals     PredicateOp = "date_eq"
)

// Predicate is one condition of an ApprovalQuery. Value holds a lower-cased
// string for OpContainsFold, an ApprovalStatus for OpEquals and a
// midnight-UTC time.Time for the date ops.
type Predicate struct {
	Field FilterField
	Op    PredicateOp
	Value any
}

// ApprovalQuery is a conjunction of predicates. The zero value matches everything.
type ApprovalQuery struct {
	Predicates []Predicate
}

// IsEmpty reports whether the query has no predicates.
func (q ApprovalQuery) IsEmpty() bool { return len(q.Predicates) == 0 }

// Matches evaluates every predicate against row.
func (q ApprovalQuery) Matches(row ApprovalFilterRow) bool {
	for _, p := range q.Predicates {
		if !p.Matches(row) {
			return false
		}
	}
	return true
}

// Matches evaluates the predicate in memory with the same semantics the SQL rendering uses.
func (p Predicate) Matches(row ApprovalFilterRow) bool {
	switch p.Field {
	case FilterSubjectNameContains:
		needle, _ := p.Value.(string)
		return strings.Contains(strings.ToLower(row.CityName), needle)
	case FilterStatus:
		return row.Status == p.Value
	case FilterTermStartOnOrAfter:
		return compareDate(row.TermStart, p)
	case FilterTermEndOnOrBefore:
		return compareDate(row.TermEnd, p)
	case FilterRequestedOnExactDate:
		return compareDate(&row.RequestedAt, p)
	}
	return false
}

func compareDate(stored *time.Time, p Predicate) bool {
	if stored == nil {
		return false
	}
	want, ok := p.Value.(time.Time)
	if !ok {
		return false
	}
	got := TruncateToDate(*stored)
	switch p.Op {
	case OpDateOnOrAfter:
		return !got.Before(want)
	case OpDateOnOrBefore:
		return !got.After(want)
	case OpDateEquals:
		return got.Equal(want)
	}
	return false
}

// TruncateToDate keeps the calendar date of t (in t's own location) as midnight UTC.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a yyyy-MM-dd string into midnight UTC.
func ParseDate(raw string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(raw))
}

// ApprovalFilterCriteria holds the raw, optional filter inputs. Blank fields are ignored.
type ApprovalFilterCriteria struct {
	SubjectNameContains  string `json:"subjectNameContains" form:"subjectNameContains"`
	Status               string `json:"status" form:"status"`
	TermStartOnOrAfter   string `json:"termStartOnOrAfter" form:"termStartOnOrAfter"`
	TermEndOnOrBefore    string `json:"termEndOnOrBefore" form:"termEndOnOrBefore"`
	RequestedOnExactDate string `json:"requestedOnExactDate" form:"requestedOnExactDate"`
}

func (c ApprovalFilterCriteria) value(f FilterField) string {
	switch f {
	case FilterSubjectNameContains:
		return c.SubjectNameContains
	case FilterStatus:
		return c.Status
	case FilterTermStartOnOrAfter:
		return c.TermStartOnOrAfter
	case FilterTermEndOnOrBefore:
		return c.TermEndOnOrBefore
	case FilterRequestedOnExactDate:
		return c.RequestedOnExactDate
	}
	return ""
}

type predicateBuilder func(field FilterField, raw string) (Predicate, error)

var predicateBuilders = map[FilterField]predicateBuilder{
	FilterSubjectNameContains:  containsFold,
	FilterStatus:               statusEquals,
	FilterTermStartOnOrAfter:   dateBuilder(OpDateOnOrAfter),
	FilterTermEndOnOrBefore:    dateBuilder(OpDateOnOrBefore),
	FilterRequestedOnExactDate: dateBuilder(OpDateEquals),
}

func containsFold(field FilterField, raw string) (Predicate, error) {
	return Predicate{Field: field, Op: OpContainsFold, Value: strings.ToLower(raw)}, nil
}

func statusEquals(field FilterField, raw string) (Predicate, error) {
	status, err := ParseApprovalStatus(raw)
	if err != nil {
		return Predicate{}, apperrors.NewInvalidFilterError(string(field), raw)
	}
	return Predicate{Field: field, Op: OpEquals, Value: status}, nil
}

func dateBuilder(op PredicateOp) predicateBuilder {
	return func(field FilterField, raw string) (Predicate, error) {
		d, err := ParseDate(raw)
		if err != nil {
			return Predicate{}, apperrors.NewInvalidFilterError(string(field), raw)
		}
		return Predicate{Field: field, Op: op, Value: d}, nil
	}
}

// BuildApprovalQuery turns criteria into a query, one predicate per non-blank field.
func BuildApprovalQuery(c ApprovalFilterCriteria) (ApprovalQuery, error) {
	var q ApprovalQuery
	for _, field := range filterFields {
		raw := strings.TrimSpace(c.value(field))
		if raw == "" {
			continue
		}
		p, err := predicateBuilders[field](field, raw)
		if err != nil {
			return ApprovalQuery{}, err
		}
		q.Predicates = append(q.Predicates, p)
	}
	return q, nil
}

// ApprovalFilterRow is the flat projection returned by filtering.
type ApprovalFilterRow struct {
	RequestID      int64          `json:"requestId"`
	Status         ApprovalStatus `json:"status"`
	RequestedAt    time.Time      `json:"requestedAt"`
	DecidedAt      *time.Time     `json:"decidedAt,omitempty"`
	Justification  *string        `json:"justification,omitempty"`
	MunicipalityID int64          `json:"municipalityId"`
	MayorName      string         `json:"mayorName"`
	CityName       string         `json:"cityName"`
	StateCode      string         `json:"stateCode"`
	TermStart      *time.Time     `json:"termStart,omitempty"`
	TermEnd        *time.Time     `json:"termEnd,omitempty"`
}
