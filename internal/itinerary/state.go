package itinerary

import (
	"strconv"
	"strings"
)

// State is the full editable form of one itinerary.
type State struct {
	ClientName  string    `json:"clientName"`
	PackageType string    `json:"packageType"`
	Location    string    `json:"location"`
	Days        Days      `json:"days"`
	Pricing     Pricing   `json:"pricing"`
	Inclusions  Checklist `json:"inclusions"`
	Exclusions  Checklist `json:"exclusions"`
	Terms       Checklist `json:"terms"`
}

// NewState returns a blank form with one undated day and checklists seeded
// from the defaults plus the given custom items per category.
func NewState(custom map[Category][]string) State {
	return State{
		Days:       NewDays(),
		Inclusions: NewChecklist(Inclusions, custom[Inclusions]),
		Exclusions: NewChecklist(Exclusions, custom[Exclusions]),
		Terms:      NewChecklist(Terms, custom[Terms]),
	}
}

// Checklist returns a pointer to the list for c.
func (s *State) Checklist(c Category) (*Checklist, error) {
	switch c {
	case Inclusions:
		return &s.Inclusions, nil
	case Exclusions:
		return &s.Exclusions, nil
	case Terms:
		return &s.Terms, nil
	}
	_, err := ParseCategory(string(c))
	return nil, err
}

func (s State) Clone() State {
	s.Days = s.Days.Clone()
	s.Inclusions = s.Inclusions.Clone()
	s.Exclusions = s.Exclusions.Clone()
	s.Terms = s.Terms.Clone()
	return s
}

// TemplateName is "<location> - <packageType>". ok is false unless both are set.
func (s State) TemplateName() (name string, ok bool) {
	loc := strings.TrimSpace(s.Location)
	pkg := strings.TrimSpace(s.PackageType)
	if loc == "" || pkg == "" {
		return "", false
	}
	return loc + " - " + pkg, true
}

// TemplateSnapshot is the reusable part of a form, stored under its name.
type TemplateSnapshot struct {
	Location      string       `json:"location"`
	PackageType   string       `json:"packageType"`
	Days          Days         `json:"days"`
	Participants  Participants `json:"participants"`
	Inclusions    Checklist    `json:"inclusions"`
	Exclusions    Checklist    `json:"exclusions"`
	Terms         Checklist    `json:"terms"`
	IncludeGST    bool         `json:"includeGST"`
	IsManualTotal bool         `json:"isManualTotal"`
	PackageAmount int64        `json:"packageAmount"`
}

func (s State) TemplateSnapshot() TemplateSnapshot {
	c := s.Clone()
	return TemplateSnapshot{
		Location:      c.Location,
		PackageType:   c.PackageType,
		Days:          c.Days,
		Participants:  c.Pricing.Participants,
		Inclusions:    c.Inclusions,
		Exclusions:    c.Exclusions,
		Terms:         c.Terms,
		IncludeGST:    c.Pricing.IncludeGST,
		IsManualTotal: c.Pricing.IsManualTotal,
		PackageAmount: c.Pricing.PackageAmount,
	}
}

// ApplyTemplate replaces every templated field of the form. The client name
// is not part of a template and is left as is.
func (s *State) ApplyTemplate(t TemplateSnapshot) {
	manual := ""
	if t.IsManualTotal {
		manual = strconv.FormatInt(t.PackageAmount, 10)
	}
	s.Location = t.Location
	s.PackageType = t.PackageType
	s.Days = t.Days.Clone()
	s.Pricing = Pricing{
		Participants:  t.Participants,
		IncludeGST:    t.IncludeGST,
		IsManualTotal: t.IsManualTotal,
		PackageAmount: t.PackageAmount,
		ManualAmount:  manual,
	}
	s.Inclusions = t.Inclusions.Clone()
	s.Exclusions = t.Exclusions.Clone()
	s.Terms = t.Terms.Clone()
}

// RecordSnapshot is the finalized itinerary stored with a booking. Only
// checked checklist items are kept.
type RecordSnapshot struct {
	ClientName    string       `json:"clientName"`
	PackageType   string       `json:"packageType"`
	Location      string       `json:"location"`
	Days          Days         `json:"days"`
	Participants  Participants `json:"participants"`
	Inclusions    []string     `json:"inclusions"`
	Exclusions    []string     `json:"exclusions"`
	Terms         []string     `json:"terms"`
	IncludeGST    bool         `json:"includeGST"`
	PackageAmount int64        `json:"packageAmount"`
	GSTAmount     float64      `json:"gstAmount"`
	TotalAmount   float64      `json:"totalAmount"`
}

func (s State) RecordSnapshot() RecordSnapshot {
	return RecordSnapshot{
		ClientName:    s.ClientName,
		PackageType:   s.PackageType,
		Location:      s.Location,
		Days:          s.Days.Clone(),
		Participants:  s.Pricing.Participants,
		Inclusions:    s.Inclusions.Checked(),
		Exclusions:    s.Exclusions.Checked(),
		Terms:         s.Terms.Checked(),
		IncludeGST:    s.Pricing.IncludeGST,
		PackageAmount: s.Pricing.PackageAmount,
		GSTAmount:     s.Pricing.GSTAmount(),
		TotalAmount:   s.Pricing.TotalAmount(),
	}
}

// MatchesSearch reports whether query is a case-insensitive substring of any
// of fields. An empty query matches everything.
func MatchesSearch(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
