package render

import (
	"strings"
	"time"

	"github.com/enroute-travel/itinerary-api/internal/itinerary"
)

const (
	NoActivities = "No activities planned"
	dayDateFmt   = "Monday, January 2, 2006"
)

type GuestCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type DaySection struct {
	Number     int    `json:"number"`
	Header     string `json:"header,omitempty"`
	Date       string `json:"date,omitempty"`
	Activities string `json:"activities"`
	MealPlan   string `json:"meal_plan"`
}

type ChargeLine struct {
	Label       string `json:"label"`
	Count       int64  `json:"count"`
	CostPerHead int64  `json:"cost_per_head"`
	Subtotal    int64  `json:"subtotal"`
}

// Document is the print-ready shape of an itinerary.
type Document struct {
	BookingCode   string       `json:"booking_code"`
	Theme         Theme        `json:"theme"`
	LogoURL       string       `json:"logo_url"`
	GeneratedAt   time.Time    `json:"generated_at"`
	ClientName    string       `json:"client_name"`
	PackageType   string       `json:"package_type"`
	Location      string       `json:"location"`
	Guests        []GuestCount `json:"guests"`
	Days          []DaySection `json:"days"`
	Inclusions    []string     `json:"inclusions"`
	Exclusions    []string     `json:"exclusions"`
	Terms         []string     `json:"terms"`
	Charges       []ChargeLine `json:"charges"`
	PackageAmount int64        `json:"package_amount"`
	IncludeGST    bool         `json:"include_gst"`
	GSTAmount     float64      `json:"gst_amount"`
	TotalAmount   float64      `json:"total_amount"`
}

// Build assembles a document from a finalized itinerary.
func Build(code string, theme Theme, assetBaseURL string, rec itinerary.RecordSnapshot, at time.Time) Document {
	doc := Document{
		BookingCode:   code,
		Theme:         theme,
		LogoURL:       strings.TrimRight(assetBaseURL, "/") + "/" + theme.Logo,
		GeneratedAt:   at,
		ClientName:    rec.ClientName,
		PackageType:   rec.PackageType,
		Location:      rec.Location,
		Days:          []DaySection{},
		Inclusions:    nonNil(rec.Inclusions),
		Exclusions:    nonNil(rec.Exclusions),
		Terms:         nonNil(rec.Terms),
		PackageAmount: rec.PackageAmount,
		IncludeGST:    rec.IncludeGST,
		GSTAmount:     rec.GSTAmount,
		TotalAmount:   rec.TotalAmount,
	}

	for _, tier := range itinerary.Tiers {
		p := rec.Participants.Get(tier)
		doc.Guests = append(doc.Guests, GuestCount{Label: tier.Label(), Count: p.Count})
		doc.Charges = append(doc.Charges, ChargeLine{
			Label:       tier.Label(),
			Count:       p.Count,
			CostPerHead: p.CostPerHead,
			Subtotal:    p.Subtotal(),
		})
	}

	for i, day := range rec.Days {
		sec := DaySection{
			Number:     i + 1,
			Header:     day.Header,
			Activities: day.Activities,
			MealPlan:   day.MealPlan.Label(),
		}
		if strings.TrimSpace(sec.Activities) == "" {
			sec.Activities = NoActivities
		}
		if t, ok := day.Time(); ok {
			sec.Date = t.Format(dayDateFmt)
		}
		doc.Days = append(doc.Days, sec)
	}

	return doc
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
