package models

import (
	"github.com/enroute-travel/itinerary-api/internal/itinerary"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	BookingConfirmed = "confirmed"
)

// Itinerary is a generated, finalized itinerary. It is written once and only
// ever deleted afterwards.
type Itinerary struct {
	gorm.Model
	BookingCode   string                                       `json:"booking_code" gorm:"uniqueIndex"`
	Username      string                                       `json:"username" gorm:"index"`
	Brand         string                                       `json:"brand"`
	BookingStatus string                                       `json:"booking_status"`
	ClientName    string                                       `json:"client_name"`
	Data          datatypes.JSONType[itinerary.RecordSnapshot] `json:"itinerary_data"`
}
