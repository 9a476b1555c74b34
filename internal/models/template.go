package models

import (
	"github.com/enroute-travel/itinerary-api/internal/itinerary"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Template struct {
	gorm.Model
	Name      string                                         `json:"name" gorm:"uniqueIndex"`
	CreatedBy string                                         `json:"created_by"`
	Snapshot  datatypes.JSONType[itinerary.TemplateSnapshot] `json:"snapshot"`
}
