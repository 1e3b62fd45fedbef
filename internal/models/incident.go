package models

import (
	"time"

	"github.com/twpayne/go-geom"
)

// Incident - зарегистрированный инцидент, привязанный к одному району.
// После импорта не изменяется.
type Incident struct {
	ID                    int64      `json:"id"`
	Description           string     `json:"description"`
	Type                  string     `json:"type"`
	Year                  int        `json:"year"`
	DateReported          *time.Time `json:"date_reported,omitempty"`
	LocalGovernmentAreaID int64      `json:"local_government_area_id"`
}

// IncidentPolygon - один простой полигон инцидента. MultiPolygon хранится несколькими строками.
type IncidentPolygon struct {
	ID         int64         `json:"id"`
	IncidentID int64         `json:"incident_id"`
	Polygon    *geom.Polygon `json:"-"`
	// WKT заполняется при чтении из хранилища
	WKT string `json:"polygon"`
}
