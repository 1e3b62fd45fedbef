package models

import "github.com/twpayne/go-geom"

// LocalGovernmentArea - район местного самоуправления (LGA) с границей в SRID 4326
type LocalGovernmentArea struct {
	ID      int64         `json:"id"`
	Name    string        `json:"name"`
	Polygon *geom.Polygon `json:"-"`
}
