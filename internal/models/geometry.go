package models

import (
	"encoding/json"

	"github.com/paulmach/orb"
)

// Location - географическая точка в WGS84
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BBox - прямоугольная область в градусах
type BBox struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// Bound возвращает bbox в виде orb.Bound (X = долгота, Y = широта)
func (b BBox) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.MinLng, b.MinLat},
		Max: orb.Point{b.MaxLng, b.MaxLat},
	}
}

// Contains проверяет, попадает ли точка в bbox (границы включительно)
func (b BBox) Contains(lat, lng float64) bool {
	return b.Bound().Contains(orb.Point{lng, lat})
}

// Valid - непустой bbox с корректными координатами
func (b BBox) Valid() bool {
	return b.MinLat < b.MaxLat && b.MinLng < b.MaxLng &&
		b.MinLat >= -90 && b.MaxLat <= 90 &&
		b.MinLng >= -180 && b.MaxLng <= 180
}

// GeometryRow - строка слоя в том виде, в каком ее отдает хранилище:
// геометрия как GeoJSON и атрибуты без колонки geom
type GeometryRow struct {
	ID         string
	Geometry   json.RawMessage
	Properties map[string]any
}
