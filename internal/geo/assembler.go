// Package geo приводит строки хранилища к единому виду GeoJSON
// и извлекает из геометрии представительную точку.
package geo

import (
	"bytes"
	"encoding/json"

	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// DecodeGeometry разбирает GeoJSON-геометрию. ok=false для пустой, null,
// некорректной геометрии или геометрии неподдерживаемого типа.
func DecodeGeometry(raw json.RawMessage) (geom.T, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, false
	}

	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(trimmed, &probe); err != nil || probe.Type == "" {
		return nil, false
	}

	var g geom.T
	if err := geojson.Unmarshal(trimmed, &g); err != nil || g == nil {
		return nil, false
	}
	if !Supported(g) {
		return nil, false
	}
	return g, true
}

// Supported - известные движку виды геометрии
func Supported(g geom.T) bool {
	switch g.(type) {
	case *geom.Point, *geom.LineString, *geom.MultiLineString, *geom.Polygon, *geom.MultiPolygon:
		return true
	default:
		return false
	}
}

// ToFeature превращает строку в Feature; ok=false, если геометрия непригодна
func ToFeature(row models.GeometryRow) (*geojson.Feature, bool) {
	g, ok := DecodeGeometry(row.Geometry)
	if !ok {
		return nil, false
	}
	props := make(map[string]any, len(row.Properties))
	for k, v := range row.Properties {
		props[k] = v
	}
	return &geojson.Feature{
		ID:         row.ID,
		Geometry:   g,
		Properties: props,
	}, true
}

// ToFeatureCollection собирает FeatureCollection, молча отбрасывая строки
// без геометрии, без типа или с неразбираемой геометрией. Никогда не падает.
func ToFeatureCollection(rows []models.GeometryRow) *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(rows))}
	for _, row := range rows {
		if f, ok := ToFeature(row); ok {
			fc.Features = append(fc.Features, f)
		}
	}
	return fc
}
