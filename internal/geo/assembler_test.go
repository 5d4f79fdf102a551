package geo

import (
	"encoding/json"
	"testing"

	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []models.GeometryRow {
	return []models.GeometryRow{
		{ID: "1", Geometry: json.RawMessage(`{"type":"Point","coordinates":[34.0,-15.0]}`), Properties: map[string]any{"name": "Chikwawa"}},
		{ID: "2", Geometry: json.RawMessage(`{"type":"LineString","coordinates":[[34,-15],[34.1,-15.1],[34.2,-15.2]]}`), Properties: map[string]any{"waterway": "river"}},
		{ID: "3", Geometry: json.RawMessage(`{"type":"Polygon","coordinates":[[[33,-14],[33.5,-14],[33.5,-14.5],[33,-14]]]}`)},
		{ID: "4", Geometry: json.RawMessage(`{"type":"MultiPolygon","coordinates":[[[[35,-16],[35.2,-16],[35.2,-16.2],[35,-16]]]]}`)},
	}
}

func TestToFeatureCollection_ValidRows(t *testing.T) {
	fc := ToFeatureCollection(sampleRows())
	require.Len(t, fc.Features, 4)
	assert.Equal(t, "1", fc.Features[0].ID)
	assert.Equal(t, "Chikwawa", fc.Features[0].Properties["name"])
}

func TestToFeatureCollection_DropsMalformed(t *testing.T) {
	rows := append(sampleRows(),
		models.GeometryRow{ID: "null", Geometry: json.RawMessage(`null`)},
		models.GeometryRow{ID: "missing"},
		models.GeometryRow{ID: "no-type", Geometry: json.RawMessage(`{"coordinates":[1,2]}`)},
		models.GeometryRow{ID: "broken", Geometry: json.RawMessage(`{"type":"Point","coordinates":`)},
		models.GeometryRow{ID: "unsupported", Geometry: json.RawMessage(`{"type":"MultiPoint","coordinates":[[1,2]]}`)},
	)

	var fc = ToFeatureCollection(rows)
	assert.Len(t, fc.Features, 4)
	for _, f := range fc.Features {
		assert.NotNil(t, f.Geometry)
	}
}

func TestToFeatureCollection_NullGeometryDropsOne(t *testing.T) {
	rows := sampleRows()
	rows[1].Geometry = nil

	fc := ToFeatureCollection(rows)
	assert.Len(t, fc.Features, len(rows)-1)
}

func TestToFeatureCollection_Idempotent(t *testing.T) {
	first, err := json.Marshal(ToFeatureCollection(sampleRows()))
	require.NoError(t, err)
	second, err := json.Marshal(ToFeatureCollection(sampleRows()))
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(second))
}

func TestToFeatureCollection_EmptyInput(t *testing.T) {
	fc := ToFeatureCollection(nil)
	require.NotNil(t, fc.Features)

	data, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(data))
}

func TestToFeature_CopiesProperties(t *testing.T) {
	row := sampleRows()[0]
	f, ok := ToFeature(row)
	require.True(t, ok)

	f.Properties["risk"] = 90
	_, leaked := row.Properties["risk"]
	assert.False(t, leaked)
}
