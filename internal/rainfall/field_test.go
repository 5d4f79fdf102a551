package rainfall

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var malawi = models.BBox{MinLat: -16.0, MaxLat: -9.25, MinLng: 32.67, MaxLng: 35.92}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 7))
}

func TestGenerateField_GridShape(t *testing.T) {
	reading := models.RainfallReading{
		Location:  models.Location{Lat: -13.9626, Lng: 33.75},
		Intensity: 2.5,
		Time:      time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	field := GenerateField(reading, malawi, 0.7, testRand())

	// 10 рядов по широте, 5 колонок по долготе
	require.Len(t, field.Points, 50)
	assert.Equal(t, reading.Location, field.Origin)
	assert.InDelta(t, -16.0, field.Points[0].Lat, 1e-9)
	assert.InDelta(t, 32.67, field.Points[0].Lng, 1e-9)

	for _, p := range field.Points {
		assert.True(t, malawi.Contains(p.Lat, p.Lng), "point %v,%v outside region", p.Lat, p.Lng)
		assert.GreaterOrEqual(t, p.Intensity, 1.5)
		assert.LessOrEqual(t, p.Intensity, 3.5)
		assert.Equal(t, reading.Time, p.Time)
	}
}

func TestGenerateField_InclusiveBounds(t *testing.T) {
	bbox := models.BBox{MinLat: 0, MaxLat: 1, MinLng: 0, MaxLng: 1}
	field := GenerateField(models.RainfallReading{}, bbox, 0.1, testRand())

	// 0.0 .. 1.0 включительно по обеим осям
	assert.Len(t, field.Points, 121)
}

func TestGenerateField_NeverNegative(t *testing.T) {
	field := GenerateField(models.RainfallReading{Intensity: 0}, malawi, 0.5, testRand())
	require.NotEmpty(t, field.Points)
	for _, p := range field.Points {
		assert.GreaterOrEqual(t, p.Intensity, 0.0)
	}
}

func TestGenerateField_InvalidInput(t *testing.T) {
	assert.Empty(t, GenerateField(models.RainfallReading{}, malawi, 0, testRand()).Points)
	assert.Empty(t, GenerateField(models.RainfallReading{}, models.BBox{}, 0.7, testRand()).Points)
}

func TestNearest(t *testing.T) {
	field := models.RainfallField{Points: []models.RainPoint{
		{Lat: 0, Lng: 0, Intensity: 1},
		{Lat: 1, Lng: 1, Intensity: 2},
		{Lat: -1, Lng: -1, Intensity: 3},
	}}

	p, ok := Nearest(field, 0.9, 0.8)
	require.True(t, ok)
	assert.Equal(t, 2.0, p.Intensity)

	p, ok = Nearest(field, -2, -2)
	require.True(t, ok)
	assert.Equal(t, 3.0, p.Intensity)
}

func TestNearest_TieGoesToFirst(t *testing.T) {
	field := models.RainfallField{Points: []models.RainPoint{
		{Lat: 1, Lng: 0, Intensity: 5},
		{Lat: -1, Lng: 0, Intensity: 9},
	}}

	p, ok := Nearest(field, 0, 0)
	require.True(t, ok)
	assert.Equal(t, 5.0, p.Intensity)
}

func TestNearest_EmptyField(t *testing.T) {
	p, ok := Nearest(models.RainfallField{}, -15, 34)
	assert.False(t, ok)
	assert.Equal(t, 0.0, p.Intensity)
	assert.Equal(t, 0.0, IntensityAt(models.RainfallField{}, -15, 34))
}
