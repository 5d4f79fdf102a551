// Package rainfall строит грубое поле осадков по одному точечному прогнозу.
// Поле - прокси для приоритизации, а не пространственная интерполяция:
// каждая ячейка получает базовую интенсивность плюс равномерный шум [-1,1].
package rainfall

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/shenikar/flood_risk_system/internal/models"
)

// gridEpsilon гасит ошибку накопления при делении границ на шаг
const gridEpsilon = 1e-9

// GenerateField покрывает bbox сеткой с шагом step градусов (границы включительно).
// Интенсивность ячейки: max(reading.Intensity + uniform(-1,1), 0).
func GenerateField(reading models.RainfallReading, bbox models.BBox, step float64, rng *rand.Rand) models.RainfallField {
	field := models.RainfallField{
		ID:          uuid.New(),
		Origin:      reading.Location,
		GeneratedAt: reading.Time,
		Points:      []models.RainPoint{},
	}
	if step <= 0 || !bbox.Valid() {
		return field
	}

	rows := int(math.Floor((bbox.MaxLat-bbox.MinLat)/step + gridEpsilon))
	cols := int(math.Floor((bbox.MaxLng-bbox.MinLng)/step + gridEpsilon))
	field.Points = make([]models.RainPoint, 0, (rows+1)*(cols+1))

	for i := 0; i <= rows; i++ {
		lat := bbox.MinLat + float64(i)*step
		for j := 0; j <= cols; j++ {
			lng := bbox.MinLng + float64(j)*step
			jitter := rng.Float64()*2 - 1
			field.Points = append(field.Points, models.RainPoint{
				Lat:       lat,
				Lng:       lng,
				Intensity: math.Max(reading.Intensity+jitter, 0),
				Time:      reading.Time,
				Name:      fmt.Sprintf("cell-%d-%d", i, j),
			})
		}
	}
	return field
}

// Nearest возвращает ближайший сэмпл по евклидову расстоянию в градусах.
// При равенстве побеждает первый встреченный. Пустое поле дает нулевую интенсивность и ok=false.
func Nearest(field models.RainfallField, lat, lng float64) (models.RainPoint, bool) {
	if len(field.Points) == 0 {
		return models.RainPoint{Lat: lat, Lng: lng}, false
	}
	target := orb.Point{lng, lat}
	best := 0
	bestDist := math.Inf(1)
	for i, p := range field.Points {
		d := planar.Distance(target, orb.Point{p.Lng, p.Lat})
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return field.Points[best], true
}

// IntensityAt - интенсивность ближайшего сэмпла либо 0
func IntensityAt(field models.RainfallField, lat, lng float64) float64 {
	p, ok := Nearest(field, lat, lng)
	if !ok {
		return 0
	}
	return p.Intensity
}
