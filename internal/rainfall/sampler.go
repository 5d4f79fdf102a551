package rainfall

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/shenikar/flood_risk_system/internal/models"
)

// Sampler собирает поле осадков для региона: сначала прогноз в опорной точке,
// затем разбиение региона на сетку. Поле строится целиком за один вызов.
type Sampler struct {
	source  Source
	origin  models.Location
	region  models.BBox
	step    float64
	newRand func() *rand.Rand
}

// NewSampler создает Sampler
func NewSampler(source Source, origin models.Location, region models.BBox, step float64) *Sampler {
	return &Sampler{
		source: source,
		origin: origin,
		region: region,
		step:   step,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
}

// WithRand подменяет генератор шума (для детерминированных тестов)
func (s *Sampler) WithRand(newRand func() *rand.Rand) *Sampler {
	s.newRand = newRand
	return s
}

// Field запрашивает прогноз и строит новое поле
func (s *Sampler) Field(ctx context.Context) (models.RainfallField, error) {
	reading, err := s.source.Current(ctx, s.origin.Lat, s.origin.Lng)
	if err != nil {
		return models.RainfallField{}, fmt.Errorf("rainfall: fetch origin forecast: %w", err)
	}
	return GenerateField(reading, s.region, s.step, s.newRand()), nil
}
