package service

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"github.com/shenikar/flood_risk_system/internal/config"
	"github.com/shenikar/flood_risk_system/internal/geo"
	"github.com/shenikar/flood_risk_system/internal/layers"
	"github.com/shenikar/flood_risk_system/internal/metrics"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/shenikar/flood_risk_system/internal/rainfall"
	"github.com/shenikar/flood_risk_system/internal/risk"
	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom/encoding/geojson"
	"golang.org/x/sync/errgroup"
)

// Candidate - объект слоя, который нужно оценить
type Candidate struct {
	Layer   string
	Feature *geojson.Feature
}

// Enricher превращает кандидатов в ранжированный список оценок риска.
// Поиски по кандидатам независимы и выполняются параллельно; сбой одного
// кандидата деградирует только его оценку.
type Enricher struct {
	repo          SpatialRepository
	recorder      *metrics.Recorder
	logger        *logrus.Logger
	concurrency   int
	lookupTimeout time.Duration
	batchLimit    int
	now           func() time.Time
}

// NewEnricher создает Enricher
func NewEnricher(repo SpatialRepository, recorder *metrics.Recorder, cfg *config.Config, logger *logrus.Logger) *Enricher {
	return &Enricher{
		repo:          repo,
		recorder:      recorder,
		logger:        logger,
		concurrency:   max(cfg.EnrichConcurrency, 1),
		lookupTimeout: cfg.LookupTimeout,
		batchLimit:    max(cfg.ScanBatchLimit, 1),
		now:           time.Now,
	}
}

// Enrich оценивает не более batchLimit кандидатов; лишние отбрасываются.
// При отмене ctx уже готовые оценки сохраняются. Результат отсортирован по риску.
func (e *Enricher) Enrich(ctx context.Context, candidates []Candidate, field models.RainfallField) []*models.RiskAssessment {
	if len(candidates) > e.batchLimit {
		e.logger.WithFields(logrus.Fields{
			"candidates": len(candidates),
			"limit":      e.batchLimit,
		}).Debug("Dropping candidates over batch limit")
		candidates = candidates[:e.batchLimit]
	}

	now := e.now().UTC()
	results := make([]*models.RiskAssessment, len(candidates))

	var g errgroup.Group
	g.SetLimit(e.concurrency)
	for i, c := range candidates {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			results[i] = e.assess(ctx, c, field, now)
			return nil
		})
	}
	_ = g.Wait()

	out := make([]*models.RiskAssessment, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	Rank(out)
	return out
}

// assess оценивает одного кандидата; nil, если у геометрии нет представительной точки
func (e *Enricher) assess(ctx context.Context, c Candidate, field models.RainfallField, now time.Time) *models.RiskAssessment {
	if c.Feature == nil {
		return nil
	}
	pt, ok := geo.RepresentativePoint(c.Feature.Geometry)
	if !ok {
		return nil
	}
	layer, _ := layers.Resolve(c.Layer)
	log := e.logger.WithFields(logrus.Fields{"layer": layer.Name, "feature_id": c.Feature.ID})

	rain := rainfall.IntensityAt(field, pt.Lat, pt.Lng)

	live := true
	distance, err := e.nearestWater(ctx, pt)
	if err != nil {
		log.WithError(err).Warn("Nearest water lookup failed, falling back")
		e.recorder.LookupFailure("water")
		live = false
	}

	area, err := e.containingArea(ctx, pt)
	if err != nil {
		log.WithError(err).Warn("Containing area lookup failed")
		e.recorder.LookupFailure("area")
		area = nil
	}

	var score *int
	source := "live"
	switch {
	case live:
		v := risk.Score(distance, rain)
		score = &v
	default:
		if b := baselineOf(layer, c.Feature.Properties); b != nil {
			v := risk.Clamp(*b)
			score = &v
			source = "baseline"
		} else {
			source = "none"
		}
	}

	tier, advice := risk.Advise(score)
	e.recorder.Assessment(tier, source)

	a := &models.RiskAssessment{
		FeatureID:               c.Feature.ID,
		Layer:                   layer.Name,
		Name:                    stringProp(c.Feature.Properties, layer.NameColumn, "name", "name_en"),
		Location:                pt,
		DistanceToNearestWaterM: distance,
		RainfallMm:              rain,
		RiskScore:               score,
		Tier:                    tier,
		Advice:                  advice,
		ContainingArea:          area,
		AssessedAt:              now,
		PredictedFloodDate:      risk.PredictFloodDate(score, now),
	}
	if !live {
		a.DistanceToNearestWaterM = nil
	}
	return a
}

// nearestWater и containingArea получают каждый свой таймаут
func (e *Enricher) nearestWater(ctx context.Context, pt models.Location) (*float64, error) {
	lookupCtx, cancel := e.lookupContext(ctx)
	defer cancel()
	return e.repo.NearestWaterDistance(lookupCtx, pt.Lat, pt.Lng)
}

func (e *Enricher) containingArea(ctx context.Context, pt models.Location) (*models.AreaRef, error) {
	lookupCtx, cancel := e.lookupContext(ctx)
	defer cancel()
	return e.repo.ContainingArea(lookupCtx, pt.Lat, pt.Lng)
}

func (e *Enricher) lookupContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.lookupTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.lookupTimeout)
}

// Rank сортирует оценки по убыванию риска; nil считается наименьшим. Сортировка стабильная.
func Rank(items []*models.RiskAssessment) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].RiskScore, items[j].RiskScore
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a > *b
		}
	})
}

// Dedupe оставляет первое вхождение каждого имени территории.
// Оценки без имени не схлопываются.
func Dedupe(items []*models.RiskAssessment) []*models.RiskAssessment {
	seen := make(map[string]struct{}, len(items))
	out := make([]*models.RiskAssessment, 0, len(items))
	for _, it := range items {
		name := it.AreaName()
		if name != "" {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
		}
		out = append(out, it)
	}
	return out
}

// baselineOf достает сохраненный базовый риск объекта, если слой его хранит
func baselineOf(layer layers.Layer, props map[string]any) *float64 {
	if !layer.HasRiskBaseline {
		return nil
	}
	return numberProp(props, layer.BaselineColumn)
}

func numberProp(props map[string]any, key string) *float64 {
	if key == "" {
		return nil
	}
	var f float64
	switch v := props[key].(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	return &f
}

func stringProp(props map[string]any, keys ...string) string {
	for _, k := range keys {
		if k == "" {
			continue
		}
		if s, ok := props[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
