package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/flood_risk_system/internal/geo"
	"github.com/shenikar/flood_risk_system/internal/layers"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Scan оценивает объекты в bbox. Сначала строится поле осадков, затем
// собираются кандидаты по слоям сканирования; сбой слоя не прерывает скан.
func (s *riskService) Scan(ctx context.Context, bbox models.BBox) ([]*models.RiskAssessment, error) {
	if !bbox.Valid() {
		return nil, fmt.Errorf("service: %+v: %w", bbox, ErrInvalidBBox)
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "risk",
		"method":  "Scan",
		"bbox":    bbox,
	})
	start := time.Now()

	field := s.fieldOrEmpty(ctx, log)
	candidates := s.gatherCandidates(ctx, bbox, log)
	results := s.enricher.Enrich(ctx, candidates, field)

	processed := min(len(candidates), s.enricher.batchLimit)
	s.recorder.Scan(time.Since(start), len(candidates), processed, len(results))
	log.WithFields(logrus.Fields{
		"gathered":  len(candidates),
		"processed": processed,
		"returned":  len(results),
	}).Info("Scan completed")

	return results, nil
}

// TopUpdates оценивает территории с наибольшим базовым риском, убирает
// дубликаты по имени и публикует оповещения для высокого риска
func (s *riskService) TopUpdates(ctx context.Context, limit int) ([]*models.RiskAssessment, error) {
	if limit <= 0 {
		limit = s.cfg.TopAreasLimit
	}
	log := s.logger.WithFields(logrus.Fields{"service": "risk", "method": "TopUpdates"})

	areas, _ := layers.Resolve(layers.Areas)
	rows, err := s.repo.TopByBaseline(ctx, areas, "", min(limit, s.enricher.batchLimit))
	if err != nil {
		log.WithError(err).Error("Failed to load top areas")
		return nil, fmt.Errorf("service: could not load top areas: %w", err)
	}

	fc := geo.ToFeatureCollection(rows)
	candidates := make([]Candidate, 0, len(fc.Features))
	for _, f := range fc.Features {
		candidates = append(candidates, Candidate{Layer: areas.Name, Feature: f})
	}

	field := s.fieldOrEmpty(ctx, log)
	results := Dedupe(s.enricher.Enrich(ctx, candidates, field))
	if len(results) > limit {
		results = results[:limit]
	}

	for _, r := range results {
		s.maybeAlert(ctx, r)
	}
	return results, nil
}

func (s *riskService) fieldOrEmpty(ctx context.Context, log *logrus.Entry) models.RainfallField {
	field, err := s.rainfall.Field(ctx)
	if err != nil {
		log.WithError(err).Warn("Rainfall field unavailable, assuming dry conditions")
		s.recorder.LookupFailure("rainfall")
		return models.RainfallField{}
	}
	return field
}

// gatherCandidates набирает до ScanCandidateLimit объектов, чья представительная
// точка лежит внутри bbox
func (s *riskService) gatherCandidates(ctx context.Context, bbox models.BBox, log *logrus.Entry) []Candidate {
	limit := s.cfg.ScanCandidateLimit
	candidates := make([]Candidate, 0, limit)

	for _, name := range layers.ScanLayers {
		if len(candidates) >= limit || ctx.Err() != nil {
			break
		}
		layer, _ := layers.Resolve(name)

		rows, err := s.repo.FeaturesInBBox(ctx, layer, bbox, limit-len(candidates))
		if err != nil {
			log.WithError(err).WithField("layer", name).Warn("Failed to gather scan candidates")
			s.recorder.LookupFailure("layer")
			continue
		}

		for _, row := range rows {
			if len(candidates) >= limit {
				break
			}
			f, ok := geo.ToFeature(row)
			if !ok {
				continue
			}
			pt, ok := geo.RepresentativePoint(f.Geometry)
			if !ok || !bbox.Contains(pt.Lat, pt.Lng) {
				continue
			}
			candidates = append(candidates, Candidate{Layer: layer.Name, Feature: f})
		}
	}
	return candidates
}
