package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/flood_risk_system/internal/config"
	"github.com/shenikar/flood_risk_system/internal/geo"
	"github.com/shenikar/flood_risk_system/internal/layers"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/shenikar/flood_risk_system/internal/risk"
	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// SearchLayer ищет объекты слоя по подстроке. Пустой запрос по areas
// возвращает top-N по базовому риску, по остальным слоям - пустой результат.
func (s *riskService) SearchLayer(ctx context.Context, layerName, query, district string, limit int) (*geojson.FeatureCollection, error) {
	layer, ok := layers.Resolve(layerName)
	if !ok {
		return nil, fmt.Errorf("service: layer %q: %w", layerName, ErrUnknownLayer)
	}
	query = strings.TrimSpace(query)
	district = strings.TrimSpace(district)

	log := s.logger.WithFields(logrus.Fields{
		"service": "risk",
		"method":  "SearchLayer",
		"layer":   layer.Name,
		"query":   query,
	})

	if query == "" {
		if layer.HasRiskBaseline {
			return s.TopAreas(ctx, district, limit)
		}
		log.Debug("Empty query on unranked layer, skipping search")
		return geo.ToFeatureCollection(nil), nil
	}

	if limit <= 0 {
		limit = s.cfg.SearchLimit
	}
	limit = min(limit, config.MaxSearchLimit)

	rows, err := s.repo.Search(ctx, layer, query, district, limit)
	if err != nil {
		log.WithError(err).Error("Failed to search layer")
		return nil, fmt.Errorf("service: could not search layer %s: %w", layer.Name, err)
	}

	fc := geo.ToFeatureCollection(rows)
	annotateRisk(fc, layer)
	log.WithField("count", len(fc.Features)).Info("Layer searched")
	return fc, nil
}

// TopAreas возвращает территории с наибольшим базовым риском (null - в конце)
func (s *riskService) TopAreas(ctx context.Context, district string, limit int) (*geojson.FeatureCollection, error) {
	if limit <= 0 {
		limit = s.cfg.TopAreasLimit
	}
	limit = min(limit, config.MaxSearchLimit)
	areas, _ := layers.Resolve(layers.Areas)

	rows, err := s.repo.TopByBaseline(ctx, areas, district, limit)
	if err != nil {
		s.logger.WithError(err).WithField("method", "TopAreas").Error("Failed to load top areas")
		return nil, fmt.Errorf("service: could not load top areas: %w", err)
	}

	fc := geo.ToFeatureCollection(rows)
	annotateRisk(fc, areas)
	return fc, nil
}

// LayerFeatures возвращает объекты слоя в bbox (по умолчанию - весь регион)
func (s *riskService) LayerFeatures(ctx context.Context, layerName string, bbox *models.BBox) (*geojson.FeatureCollection, error) {
	layer, ok := layers.Resolve(layerName)
	if !ok {
		return nil, fmt.Errorf("service: layer %q: %w", layerName, ErrUnknownLayer)
	}
	box, err := s.bboxOrRegion(bbox)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FeaturesInBBox(ctx, layer, box, s.cfg.LayerFeatureLimit)
	if err != nil {
		s.logger.WithError(err).WithField("layer", layer.Name).Error("Failed to load layer features")
		return nil, fmt.Errorf("service: could not load layer %s: %w", layer.Name, err)
	}

	fc := geo.ToFeatureCollection(rows)
	if dropped := len(rows) - len(fc.Features); dropped > 0 {
		s.logger.WithFields(logrus.Fields{"layer": layer.Name, "dropped": dropped}).Debug("Dropped malformed geometry rows")
	}
	return fc, nil
}

// LayerStats считает объекты каждого слоя в bbox
func (s *riskService) LayerStats(ctx context.Context, bbox *models.BBox) (map[string]int64, error) {
	box, err := s.bboxOrRegion(bbox)
	if err != nil {
		return nil, err
	}

	stats := make(map[string]int64, len(layers.Names()))
	for _, name := range layers.Names() {
		layer, _ := layers.Resolve(name)
		n, err := s.repo.CountInBBox(ctx, layer, box)
		if err != nil {
			s.logger.WithError(err).WithField("layer", name).Error("Failed to count layer features")
			return nil, fmt.Errorf("service: could not count layer %s: %w", name, err)
		}
		stats[name] = n
	}
	return stats, nil
}

func (s *riskService) bboxOrRegion(bbox *models.BBox) (models.BBox, error) {
	if bbox == nil {
		return s.region(), nil
	}
	if !bbox.Valid() {
		return models.BBox{}, fmt.Errorf("service: %+v: %w", *bbox, ErrInvalidBBox)
	}
	return *bbox, nil
}

// annotateRisk проставляет каждому объекту свойство risk: базовый риск,
// приведенный к [0,100] и округленный, либо null
func annotateRisk(fc *geojson.FeatureCollection, layer layers.Layer) {
	for _, f := range fc.Features {
		if f.Properties == nil {
			f.Properties = map[string]any{}
		}
		if b := baselineOf(layer, f.Properties); b != nil {
			f.Properties["risk"] = risk.Clamp(*b)
		} else {
			f.Properties["risk"] = nil
		}
	}
}
