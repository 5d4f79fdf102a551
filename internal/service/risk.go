package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/shenikar/flood_risk_system/internal/rainfall"
	"github.com/shenikar/flood_risk_system/internal/risk"
	"github.com/sirupsen/logrus"
)

// RiskAt оценивает риск в точке. Если rainfall не передан, берется ближайший
// сэмпл свежего поля осадков (0, если поле недоступно).
func (s *riskService) RiskAt(ctx context.Context, lat, lng float64, rainfallMm *float64) (*models.RiskAssessment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "risk",
		"method":  "RiskAt",
		"lat":     lat,
		"lng":     lng,
	})

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, fmt.Errorf("service: lat=%v lng=%v: %w", lat, lng, ErrInvalidLocation)
	}

	var rain float64
	if rainfallMm != nil {
		rain = *rainfallMm
	} else {
		field, err := s.rainfall.Field(ctx)
		if err != nil {
			log.WithError(err).Warn("Rainfall field unavailable, assuming dry conditions")
			s.recorder.LookupFailure("rainfall")
		} else {
			rain = rainfall.IntensityAt(field, lat, lng)
		}
	}
	if rain < 0 {
		rain = 0
	}

	distance, err := s.repo.NearestWaterDistance(ctx, lat, lng)
	if err != nil {
		log.WithError(err).Error("Failed to find nearest watercourse")
		s.recorder.LookupFailure("water")
		return nil, fmt.Errorf("service: could not compute distance to water: %w", err)
	}

	area, err := s.repo.ContainingArea(ctx, lat, lng)
	if err != nil {
		log.WithError(err).Warn("Containing area lookup failed")
		s.recorder.LookupFailure("area")
		area = nil
	}

	score := risk.Score(distance, rain)
	tier, advice := risk.Advise(&score)
	now := s.now().UTC()

	assessment := &models.RiskAssessment{
		Location:                models.Location{Lat: lat, Lng: lng},
		DistanceToNearestWaterM: distance,
		RainfallMm:              rain,
		RiskScore:               &score,
		Tier:                    tier,
		Advice:                  advice,
		ContainingArea:          area,
		AssessedAt:              now,
		PredictedFloodDate:      risk.PredictFloodDate(&score, now),
	}
	if area != nil {
		assessment.Name = area.Name
	}
	s.recorder.Assessment(tier, "live")

	log.WithFields(logrus.Fields{"risk": score, "tier": tier}).Info("Risk assessed")

	s.maybeAlert(ctx, assessment)
	return assessment, nil
}

// maybeAlert публикует оповещение для оценки выше порога. Ошибка публикации не фатальна.
func (s *riskService) maybeAlert(ctx context.Context, a *models.RiskAssessment) {
	if s.publisher == nil || a.RiskScore == nil || *a.RiskScore < s.cfg.AlertMinRisk {
		return
	}

	event := models.AlertEvent{
		ID:        uuid.New(),
		Level:     a.Tier,
		Area:      a.AreaName(),
		Risk:      *a.RiskScore,
		Message:   a.Advice,
		Location:  a.Location,
		Timestamp: a.AssessedAt,
	}
	if a.ContainingArea != nil {
		event.District = a.ContainingArea.District
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("area", event.Area).Warn("Failed to publish flood alert")
	}
}

// RainfallField возвращает свежее поле осадков для региона
func (s *riskService) RainfallField(ctx context.Context) (*models.RainfallField, error) {
	field, err := s.rainfall.Field(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("service", "risk").Error("Failed to build rainfall field")
		s.recorder.LookupFailure("rainfall")
		return nil, fmt.Errorf("service: could not build rainfall field: %w", err)
	}
	return &field, nil
}
