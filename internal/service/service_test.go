package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	alert_mocks "github.com/shenikar/flood_risk_system/internal/alert/mocks"
	"github.com/shenikar/flood_risk_system/internal/config"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/shenikar/flood_risk_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		RegionMinLat:       -16.0,
		RegionMaxLat:       -9.25,
		RegionMinLng:       32.67,
		RegionMaxLng:       35.92,
		ScanBatchLimit:     80,
		ScanCandidateLimit: 200,
		EnrichConcurrency:  4,
		LookupTimeout:      time.Second,
		SearchLimit:        50,
		TopAreasLimit:      5,
		LayerFeatureLimit:  2000,
		AlertMinRisk:       75,
	}
}

type testDeps struct {
	repo      *mocks.MockSpatialRepository
	rainfall  *mocks.MockRainfallProvider
	publisher *alert_mocks.MockPublisher
}

// newTestRiskService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestRiskService(t *testing.T) (*riskService, testDeps) {
	ctrl := gomock.NewController(t)
	deps := testDeps{
		repo:      mocks.NewMockSpatialRepository(ctrl),
		rainfall:  mocks.NewMockRainfallProvider(ctrl),
		publisher: alert_mocks.NewMockPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := NewRiskService(deps.repo, deps.rainfall, deps.publisher, nil, testConfig(), logger).(*riskService)
	svc.now = func() time.Time { return fixedNow }
	svc.enricher.now = svc.now
	return svc, deps
}

func ptr[T any](v T) *T { return &v }

func pointRow(id string, lat, lng float64, props map[string]any) models.GeometryRow {
	return models.GeometryRow{
		ID:         id,
		Geometry:   json.RawMessage(fmt.Sprintf(`{"type":"Point","coordinates":[%v,%v]}`, lng, lat)),
		Properties: props,
	}
}
