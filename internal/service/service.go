package service

import (
	"context"
	"errors"
	"time"

	"github.com/shenikar/flood_risk_system/internal/alert"
	"github.com/shenikar/flood_risk_system/internal/config"
	"github.com/shenikar/flood_risk_system/internal/layers"
	"github.com/shenikar/flood_risk_system/internal/metrics"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom/encoding/geojson"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

var (
	// ErrUnknownLayer - имя слоя не входит в реестр
	ErrUnknownLayer = errors.New("unknown layer")
	// ErrInvalidBBox - пустой или выходящий за пределы WGS84 bbox
	ErrInvalidBBox = errors.New("invalid bounding box")
	// ErrInvalidLocation - координаты вне допустимого диапазона
	ErrInvalidLocation = errors.New("invalid location")
)

// SpatialRepository определяет контракт пространственного хранилища.
// Слой передается уже разрешенным через реестр.
type SpatialRepository interface {
	NearestWaterDistance(ctx context.Context, lat, lng float64) (*float64, error)
	ContainingArea(ctx context.Context, lat, lng float64) (*models.AreaRef, error)
	Search(ctx context.Context, layer layers.Layer, query, district string, limit int) ([]models.GeometryRow, error)
	TopByBaseline(ctx context.Context, layer layers.Layer, district string, limit int) ([]models.GeometryRow, error)
	FeaturesInBBox(ctx context.Context, layer layers.Layer, bbox models.BBox, limit int) ([]models.GeometryRow, error)
	CountInBBox(ctx context.Context, layer layers.Layer, bbox models.BBox) (int64, error)
	Ping(ctx context.Context) error
}

// RainfallProvider строит свежее поле осадков
type RainfallProvider interface {
	Field(ctx context.Context) (models.RainfallField, error)
}

// RiskService определяет контракт движка оценки риска
type RiskService interface {
	RiskAt(ctx context.Context, lat, lng float64, rainfall *float64) (*models.RiskAssessment, error)
	SearchLayer(ctx context.Context, layer, query, district string, limit int) (*geojson.FeatureCollection, error)
	TopAreas(ctx context.Context, district string, limit int) (*geojson.FeatureCollection, error)
	TopUpdates(ctx context.Context, limit int) ([]*models.RiskAssessment, error)
	Scan(ctx context.Context, bbox models.BBox) ([]*models.RiskAssessment, error)
	LayerFeatures(ctx context.Context, layer string, bbox *models.BBox) (*geojson.FeatureCollection, error)
	LayerStats(ctx context.Context, bbox *models.BBox) (map[string]int64, error)
	RainfallField(ctx context.Context) (*models.RainfallField, error)
	Ready(ctx context.Context) error
}

type riskService struct {
	repo      SpatialRepository
	rainfall  RainfallProvider
	publisher alert.Publisher
	enricher  *Enricher
	recorder  *metrics.Recorder
	cfg       *config.Config
	logger    *logrus.Logger
	now       func() time.Time
}

// NewRiskService создает сервис оценки риска. publisher и recorder могут быть nil.
func NewRiskService(
	repo SpatialRepository,
	rainfall RainfallProvider,
	publisher alert.Publisher,
	recorder *metrics.Recorder,
	cfg *config.Config,
	logger *logrus.Logger,
) RiskService {
	return &riskService{
		repo:      repo,
		rainfall:  rainfall,
		publisher: publisher,
		enricher:  NewEnricher(repo, recorder, cfg, logger),
		recorder:  recorder,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// region возвращает bbox, покрываемый сервисом по умолчанию
func (s *riskService) region() models.BBox {
	return models.BBox{
		MinLat: s.cfg.RegionMinLat,
		MinLng: s.cfg.RegionMinLng,
		MaxLat: s.cfg.RegionMaxLat,
		MaxLng: s.cfg.RegionMaxLng,
	}
}

// Ready проверяет доступность хранилища
func (s *riskService) Ready(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
