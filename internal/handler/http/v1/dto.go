package v1

import (
	"time"

	"github.com/google/uuid"
)

// RiskQuery DTO для оценки риска в точке
// @Description DTO для оценки риска в точке
type RiskQuery struct {
	Lat      *float64 `form:"lat" validate:"required,latitude"`
	Lng      *float64 `form:"lng" validate:"required,longitude"`
	Rainfall *float64 `form:"rainfall" validate:"omitempty,gte=0,lte=1000"`
}

// SearchQuery DTO для поиска по слою
// @Description DTO для поиска по слою
type SearchQuery struct {
	Layer    string `form:"layer" validate:"required,layer"`
	Q        string `form:"q" validate:"max=200"`
	District string `form:"district" validate:"max=100"`
	Limit    int    `form:"limit" validate:"gte=0,lte=100"`
}

// TopAreasQuery DTO для выборки территорий с наибольшим риском
// @Description DTO для выборки территорий с наибольшим риском
type TopAreasQuery struct {
	District string `form:"district" validate:"max=100"`
	Limit    int    `form:"limit" validate:"gte=0,lte=100"`
}

// ScanRequest DTO для сканирования области
// @Description DTO для сканирования области
type ScanRequest struct {
	MinLat float64 `json:"min_lat" validate:"latitude"`
	MinLng float64 `json:"min_lng" validate:"longitude"`
	MaxLat float64 `json:"max_lat" validate:"latitude,gtfield=MinLat"`
	MaxLng float64 `json:"max_lng" validate:"longitude,gtfield=MinLng"`
}

// BBoxQuery - необязательный bbox в параметрах запроса; задается целиком или не задается
type BBoxQuery struct {
	MinLat *float64 `form:"min_lat" validate:"omitempty,latitude"`
	MinLng *float64 `form:"min_lng" validate:"omitempty,longitude"`
	MaxLat *float64 `form:"max_lat" validate:"omitempty,latitude"`
	MaxLng *float64 `form:"max_lng" validate:"omitempty,longitude"`
}

// LocationResponse DTO координат
type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// AreaResponse DTO содержащей территории
// @Description DTO содержащей территории
type AreaResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	District     string   `json:"district"`
	RiskBaseline *float64 `json:"risk_baseline"`
}

// AssessmentResponse DTO оценки риска
// @Description DTO оценки риска
type AssessmentResponse struct {
	FeatureID               string           `json:"feature_id,omitempty"`
	Layer                   string           `json:"layer,omitempty"`
	Name                    string           `json:"name,omitempty"`
	Location                LocationResponse `json:"location"`
	DistanceToNearestWaterM *float64         `json:"distance_to_nearest_water_m"`
	RainfallMm              float64          `json:"rainfall_mm"`
	RiskScore               *int             `json:"risk_score"`
	Tier                    string           `json:"tier"`
	Advice                  string           `json:"advice"`
	ContainingArea          *AreaResponse    `json:"containing_area"`
	AssessedAt              time.Time        `json:"assessed_at"`
	PredictedFloodDate      string           `json:"predicted_flood_date" example:"2024-03-02"`
}

// RainPointResponse DTO сэмпла осадков
type RainPointResponse struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Intensity float64   `json:"intensity"`
	Time      time.Time `json:"time"`
	Name      string    `json:"name,omitempty"`
}

// RainfallFieldResponse DTO поля осадков
// @Description DTO поля осадков
type RainfallFieldResponse struct {
	ID          uuid.UUID           `json:"id"`
	Origin      LocationResponse    `json:"origin"`
	GeneratedAt time.Time           `json:"generated_at"`
	Points      []RainPointResponse `json:"points"`
}

// LayerStatsResponse DTO со статистикой слоев
// @Description DTO со статистикой слоев
type LayerStatsResponse struct {
	Layers map[string]int64 `json:"layers"`
}
