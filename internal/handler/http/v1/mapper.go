package v1

import (
	"github.com/shenikar/flood_risk_system/internal/models"
)

const dateLayout = "2006-01-02"

// ModelToAssessmentResponse преобразует доменную оценку в DTO для ответа
func ModelToAssessmentResponse(model *models.RiskAssessment) *AssessmentResponse {
	resp := &AssessmentResponse{
		FeatureID:               model.FeatureID,
		Layer:                   model.Layer,
		Name:                    model.Name,
		Location:                LocationResponse{Lat: model.Location.Lat, Lng: model.Location.Lng},
		DistanceToNearestWaterM: model.DistanceToNearestWaterM,
		RainfallMm:              model.RainfallMm,
		RiskScore:               model.RiskScore,
		Tier:                    model.Tier,
		Advice:                  model.Advice,
		AssessedAt:              model.AssessedAt,
		PredictedFloodDate:      model.PredictedFloodDate.Format(dateLayout),
	}
	if a := model.ContainingArea; a != nil {
		resp.ContainingArea = &AreaResponse{
			ID:           a.ID,
			Name:         a.Name,
			District:     a.District,
			RiskBaseline: a.RiskBaseline,
		}
	}
	return resp
}

// ModelsToAssessmentResponses преобразует слайс оценок в слайс DTO
func ModelsToAssessmentResponses(items []*models.RiskAssessment) []*AssessmentResponse {
	responses := make([]*AssessmentResponse, len(items))
	for i, item := range items {
		responses[i] = ModelToAssessmentResponse(item)
	}
	return responses
}

// ModelToRainfallResponse преобразует поле осадков в DTO
func ModelToRainfallResponse(field *models.RainfallField) *RainfallFieldResponse {
	points := make([]RainPointResponse, len(field.Points))
	for i, p := range field.Points {
		points[i] = RainPointResponse{
			Lat:       p.Lat,
			Lng:       p.Lng,
			Intensity: p.Intensity,
			Time:      p.Time,
			Name:      p.Name,
		}
	}
	return &RainfallFieldResponse{
		ID:          field.ID,
		Origin:      LocationResponse{Lat: field.Origin.Lat, Lng: field.Origin.Lng},
		GeneratedAt: field.GeneratedAt,
		Points:      points,
	}
}

// ScanRequestToBBox преобразует DTO сканирования в bbox
func ScanRequestToBBox(req ScanRequest) models.BBox {
	return models.BBox{
		MinLat: req.MinLat,
		MinLng: req.MinLng,
		MaxLat: req.MaxLat,
		MaxLng: req.MaxLng,
	}
}

// BBoxQueryToModel возвращает bbox, если заданы все четыре границы; nil, если не задана ни одна
func BBoxQueryToModel(q BBoxQuery) (*models.BBox, bool) {
	set := 0
	for _, v := range []*float64{q.MinLat, q.MinLng, q.MaxLat, q.MaxLng} {
		if v != nil {
			set++
		}
	}
	switch set {
	case 0:
		return nil, true
	case 4:
		return &models.BBox{MinLat: *q.MinLat, MinLng: *q.MinLng, MaxLat: *q.MaxLat, MaxLng: *q.MaxLng}, true
	default:
		return nil, false
	}
}
