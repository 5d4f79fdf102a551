package models

import "time"

// AreaRef - легкая ссылка на строку слоя areas
type AreaRef struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	District     string   `json:"district"`
	RiskBaseline *float64 `json:"risk_baseline"`
}

// RiskAssessment - оценка риска наводнения для точки или объекта слоя
type RiskAssessment struct {
	FeatureID               string    `json:"feature_id,omitempty"`
	Layer                   string    `json:"layer,omitempty"`
	Name                    string    `json:"name,omitempty"`
	Location                Location  `json:"location"`
	DistanceToNearestWaterM *float64  `json:"distance_to_nearest_water_m"`
	RainfallMm              float64   `json:"rainfall_mm"`
	RiskScore               *int      `json:"risk_score"`
	Tier                    string    `json:"tier"`
	Advice                  string    `json:"advice"`
	ContainingArea          *AreaRef  `json:"containing_area"`
	AssessedAt              time.Time `json:"assessed_at"`
	PredictedFloodDate      time.Time `json:"predicted_flood_date"`
}

// AreaName возвращает имя территории для дедупликации: собственное имя объекта
// либо имя содержащей его территории
func (a *RiskAssessment) AreaName() string {
	if a.Name != "" {
		return a.Name
	}
	if a.ContainingArea != nil {
		return a.ContainingArea.Name
	}
	return ""
}
