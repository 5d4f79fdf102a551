package models

import (
	"time"

	"github.com/google/uuid"
)

// RainfallReading - скалярный прогноз осадков для одной опорной точки
type RainfallReading struct {
	Location  Location  `json:"location"`
	Intensity float64   `json:"intensity"`
	Time      time.Time `json:"time"`
}

// RainPoint - один сэмпл сетки осадков
type RainPoint struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Intensity float64   `json:"intensity"`
	Time      time.Time `json:"time"`
	Name      string    `json:"name,omitempty"`
}

// RainfallField - полный набор сэмплов одного обновления прогноза.
// Поле пересоздается целиком, инкрементальных обновлений нет.
type RainfallField struct {
	ID          uuid.UUID   `json:"id"`
	Origin      Location    `json:"origin"`
	GeneratedAt time.Time   `json:"generated_at"`
	Points      []RainPoint `json:"points"`
}
