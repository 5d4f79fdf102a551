// Package risk - детерминированная эвристика риска наводнения: скоринг,
// уровень опасности с рекомендацией и прогнозная дата.
// Константы - продуктовые эвристики, а не физическая модель.
package risk

import (
	"math"
	"time"
)

const (
	TierHigh     = "high"
	TierModerate = "moderate"
	TierLow      = "low"
	TierUnknown  = "unknown"

	// HighThreshold - нижняя граница высокого риска
	HighThreshold = 75
	// ModerateThreshold - нижняя граница умеренного риска
	ModerateThreshold = 40

	// NoWaterBase - базовый балл, когда ближайший водоток не найден
	NoWaterBase = 10

	maxRainfallContribution = 50.0
)

var advice = map[string]string{
	TierHigh:     "High risk: move to higher ground and follow local authority orders",
	TierModerate: "Moderate risk: avoid low-lying areas and monitor updates",
	TierLow:      "Low risk: stay informed",
	TierUnknown:  "Risk check failed",
}

// BaseScore - ступенчатая функция расстояния до ближайшего водотока в метрах
func BaseScore(distanceM *float64) int {
	if distanceM == nil {
		return NoWaterBase
	}
	d := *distanceM
	switch {
	case d < 50:
		return 90
	case d < 200:
		return 70
	case d < 500:
		return 50
	case d < 2000:
		return 25
	default:
		return 5
	}
}

// Score вычисляет риск [0,100] по расстоянию до воды и интенсивности осадков (мм).
// Осадки одновременно масштабируют базовый балл и добавляют слагаемое, ограниченное 50.
func Score(distanceM *float64, rainfallMm float64) int {
	if rainfallMm < 0 || math.IsNaN(rainfallMm) {
		rainfallMm = 0
	}
	base := float64(BaseScore(distanceM))
	contribution := math.Min(maxRainfallContribution, rainfallMm*5)
	raw := math.Round(base*(1+rainfallMm/20) + contribution)
	return Clamp(raw)
}

// Clamp округляет значение и приводит его к диапазону [0,100]
func Clamp(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}

// Tier возвращает уровень опасности для балла; nil дает TierUnknown
func Tier(score *int) string {
	if score == nil {
		return TierUnknown
	}
	switch {
	case *score >= HighThreshold:
		return TierHigh
	case *score >= ModerateThreshold:
		return TierModerate
	default:
		return TierLow
	}
}

// Advise возвращает уровень и фиксированную рекомендацию
func Advise(score *int) (string, string) {
	tier := Tier(score)
	return tier, advice[tier]
}

// DaysAhead - через сколько дней ожидается наводнение при данном риске.
// Не возрастает с ростом риска; nil трактуется как минимальный риск.
func DaysAhead(score *int) int {
	if score == nil {
		return 14
	}
	r := *score
	switch {
	case r >= 75:
		return 1
	case r >= 50:
		return 2
	case r >= 25:
		return 5
	case r >= 10:
		return 10
	default:
		return 14
	}
}

// PredictFloodDate возвращает now + DaysAhead(score) суток
func PredictFloodDate(score *int, now time.Time) time.Time {
	return now.AddDate(0, 0, DaysAhead(score))
}
