// Package layers - закрытый реестр логических слоев и их физических таблиц.
// Имя слоя попадает в SQL только после разрешения через этот реестр.
package layers

const (
	Rivers    = "rivers"
	Roads     = "roads"
	Districts = "districts"
	Areas     = "areas"

	// Default - слой, на который отображаются неизвестные имена
	Default = Districts
)

// Layer описывает логический слой
type Layer struct {
	Name  string
	Table string
	// SearchableColumns - колонки для регистронезависимого поиска подстроки.
	// Пустой список означает поиск по сериализованной строке целиком.
	SearchableColumns []string
	HasRiskBaseline   bool
	// BaselineColumn - колонка с сохраненным базовым риском (если HasRiskBaseline)
	BaselineColumn string
	// NameColumn и DistrictColumn используются для AreaRef и дедупликации
	NameColumn     string
	DistrictColumn string
}

var registry = map[string]Layer{
	Rivers: {
		Name:              Rivers,
		Table:             "rivers",
		SearchableColumns: []string{"name", "name_en", "waterway"},
		NameColumn:        "name",
	},
	Roads: {
		Name:              Roads,
		Table:             "roads",
		SearchableColumns: []string{"name", "name_en", "highway"},
		NameColumn:        "name",
	},
	Districts: {
		Name:              Districts,
		Table:             "districts",
		SearchableColumns: []string{"ta_name", "district"},
		NameColumn:        "ta_name",
		DistrictColumn:    "district",
	},
	Areas: {
		Name:              Areas,
		Table:             "areas",
		SearchableColumns: []string{"ta3_name", "district"},
		HasRiskBaseline:   true,
		BaselineColumn:    "risk_score",
		NameColumn:        "ta3_name",
		DistrictColumn:    "district",
	},
}

// FiltersByDistrict - поддерживает ли слой фильтр по родительскому району
func (l Layer) FiltersByDistrict() bool {
	return l.Name == Areas && l.DistrictColumn != ""
}

// ScanLayers - слои, из которых набираются кандидаты при сканировании области
var ScanLayers = []string{Districts, Roads, Rivers}

// Resolve возвращает слой по имени. Неизвестное имя отображается на слой по умолчанию, ok=false.
func Resolve(name string) (Layer, bool) {
	if l, ok := registry[name]; ok {
		return l, true
	}
	return registry[Default], false
}

// ResolveTable возвращает физическую таблицу слоя
func ResolveTable(name string) string {
	l, _ := Resolve(name)
	return l.Table
}

// IsKnown проверяет, входит ли имя в белый список
func IsKnown(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names возвращает имена всех зарегистрированных слоев в фиксированном порядке
func Names() []string {
	return []string{Rivers, Roads, Districts, Areas}
}
