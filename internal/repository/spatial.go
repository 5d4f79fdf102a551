package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shenikar/flood_risk_system/internal/layers"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/shenikar/flood_risk_system/internal/service"
	"github.com/shenikar/flood_risk_system/pkg/postgres"
)

// ErrNoBaseline - у слоя нет колонки базового риска
var ErrNoBaseline = errors.New("layer has no risk baseline")

// SpatialRepository - PostGIS-реализация service.SpatialRepository.
// Имена таблиц и колонок в SQL подставляются только из layers.Layer,
// пользовательские значения идут исключительно параметрами.
type SpatialRepository struct {
	db postgres.Pool
}

func NewSpatialRepository(db postgres.Pool) service.SpatialRepository {
	return &SpatialRepository{
		db: db,
	}
}

// NearestWaterDistance возвращает расстояние в метрах до ближайшего водотока.
// nil, если в слое рек нет ни одной геометрии.
func (r *SpatialRepository) NearestWaterDistance(ctx context.Context, lat, lng float64) (*float64, error) {
	rivers, _ := layers.Resolve(layers.Rivers)
	query := fmt.Sprintf(`
		SELECT ST_DistanceSphere(
			ST_Transform(geom, 4326),
			ST_SetSRID(ST_MakePoint($1, $2), 4326)
		) AS distance
		FROM %s
		WHERE geom IS NOT NULL
		ORDER BY ST_Transform(geom, 4326) <-> ST_SetSRID(ST_MakePoint($1, $2), 4326)
		LIMIT 1;
	`, rivers.Table)

	var distance float64
	err := r.db.QueryRow(ctx, query, lng, lat).Scan(&distance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find nearest water: %w", err)
	}
	return &distance, nil
}

// ContainingArea возвращает первую территорию, содержащую точку; nil, если такой нет
func (r *SpatialRepository) ContainingArea(ctx context.Context, lat, lng float64) (*models.AreaRef, error) {
	areas, _ := layers.Resolve(layers.Areas)
	query := fmt.Sprintf(`
		SELECT
			s.id::text,
			COALESCE(s.%[2]s::text, ''),
			COALESCE(s.%[3]s::text, ''),
			s.%[4]s::float8
		FROM %[1]s s
		WHERE s.geom IS NOT NULL
			AND ST_Intersects(ST_Transform(s.geom, 4326), ST_SetSRID(ST_MakePoint($1, $2), 4326))
		LIMIT 1;
	`, areas.Table, areas.NameColumn, areas.DistrictColumn, areas.BaselineColumn)

	area := &models.AreaRef{}
	err := r.db.QueryRow(ctx, query, lng, lat).Scan(
		&area.ID,
		&area.Name,
		&area.District,
		&area.RiskBaseline,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find containing area: %w", err)
	}
	return area, nil
}

// Search ищет подстроку (без учета регистра) в текстовых колонках слоя.
// Слой без колонок ищется по сериализованной строке целиком.
func (r *SpatialRepository) Search(ctx context.Context, layer layers.Layer, query, district string, limit int) ([]models.GeometryRow, error) {
	args := []any{"%" + escapeLike(query) + "%"}

	var match string
	if len(layer.SearchableColumns) == 0 {
		match = "to_jsonb(s)::text ILIKE $1"
	} else {
		parts := make([]string, 0, len(layer.SearchableColumns))
		for _, col := range layer.SearchableColumns {
			parts = append(parts, fmt.Sprintf("s.%s::text ILIKE $1", col))
		}
		match = "(" + strings.Join(parts, " OR ") + ")"
	}

	where := []string{"s.geom IS NOT NULL", match}
	if district != "" && layer.FiltersByDistrict() {
		args = append(args, "%"+escapeLike(district)+"%")
		where = append(where, fmt.Sprintf("s.%s::text LIKE $%d", layer.DistrictColumn, len(args)))
	}
	args = append(args, limit)

	inner := fmt.Sprintf("SELECT * FROM %s s WHERE %s LIMIT $%d",
		layer.Table, strings.Join(where, " AND "), len(args))

	rows, err := r.queryRows(ctx, selectFeatures(inner, ""), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search layer %s: %w", layer.Name, err)
	}
	return rows, nil
}

// TopByBaseline возвращает строки с наибольшим базовым риском, null - в конце
func (r *SpatialRepository) TopByBaseline(ctx context.Context, layer layers.Layer, district string, limit int) ([]models.GeometryRow, error) {
	if !layer.HasRiskBaseline {
		return nil, fmt.Errorf("top by baseline on %s: %w", layer.Name, ErrNoBaseline)
	}

	var args []any
	where := []string{"s.geom IS NOT NULL"}
	if district != "" && layer.FiltersByDistrict() {
		args = append(args, "%"+escapeLike(district)+"%")
		where = append(where, fmt.Sprintf("s.%s::text LIKE $%d", layer.DistrictColumn, len(args)))
	}
	args = append(args, limit)

	order := fmt.Sprintf("%s DESC NULLS LAST", layer.BaselineColumn)
	inner := fmt.Sprintf("SELECT * FROM %s s WHERE %s ORDER BY s.%s LIMIT $%d",
		layer.Table, strings.Join(where, " AND "), order, len(args))

	rows, err := r.queryRows(ctx, selectFeatures(inner, "t."+order), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load top rows of %s: %w", layer.Name, err)
	}
	return rows, nil
}

// FeaturesInBBox возвращает объекты слоя, пересекающие bbox
func (r *SpatialRepository) FeaturesInBBox(ctx context.Context, layer layers.Layer, bbox models.BBox, limit int) ([]models.GeometryRow, error) {
	inner := fmt.Sprintf(`SELECT * FROM %s s
		WHERE s.geom IS NOT NULL
			AND ST_Intersects(ST_Transform(s.geom, 4326), ST_MakeEnvelope($1, $2, $3, $4, 4326))
		LIMIT $5`, layer.Table)

	rows, err := r.queryRows(ctx, selectFeatures(inner, ""),
		bbox.MinLng, bbox.MinLat, bbox.MaxLng, bbox.MaxLat, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load features of %s in bbox: %w", layer.Name, err)
	}
	return rows, nil
}

// CountInBBox считает объекты слоя, пересекающие bbox
func (r *SpatialRepository) CountInBBox(ctx context.Context, layer layers.Layer, bbox models.BBox) (int64, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s s
		WHERE s.geom IS NOT NULL
			AND ST_Intersects(ST_Transform(s.geom, 4326), ST_MakeEnvelope($1, $2, $3, $4, 4326));
	`, layer.Table)

	var count int64
	if err := r.db.QueryRow(ctx, query, bbox.MinLng, bbox.MinLat, bbox.MaxLng, bbox.MaxLat).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count features of %s: %w", layer.Name, err)
	}
	return count, nil
}

// Ping проверяет соединение с базой
func (r *SpatialRepository) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// selectFeatures оборачивает выборку строк слоя: id, геометрия в GeoJSON (WGS84)
// и атрибуты без колонки geom
func selectFeatures(inner, orderBy string) string {
	query := fmt.Sprintf(`
		SELECT
			t.id::text,
			ST_AsGeoJSON(ST_Transform(t.geom, 4326))::json,
			to_jsonb(t) - 'geom'
		FROM (%s) t`, inner)
	if orderBy != "" {
		query += " ORDER BY " + orderBy
	}
	return query + ";"
}

func (r *SpatialRepository) queryRows(ctx context.Context, query string, args ...any) ([]models.GeometryRow, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.GeometryRow
	for rows.Next() {
		var (
			row      models.GeometryRow
			geometry []byte
		)
		if err := rows.Scan(&row.ID, &geometry, &row.Properties); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		row.Geometry = geometry
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// escapeLike экранирует спецсимволы LIKE, чтобы запрос искался как литерал
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
