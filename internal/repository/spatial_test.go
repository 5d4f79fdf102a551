package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shenikar/flood_risk_system/internal/layers"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var featureCols = []string{"id", "st_asgeojson", "props"}

func newMockRepo(t *testing.T) (*SpatialRepository, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewSpatialRepository(mock).(*SpatialRepository), mock
}

func layer(t *testing.T, name string) layers.Layer {
	l, ok := layers.Resolve(name)
	require.True(t, ok)
	return l
}

func TestNearestWaterDistance(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT ST_DistanceSphere\(.+FROM rivers\s+WHERE geom IS NOT NULL\s+ORDER BY .+<->.+LIMIT 1`).
		WithArgs(34.0, -15.0).
		WillReturnRows(pgxmock.NewRows([]string{"distance"}).AddRow(30.0))

	d, err := repo.NearestWaterDistance(context.Background(), -15.0, 34.0)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, 30.0, *d)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNearestWaterDistance_NoRivers(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM rivers`).
		WithArgs(34.0, -15.0).
		WillReturnRows(pgxmock.NewRows([]string{"distance"}))

	d, err := repo.NearestWaterDistance(context.Background(), -15.0, 34.0)
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestNearestWaterDistance_DBError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM rivers`).
		WithArgs(34.0, -15.0).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.NearestWaterDistance(context.Background(), -15.0, 34.0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nearest water")
}

func TestContainingArea(t *testing.T) {
	repo, mock := newMockRepo(t)
	baseline := 72.5

	mock.ExpectQuery(`FROM areas s\s+WHERE s.geom IS NOT NULL\s+AND ST_Intersects`).
		WithArgs(35.2, -16.9).
		WillReturnRows(pgxmock.NewRows([]string{"id", "ta3_name", "district", "risk_score"}).
			AddRow("12", "TA Mlolo", "Nsanje", &baseline))

	area, err := repo.ContainingArea(context.Background(), -16.9, 35.2)
	require.NoError(t, err)
	assert.Equal(t, &models.AreaRef{ID: "12", Name: "TA Mlolo", District: "Nsanje", RiskBaseline: &baseline}, area)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContainingArea_NoMatch(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM areas`).
		WithArgs(35.2, -16.9).
		WillReturnRows(pgxmock.NewRows([]string{"id", "ta3_name", "district", "risk_score"}))

	area, err := repo.ContainingArea(context.Background(), -16.9, 35.2)
	require.NoError(t, err)
	assert.Nil(t, area)
}

func TestSearch_SearchableColumns(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM roads s WHERE s.geom IS NOT NULL AND \(s.name::text ILIKE \$1 OR s.name_en::text ILIKE \$1 OR s.highway::text ILIKE \$1\) LIMIT \$2`).
		WithArgs("%m1%", 50).
		WillReturnRows(pgxmock.NewRows(featureCols).
			AddRow("5", []byte(`{"type":"LineString","coordinates":[[34,-15],[34.1,-15.1]]}`), map[string]any{"name": "M1", "highway": "trunk"}))

	rows, err := repo.Search(context.Background(), layer(t, layers.Roads), "m1", "", 50)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "5", rows[0].ID)
	assert.Equal(t, "M1", rows[0].Properties["name"])
	assert.JSONEq(t, `{"type":"LineString","coordinates":[[34,-15],[34.1,-15.1]]}`, string(rows[0].Geometry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearch_DistrictFilterAndEscaping(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM areas s WHERE .+ AND s.district::text LIKE \$2 LIMIT \$3`).
		WithArgs(`%50\%\_off%`, "%Nsanje%", 10).
		WillReturnRows(pgxmock.NewRows(featureCols))

	rows, err := repo.Search(context.Background(), layer(t, layers.Areas), "50%_off", "Nsanje", 10)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearch_DistrictFilterOnlyOnAreas(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM districts s WHERE s.geom IS NOT NULL AND \(s.ta_name::text ILIKE \$1 OR s.district::text ILIKE \$1\) LIMIT \$2`).
		WithArgs("%lil%", 10).
		WillReturnRows(pgxmock.NewRows(featureCols))

	_, err := repo.Search(context.Background(), layer(t, layers.Districts), "lil", "Central", 10)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearch_CatchAllForLayerWithoutColumns(t *testing.T) {
	repo, mock := newMockRepo(t)
	custom := layers.Layer{Name: "custom", Table: "districts"}

	mock.ExpectQuery(`to_jsonb\(s\)::text ILIKE \$1`).
		WithArgs("%lilongwe%", 5).
		WillReturnRows(pgxmock.NewRows(featureCols))

	_, err := repo.Search(context.Background(), custom, "lilongwe", "", 5)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopByBaseline(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`ORDER BY s.risk_score DESC NULLS LAST LIMIT \$1\) t ORDER BY t.risk_score DESC NULLS LAST`).
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows(featureCols).
			AddRow("1", []byte(`{"type":"Point","coordinates":[35.2,-16.9]}`), map[string]any{"ta3_name": "Nsanje", "risk_score": 97.0}).
			AddRow("2", []byte(`{"type":"Point","coordinates":[33.7,-13.9]}`), map[string]any{"ta3_name": "Lilongwe", "risk_score": nil}))

	rows, err := repo.TopByBaseline(context.Background(), layer(t, layers.Areas), "", 5)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "1", rows[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopByBaseline_LayerWithoutBaseline(t *testing.T) {
	repo, _ := newMockRepo(t)

	_, err := repo.TopByBaseline(context.Background(), layer(t, layers.Rivers), "", 5)
	assert.ErrorIs(t, err, ErrNoBaseline)
}

func TestFeaturesInBBox(t *testing.T) {
	repo, mock := newMockRepo(t)
	bbox := models.BBox{MinLat: -16, MinLng: 34, MaxLat: -15, MaxLng: 35}

	mock.ExpectQuery(`FROM districts s\s+WHERE s.geom IS NOT NULL\s+AND ST_Intersects\(ST_Transform\(s.geom, 4326\), ST_MakeEnvelope`).
		WithArgs(34.0, -16.0, 35.0, -15.0, 200).
		WillReturnRows(pgxmock.NewRows(featureCols).
			AddRow("3", []byte(`{"type":"Point","coordinates":[34.5,-15.5]}`), map[string]any{"ta_name": "Kasisi"}))

	rows, err := repo.FeaturesInBBox(context.Background(), layer(t, layers.Districts), bbox, 200)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeaturesInBBox_DBError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM rivers s`).
		WillReturnError(errors.New("relation \"rivers\" does not exist"))

	_, err := repo.FeaturesInBBox(context.Background(), layer(t, layers.Rivers), models.BBox{MinLat: 0, MaxLat: 1, MinLng: 0, MaxLng: 1}, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rivers")
}

func TestCountInBBox(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\)\s+FROM roads s`).
		WithArgs(34.0, -16.0, 35.0, -15.0).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(42)))

	n, err := repo.CountInBBox(context.Background(), layer(t, layers.Roads), models.BBox{MinLat: -16, MinLng: 34, MaxLat: -15, MaxLng: 35})
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
}

func TestPing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectPing()
	repo := NewSpatialRepository(mock)
	assert.NoError(t, repo.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\%b\_c\\d`, escapeLike(`a%b_c\d`))
	assert.Equal(t, "plain", escapeLike("plain"))
}
