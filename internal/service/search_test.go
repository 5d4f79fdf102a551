package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/flood_risk_system/internal/config"
	"github.com/shenikar/flood_risk_system/internal/layers"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSearchLayer_EmptyQueryOnUnrankedLayer(t *testing.T) {
	// Подготовка
	svc, _ := newTestRiskService(t)

	// Действие: репозиторий не должен вызываться
	fc, err := svc.SearchLayer(context.Background(), layers.Rivers, "  ", "", 0)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, fc.Features)
	assert.NotNil(t, fc.Features)
}

func TestSearchLayer_EmptyQueryOnAreasReturnsTopN(t *testing.T) {
	svc, deps := newTestRiskService(t)
	ctx := context.Background()
	rows := []models.GeometryRow{
		pointRow("1", -16.9, 35.2, map[string]any{"ta3_name": "Nsanje", "risk_score": 97.6}),
		pointRow("2", -16.1, 34.8, map[string]any{"ta3_name": "Chikwawa", "risk_score": 140.0}),
		pointRow("3", -15.0, 35.0, map[string]any{"ta3_name": "Zomba", "risk_score": nil}),
	}

	deps.repo.EXPECT().
		TopByBaseline(ctx, gomock.Any(), "", 5).
		DoAndReturn(func(_ context.Context, l layers.Layer, _ string, _ int) ([]models.GeometryRow, error) {
			assert.Equal(t, layers.Areas, l.Name)
			return rows, nil
		})

	fc, err := svc.SearchLayer(ctx, layers.Areas, "", "", 0)

	require.NoError(t, err)
	require.Len(t, fc.Features, 3)
	assert.Equal(t, 98, fc.Features[0].Properties["risk"])
	assert.Equal(t, 100, fc.Features[1].Properties["risk"])
	assert.Nil(t, fc.Features[2].Properties["risk"])
	assert.Contains(t, fc.Features[2].Properties, "risk")
}

func TestSearchLayer_TopNRespectsCallerLimit(t *testing.T) {
	svc, deps := newTestRiskService(t)
	ctx := context.Background()

	deps.repo.EXPECT().TopByBaseline(ctx, gomock.Any(), "Nsanje", 2).Return(nil, nil)

	fc, err := svc.SearchLayer(ctx, layers.Areas, "", "Nsanje", 2)
	require.NoError(t, err)
	assert.Empty(t, fc.Features)
}

func TestSearchLayer_TextMatch(t *testing.T) {
	svc, deps := newTestRiskService(t)
	ctx := context.Background()
	rows := []models.GeometryRow{
		pointRow("10", -15.5, 35.0, map[string]any{"name": "Shire", "waterway": "river"}),
		{ID: "11", Properties: map[string]any{"name": "Shire branch"}},
	}

	deps.repo.EXPECT().
		Search(ctx, gomock.Any(), "shire", "", config.MaxSearchLimit).
		Return(rows, nil)

	fc, err := svc.SearchLayer(ctx, layers.Rivers, "shire", "", 1000)

	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "10", fc.Features[0].ID)
	assert.Nil(t, fc.Features[0].Properties["risk"])
}

func TestSearchLayer_DefaultLimit(t *testing.T) {
	svc, deps := newTestRiskService(t)
	ctx := context.Background()

	deps.repo.EXPECT().Search(ctx, gomock.Any(), "m1", "", 50).Return(nil, nil)

	_, err := svc.SearchLayer(ctx, layers.Roads, "m1", "", 0)
	require.NoError(t, err)
}

func TestSearchLayer_UnknownLayer(t *testing.T) {
	svc, _ := newTestRiskService(t)

	_, err := svc.SearchLayer(context.Background(), "buildings", "x", "", 0)
	assert.ErrorIs(t, err, ErrUnknownLayer)
}

func TestSearchLayer_RepositoryError(t *testing.T) {
	svc, deps := newTestRiskService(t)
	ctx := context.Background()

	deps.repo.EXPECT().Search(ctx, gomock.Any(), "x", "", 50).Return(nil, errors.New("syntax error"))

	_, err := svc.SearchLayer(ctx, layers.Districts, "x", "", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "syntax error")
}

func TestLayerFeatures(t *testing.T) {
	svc, deps := newTestRiskService(t)
	ctx := context.Background()

	deps.repo.EXPECT().
		FeaturesInBBox(ctx, gomock.Any(), svc.region(), 2000).
		Return([]models.GeometryRow{pointRow("1", -15, 34, nil), {ID: "broken"}}, nil)

	fc, err := svc.LayerFeatures(ctx, layers.Roads, nil)
	require.NoError(t, err)
	assert.Len(t, fc.Features, 1)
}

func TestLayerFeatures_Validation(t *testing.T) {
	svc, _ := newTestRiskService(t)
	ctx := context.Background()

	_, err := svc.LayerFeatures(ctx, "nope", nil)
	assert.ErrorIs(t, err, ErrUnknownLayer)

	_, err = svc.LayerFeatures(ctx, layers.Roads, &models.BBox{MinLat: 1, MaxLat: 0, MinLng: 0, MaxLng: 1})
	assert.ErrorIs(t, err, ErrInvalidBBox)
}

func TestLayerStats(t *testing.T) {
	svc, deps := newTestRiskService(t)
	ctx := context.Background()

	deps.repo.EXPECT().
		CountInBBox(ctx, gomock.Any(), svc.region()).
		DoAndReturn(func(_ context.Context, l layers.Layer, _ models.BBox) (int64, error) {
			return int64(len(l.Name)), nil
		}).
		Times(4)

	stats, err := svc.LayerStats(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"rivers": 6, "roads": 5, "districts": 9, "areas": 5}, stats)
}
