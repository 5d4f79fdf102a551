package main

import (
	"fmt"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/shenikar/flood_risk_system/internal/app"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/shenikar/flood_risk_system/internal/service"
	"github.com/spf13/cobra"
)

// withService собирает зависимости, выполняет fn и закрывает соединения
func withService(cmd *cobra.Command, fn func(svc service.RiskService) (any, error)) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, log, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	deps, err := app.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer deps.Close()

	cmd.SetContext(ctx)
	out, err := fn(deps.Service)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), out)
}

func newRiskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Assess risk at a coordinate",
		Long: `Looks up the nearest water body and the containing area, then scores the point.
Without --rainfall the current forecast field is sampled.

Examples:
  floodctl risk --lat -13.98 --lng 33.78
  floodctl risk --lat -13.98 --lng 33.78 --rainfall 25`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lat, _ := cmd.Flags().GetFloat64("lat")
			lng, _ := cmd.Flags().GetFloat64("lng")
			var rain *float64
			if cmd.Flags().Changed("rainfall") {
				r, _ := cmd.Flags().GetFloat64("rainfall")
				rain = &r
			}
			return withService(cmd, func(svc service.RiskService) (any, error) {
				return svc.RiskAt(cmd.Context(), lat, lng, rain)
			})
		},
	}
	cmd.Flags().Float64("lat", 0, "latitude")
	cmd.Flags().Float64("lng", 0, "longitude")
	cmd.Flags().Float64("rainfall", 0, "rainfall, mm (default: sampled from the forecast)")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")
	return cmd
}

func newTopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top",
		Short: "List the areas with the highest baseline risk",
		RunE: func(cmd *cobra.Command, _ []string) error {
			district, _ := cmd.Flags().GetString("district")
			limit, _ := cmd.Flags().GetInt("limit")
			live, _ := cmd.Flags().GetBool("live")
			return withService(cmd, func(svc service.RiskService) (any, error) {
				if live {
					return svc.TopUpdates(cmd.Context(), limit)
				}
				return svc.TopAreas(cmd.Context(), district, limit)
			})
		},
	}
	cmd.Flags().String("district", "", "district filter")
	cmd.Flags().Int("limit", 0, "number of areas (0 = configured default)")
	cmd.Flags().Bool("live", false, "re-score the areas against the current forecast")
	return cmd
}

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan features inside a bounding box",
		Long: `Scores districts, roads and rivers inside the bounding box and prints them ranked by risk.

Example:
  floodctl scan --bbox 33.6,-14.1,33.9,-13.8`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, _ := cmd.Flags().GetString("bbox")
			bbox, err := parseBBox(raw)
			if err != nil {
				return err
			}
			return withService(cmd, func(svc service.RiskService) (any, error) {
				return svc.Scan(cmd.Context(), bbox)
			})
		},
	}
	cmd.Flags().String("bbox", "", "minLng,minLat,maxLng,maxLat")
	_ = cmd.MarkFlagRequired("bbox")
	return cmd
}

// parseBBox разбирает bbox в порядке minLng,minLat,maxLng,maxLat
func parseBBox(raw string) (models.BBox, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return models.BBox{}, fmt.Errorf("bbox must have 4 comma-separated values, got %d", len(parts))
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return models.BBox{}, fmt.Errorf("bbox value %q: %w", p, err)
		}
		v[i] = f
	}
	bbox := models.BBox{MinLng: v[0], MinLat: v[1], MaxLng: v[2], MaxLat: v[3]}
	if !bbox.Valid() {
		return models.BBox{}, fmt.Errorf("bbox %q is empty or out of range", raw)
	}
	return bbox, nil
}
