package main

import (
	"time"

	"github.com/shenikar/flood_risk_system/internal/risk"
	"github.com/spf13/cobra"
)

type scoreOutput struct {
	RiskScore          *int   `json:"risk_score"`
	Tier               string `json:"tier"`
	Advice             string `json:"advice"`
	PredictedFloodDate string `json:"predicted_flood_date"`
}

func describe(score *int, now time.Time) scoreOutput {
	tier, advice := risk.Advise(score)
	return scoreOutput{
		RiskScore:          score,
		Tier:               tier,
		Advice:             advice,
		PredictedFloodDate: risk.PredictFloodDate(score, now).Format("2006-01-02"),
	}
}

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score risk from distance to water and rainfall",
		Long: `Computes the risk score without touching the datastore.

Examples:
  # 30 m from a river after 10 mm of rain
  floodctl score --distance 30 --rainfall 10

  # No water body found nearby
  floodctl score --distance -1 --rainfall 2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rain, _ := cmd.Flags().GetFloat64("rainfall")
			var distance *float64
			if d, _ := cmd.Flags().GetFloat64("distance"); d >= 0 {
				distance = &d
			}
			score := risk.Score(distance, rain)
			return writeJSON(cmd.OutOrStdout(), describe(&score, time.Now()))
		},
	}
	cmd.Flags().Float64("distance", -1, "distance to the nearest water body, meters (negative if none)")
	cmd.Flags().Float64("rainfall", 0, "rainfall, mm")
	return cmd
}

func newForecastDateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forecast-date",
		Short: "Project the flood date for a risk score",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var score *int
			if cmd.Flags().Changed("risk") {
				s, _ := cmd.Flags().GetInt("risk")
				score = &s
			}
			return writeJSON(cmd.OutOrStdout(), describe(score, time.Now()))
		},
	}
	cmd.Flags().Int("risk", 0, "risk score 0-100 (omit for unknown)")
	return cmd
}
