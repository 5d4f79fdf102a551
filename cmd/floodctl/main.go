package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/shenikar/flood_risk_system/internal/config"
	"github.com/shenikar/flood_risk_system/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "floodctl",
		Short:         "Flood risk scoring from the command line",
		Long:          "Scores flood risk offline from distance and rainfall, or queries the spatial layers and the rainfall forecast the same way the HTTP API does.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(newScoreCmd(), newForecastDateCmd(), newRiskCmd(), newTopCmd(), newScanCmd())
	return cmd
}

// loadRuntime загружает конфигурацию и логгер для команд, работающих с хранилищем
func loadRuntime(cmd *cobra.Command) (*config.Config, *logrus.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	level, _ := cmd.Flags().GetString("log-level")
	log := logger.New(level, "text")
	log.SetOutput(cmd.ErrOrStderr())
	return cfg, log, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
