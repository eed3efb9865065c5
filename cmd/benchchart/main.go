// Package main provides the CLI entry point for benchchart.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/dataset"
	"github.com/ukaji3/benchchart-go/pkg/logging"
)

var (
	logLevel  string
	logFormat string
	logFile   string
	dataPath  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "benchchart",
		Short: "Render benchmark comparison charts",
		Long: `benchchart turns insertion and query benchmark timings into line charts
comparing datahike, datomic and datascript across 10K, 100K and 1M samples.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write JSON logs to this file")

	rootCmd.AddCommand(newRenderCmd(), newServeCmd(), newInspectCmd())
	return rootCmd
}

func newLogger(cmd *cobra.Command) (*logging.Logger, error) {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}
	var jsonOut bool
	switch logFormat {
	case "text":
	case "json":
		jsonOut = true
	default:
		return nil, fmt.Errorf("invalid log format: %s (must be text or json)", logFormat)
	}
	return logging.New(logging.Config{
		Level:   level,
		JSON:    jsonOut,
		Output:  cmd.ErrOrStderr(),
		LogFile: logFile,
		Service: "benchchart",
	}), nil
}

// loadReport reads --data, or returns the built-in datasets when it is unset.
func loadReport(logger *logging.Logger) (*dataset.Report, error) {
	if dataPath == "" {
		report := dataset.Builtin()
		logger.Debug("using built-in datasets", "charts", len(report.Charts))
		return &report, nil
	}

	if _, err := os.Stat(dataPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", dataPath)
	}
	report, err := dataset.LoadFile(dataPath)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", dataPath, err)
	}
	logger.Debug("loaded datasets", "path", dataPath, "charts", len(report.Charts))
	return report, nil
}
