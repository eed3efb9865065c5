package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/output"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/parser"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Print the chart metadata of an Excel workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer logger.Close()

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	charts, err := parser.ExtractCharts(inputPath)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	logger.Debug("charts extracted", "path", inputPath, "count", len(charts))

	jsonData, err := output.ChartsToJSON(charts, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}
