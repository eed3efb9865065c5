package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/benchchart-go/pkg/benchchart"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/dataset"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/output"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/render/chartjs"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/render/echarts"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/render/gochart"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/render/plotimg"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/render/xlsx"
)

var (
	outputPath  string
	format      string
	scriptURL   string
	logScale    bool
	pretty      bool
	imageEngine string
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render charts to a file or stdout",
		Long: `Render draws every chart of the report with the selected engine.

html and echarts write a single page, png and svg write one image per chart
into the output directory (drawn with gonum/plot or go-chart), xlsx writes a workbook with native line charts,
and json prints the raw Chart.js configurations keyed by surface.`,
		Args: cobra.NoArgs,
		RunE: runRender,
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "Dataset file (.yaml, .xlsx or go test -bench output); default: built-in datasets")
	cmd.Flags().StringVar(&format, "format", string(benchchart.FormatHTML), "Output format: html, echarts, png, svg, xlsx, json")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path (default: stdout; directory for png/svg)")
	cmd.Flags().StringVar(&scriptURL, "cdn", benchchart.DefaultScriptURL, "Chart.js script URL for html output")
	cmd.Flags().BoolVar(&logScale, "log-scale", false, "Force a logarithmic value axis on every chart")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&imageEngine, "image-engine", benchchart.ImageEnginePlot, "Library for png/svg output: plot or gochart")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer logger.Close()

	f, err := benchchart.ParseFormat(format)
	if err != nil {
		return err
	}

	report, err := loadReport(logger)
	if err != nil {
		return err
	}

	opts := benchchart.Options{Format: f, ForceLogScale: logScale, ScriptURL: scriptURL, ImageEngine: imageEngine}
	return renderReport(report, opts, outputPath, cmd.OutOrStdout(), logger.Slog())
}

// renderReport draws report with the engine selected by opts.Format and
// writes the result to out, or to stdout when out is empty.
func renderReport(report *dataset.Report, opts benchchart.Options, out string, stdout io.Writer, logger *slog.Logger) error {
	surfaces := report.Surfaces()
	specs := report.Specs()

	switch opts.Format {
	case benchchart.FormatHTML:
		page := chartjs.NewPage(report.Title, opts.ResolvedScriptURL(), surfaces...)
		if _, err := benchchart.RenderAll(page, specs, opts, logger); err != nil {
			return err
		}
		return writeOutput(out, stdout, page.Render)

	case benchchart.FormatECharts:
		page := echarts.NewPage(report.Title, surfaces...)
		if _, err := benchchart.RenderAll(page, specs, opts, logger); err != nil {
			return err
		}
		return writeOutput(out, stdout, page.Render)

	case benchchart.FormatPNG, benchchart.FormatSVG:
		dir := out
		if dir == "" {
			dir = "."
		}
		var files []string
		switch opts.ImageEngine {
		case "", benchchart.ImageEnginePlot:
			r := plotimg.NewRenderer(dir, string(opts.Format), surfaces...)
			if _, err := benchchart.RenderAll(r, specs, opts, logger); err != nil {
				return err
			}
			files = r.Files()
		case benchchart.ImageEngineGoChart:
			r := gochart.NewRenderer(dir, string(opts.Format), surfaces...)
			if _, err := benchchart.RenderAll(r, specs, opts, logger); err != nil {
				return err
			}
			files = r.Files()
		default:
			return fmt.Errorf("invalid image engine: %s (must be plot or gochart)", opts.ImageEngine)
		}
		for _, file := range files {
			fmt.Fprintln(stdout, file)
		}
		return nil

	case benchchart.FormatXLSX:
		wb := xlsx.NewWorkbook(surfaces...)
		defer wb.Close()
		if _, err := benchchart.RenderAll(wb, specs, opts, logger); err != nil {
			return err
		}
		if out == "" {
			return wb.Write(stdout)
		}
		if err := wb.Save(out); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("workbook saved", "path", out)
		return nil

	case benchchart.FormatJSON:
		rec := benchchart.NewRecorder(surfaces...)
		charts, err := benchchart.RenderAll(rec, specs, opts, logger)
		if err != nil {
			return err
		}
		jsonData, err := output.ConfigsToJSON(charts, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		return writeOutput(out, stdout, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, string(jsonData))
			return err
		})
	}

	return fmt.Errorf("%w: %s", benchchart.ErrUnknownFormat, opts.Format)
}

// writeOutput buffers render's output and writes it to path, or to stdout
// when path is empty. Nothing is written if render fails.
func writeOutput(path string, stdout io.Writer, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	if path == "" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
