package benchchart

import (
	"fmt"
	"log/slog"

	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
)

// RenderAll draws every spec on engine in order and returns the chart handles.
// It stops at the first failing surface.
func RenderAll(engine Engine, specs []models.ChartSpec, opts Options, logger *slog.Logger) ([]*Chart, error) {
	if logger == nil {
		logger = slog.Default()
	}

	charts := make([]*Chart, 0, len(specs))
	for _, spec := range specs {
		if opts.ForceLogScale {
			spec.ValueAxisType = string(AxisLogarithmic)
		}

		chart, err := engine.Draw(spec.SurfaceID, BuildConfig(spec))
		if err != nil {
			logger.Error("draw failed", "surface", spec.SurfaceID, "error", err)
			return charts, fmt.Errorf("drawing %q: %w", spec.SurfaceID, err)
		}
		logger.Debug("chart drawn",
			"surface", chart.SurfaceID,
			"engine", chart.Engine,
			"series", len(chart.Config.Data.Datasets),
			"axis", chart.Config.ValueAxis().Type,
		)
		charts = append(charts, chart)
	}

	logger.Info("charts rendered", "count", len(charts))
	return charts, nil
}
