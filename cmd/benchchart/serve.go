package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/ukaji3/benchchart-go/pkg/benchchart"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/dataset"
)

const shutdownTimeout = 5 * time.Second

var addr string

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chart page over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	cmd.Flags().StringVar(&addr, "addr", ":3030", "Listen address")
	cmd.Flags().StringVar(&dataPath, "data", "", "Dataset file (.yaml, .xlsx or go test -bench output); default: built-in datasets")
	cmd.Flags().StringVar(&format, "format", string(benchchart.FormatHTML), "Page format: html or echarts")
	cmd.Flags().StringVar(&scriptURL, "cdn", benchchart.DefaultScriptURL, "Chart.js script URL for html pages")
	cmd.Flags().BoolVar(&logScale, "log-scale", false, "Force a logarithmic value axis on every chart")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer logger.Close()

	f, err := benchchart.ParseFormat(format)
	if err != nil {
		return err
	}
	if f != benchchart.FormatHTML && f != benchchart.FormatECharts {
		return fmt.Errorf("%w: %s (serve supports html or echarts)", benchchart.ErrUnknownFormat, f)
	}

	report, err := loadReport(logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := benchchart.Options{Format: f, ForceLogScale: logScale, ScriptURL: scriptURL}
	return serve(ctx, addr, newPageHandler(report, opts, logger.Slog()), logger.Slog())
}

// newPageHandler renders a fresh page for every request, since each engine
// instance claims its surfaces only once.
func newPageHandler(report *dataset.Report, opts benchchart.Options, logger *slog.Logger) http.Handler {
	format := string(opts.Format)
	pageCharts.Set(float64(len(report.Charts)))

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(rw http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/" {
			http.NotFound(rw, req)
			return
		}

		start := time.Now()
		var buf bytes.Buffer
		err := renderReport(report, opts, "", &buf, logger)
		pageRenderDuration.WithLabelValues(format).Observe(time.Since(start).Seconds())
		if err != nil {
			pageRendersTotal.WithLabelValues(format, "error").Inc()
			logger.Error("render failed", "error", err)
			http.Error(rw, "render failed", http.StatusInternalServerError)
			return
		}
		pageRendersTotal.WithLabelValues(format, "ok").Inc()

		rw.Header().Set("Content-Type", "text/html; charset=utf-8")
		rw.Write(buf.Bytes())
	})
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusOK)
	})
	return mux
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down.
func serve(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
