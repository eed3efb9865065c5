package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// pageRendersTotal counts served page renders by format and result.
	pageRendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "benchchart_page_renders_total",
		Help: "Total served page renders by format and result",
	}, []string{"format", "result"})

	// pageRenderDuration tracks page render latency.
	pageRenderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "benchchart_page_render_duration_seconds",
		Help:    "Page render duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
	}, []string{"format"})

	// pageCharts is the number of charts on the served page.
	pageCharts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "benchchart_page_charts",
		Help: "Number of charts rendered on the served page",
	})
)
