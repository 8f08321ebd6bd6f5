// Package metrics defines the Prometheus collectors for the service and
// exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	HTTPRequestsTotal       *prometheus.CounterVec
	HTTPRequestDuration     *prometheus.HistogramVec
	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamRequestDuration *prometheus.HistogramVec
	RecommendationsServed   prometheus.Histogram
	VectorizationFailures   *prometheus.CounterVec
	QuizAnalysesTotal       *prometheus.CounterVec
	LessonsCompletedTotal   prometheus.Counter

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them on reg. Passing a fresh
// prometheus.NewRegistry keeps tests isolated from the global registry.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, route, and status.",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "route"},
		),
		UpstreamRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_requests_total",
				Help: "Calls to the course platform by resource and outcome (ok, status_error, transport_error, decode_error).",
			},
			[]string{"resource", "outcome"},
		),
		UpstreamRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "upstream_request_duration_seconds",
				Help:    "Course platform call latency in seconds.",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"resource"},
		),
		RecommendationsServed: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "recommendations_returned_count",
				Help:    "Number of courses returned per recommendation request.",
				Buckets: []float64{0, 1, 2, 3, 5, 10},
			},
		),
		VectorizationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vectorization_failures_total",
				Help: "TF-IDF or similarity failures by pipeline.",
			},
			[]string{"pipeline"},
		),
		QuizAnalysesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quiz_analyses_total",
				Help: "Intro quiz analyses by result (passed, below_threshold, error).",
			},
			[]string{"result"},
		),
		LessonsCompletedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "lessons_auto_completed_total",
				Help: "Lessons marked complete from intro quiz results.",
			},
		),
		gatherer: reg,
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.UpstreamRequestsTotal,
		m.UpstreamRequestDuration,
		m.RecommendationsServed,
		m.VectorizationFailures,
		m.QuizAnalysesTotal,
		m.LessonsCompletedTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler returns the scrape handler for the registry the metrics were
// registered on.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
