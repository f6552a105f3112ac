package service

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appErrors "github.com/noah-isme/team-pulse-api/pkg/errors"
)

// MetricsService encapsulates Prometheus instrumentation.
type MetricsService struct {
	registry          *prometheus.Registry
	handler           http.Handler
	requestDuration   *prometheus.HistogramVec
	requestTotal      *prometheus.CounterVec
	upstreamDuration  *prometheus.HistogramVec
	feedbackSubmitted *prometheus.CounterVec
	reportFailures    *prometheus.CounterVec
	rateLimited       *prometheus.CounterVec
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	upstreamDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "upstream_request_duration_seconds",
		Help:    "Duration of generation and classification calls",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 20, 40, 80},
	}, []string{"service", "target", "outcome"})

	feedbackSubmitted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feedback_submissions_total",
		Help: "Feedback submissions by outcome",
	}, []string{"outcome"})

	reportFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "report_generation_failures_total",
		Help: "Manager report failures by error code",
	}, []string{"code"})

	rateLimited := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rate_limited_requests_total",
		Help: "Requests rejected by the per-user limiter",
	}, []string{"scope"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, upstreamDuration, feedbackSubmitted, reportFailures, rateLimited, goroutines)

	return &MetricsService{
		registry:          registry,
		handler:           promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:   requestDuration,
		requestTotal:      requestTotal,
		upstreamDuration:  upstreamDuration,
		feedbackSubmitted: feedbackSubmitted,
		reportFailures:    reportFailures,
		rateLimited:       rateLimited,
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// ObserveUpstream records one outbound generation or classification call.
func (m *MetricsService) ObserveUpstream(service, target string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.upstreamDuration.WithLabelValues(service, target, outcome).Observe(duration.Seconds())
}

// RecordSubmission counts a feedback submission attempt.
func (m *MetricsService) RecordSubmission(err error) {
	if m == nil {
		return
	}
	outcome := "stored"
	if err != nil {
		outcome = "rejected"
		if !errors.Is(err, appErrors.ErrValidation) {
			outcome = "failed"
		}
	}
	m.feedbackSubmitted.WithLabelValues(outcome).Inc()
}

// RecordReportFailure counts a failed report by error code.
func (m *MetricsService) RecordReportFailure(err error) {
	if m == nil || err == nil {
		return
	}
	m.reportFailures.WithLabelValues(appErrors.FromError(err).Code).Inc()
}

// RecordRateLimited counts a rejected request.
func (m *MetricsService) RecordRateLimited(scope string) {
	if m == nil {
		return
	}
	m.rateLimited.WithLabelValues(scope).Inc()
}
