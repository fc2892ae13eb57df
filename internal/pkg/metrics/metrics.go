package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess          = "success"
	OutcomeValidationError  = "validation_error"
	OutcomeGenerationError  = "generation_error"
	OutcomeMalformedOutput  = "malformed_output"
	OutcomePersistenceError = "persistence_error"
)

// Metrics holds the service collectors. A nil *Metrics is a no-op.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
	generationRequests *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
	generatedQuestions *prometheus.CounterVec
	generationMismatch *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"route", "method", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"route", "method"},
		),
		generationRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interview_generation_requests_total",
				Help: "Interview generation requests by mode and outcome",
			},
			[]string{"mode", "outcome"},
		),
		generationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "interview_generation_duration_seconds",
				Help:    "Duration of the generation model call",
				Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40},
			},
			[]string{"mode"},
		),
		generatedQuestions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interview_generated_questions_total",
				Help: "Questions accepted from the generation model",
			},
			[]string{"mode"},
		),
		generationMismatch: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interview_generation_count_mismatch_total",
				Help: "Generations whose question count differs from the requested amount",
			},
			[]string{"mode"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.generationRequests,
		m.generationDuration,
		m.generatedQuestions,
		m.generationMismatch,
	)

	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records per-route request counts and latency
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		var route string
		if rc := chi.RouteContext(r.Context()); rc != nil {
			route = rc.RoutePattern()
		}
		if route == "" {
			route = "unmatched"
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) ObserveGeneration(mode, outcome string) {
	if m == nil {
		return
	}
	m.generationRequests.WithLabelValues(mode, outcome).Inc()
}

func (m *Metrics) ObserveGenerationDuration(mode string, d time.Duration) {
	if m == nil {
		return
	}
	m.generationDuration.WithLabelValues(mode).Observe(d.Seconds())
}

func (m *Metrics) AddGeneratedQuestions(mode string, n int) {
	if m == nil {
		return
	}
	m.generatedQuestions.WithLabelValues(mode).Add(float64(n))
}

func (m *Metrics) ObserveCountMismatch(mode string) {
	if m == nil {
		return
	}
	m.generationMismatch.WithLabelValues(mode).Inc()
}
