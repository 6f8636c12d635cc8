// Copyright (c) 2025 Shreyashh2909.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics exposes Prometheus instrumentation for the API and the
// upstream LLM calls. A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pocketsmart"

// LLM attempt outcomes
const (
	OutcomeSuccess      = "success"
	OutcomeRateLimited  = "rate_limited"
	OutcomeUnauthorized = "unauthorized"
	OutcomeError        = "error"
)

type Metrics struct {
	registry *prometheus.Registry

	// Labels: route, status
	HTTPRequestsTotal *prometheus.CounterVec
	// Labels: route
	HTTPRequestDuration *prometheus.HistogramVec

	// Labels: outcome
	LLMAttemptsTotal *prometheus.CounterVec
	LLMDuration      prometheus.Histogram
	LLMRetriesTotal  prometheus.Counter

	// Labels: result (ok, invalid)
	AnalysesTotal *prometheus.CounterVec
}

// New builds a private registry with process and Go runtime collectors
// plus the application metrics.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total HTTP requests by route and status code",
			},
			[]string{"route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency by route",
				Buckets:   []float64{0.005, 0.05, 0.25, 1, 2.5, 5, 10, 20, 30, 60, 90},
			},
			[]string{"route"},
		),
		LLMAttemptsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "llm",
				Name:      "attempts_total",
				Help:      "Chat completion attempts by outcome",
			},
			[]string{"outcome"},
		),
		LLMDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "llm",
				Name:      "request_duration_seconds",
				Help:      "Latency of single chat completion attempts",
				Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
			},
		),
		LLMRetriesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "llm",
				Name:      "retries_total",
				Help:      "Retries scheduled after a rate-limit response",
			},
		),
		AnalysesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "analyses_total",
				Help:      "Analyze requests by validation result",
			},
			[]string{"result"},
		),
	}
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry (tests gather from it)
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveHTTP(route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveLLMAttempt(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.LLMAttemptsTotal.WithLabelValues(outcome).Inc()
	m.LLMDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) IncLLMRetry() {
	if m == nil {
		return
	}
	m.LLMRetriesTotal.Inc()
}

func (m *Metrics) IncAnalysis(result string) {
	if m == nil {
		return
	}
	m.AnalysesTotal.WithLabelValues(result).Inc()
}
