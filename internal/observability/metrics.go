// Package observability holds the Prometheus metrics exported on /metrics.
//
// Metrics are registered on a dedicated registry rather than the global
// default, so tests and embedded servers can create isolated instances.
package observability

import (
	"strconv"

	"gpuadvisor/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "gpuadvisor"

// Metrics holds all collectors served by the advisor
type Metrics struct {
	Registry *prometheus.Registry

	// PredictionsTotal counts predictions served.
	// Labels: confidence (high, medium, low)
	PredictionsTotal *prometheus.CounterVec

	// UnattainableTargetsTotal counts optimal-settings searches that fell back
	// to the lowest configuration.
	UnattainableTargetsTotal prometheus.Counter

	GPUTemperature prometheus.Gauge
	GPUUtilization prometheus.Gauge

	// HTTPRequestsTotal counts API requests.
	// Labels: route (gin full path), status (HTTP code)
	HTTPRequestsTotal *prometheus.CounterVec
}

// NewMetrics creates the collectors on a fresh registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		PredictionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "predictions_total",
			Help:      "Total FPS predictions served by confidence",
		}, []string{"confidence"}),
		UnattainableTargetsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "unattainable_targets_total",
			Help:      "Optimal settings searches where no configuration reached the target",
		}),
		GPUTemperature: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "gpu_temperature_celsius",
			Help:      "Last sampled GPU temperature",
		}),
		GPUUtilization: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "gpu_utilization_percent",
			Help:      "Last sampled GPU utilization",
		}),
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by route and status",
		}, []string{"route", "status"}),
	}
}

// ObservePrediction records a served prediction. Nil-safe.
func (m *Metrics) ObservePrediction(pred *models.Prediction) {
	if m == nil || pred == nil {
		return
	}
	m.PredictionsTotal.WithLabelValues(string(pred.Confidence)).Inc()
}

// ObserveSettings records an optimal-settings outcome. Nil-safe.
func (m *Metrics) ObserveSettings(result *models.SettingsResult) {
	if m == nil || result == nil {
		return
	}
	m.ObservePrediction(result.Prediction)
	if result.Warning != "" {
		m.UnattainableTargetsTotal.Inc()
	}
}

// ObserveGPU updates the GPU gauges from a history sample. Nil-safe.
func (m *Metrics) ObserveGPU(sample models.GPUHistory) {
	if m == nil {
		return
	}
	m.GPUTemperature.Set(sample.Temperature)
	m.GPUUtilization.Set(sample.GPUUsage)
}

// ObserveRequest records one HTTP response. Nil-safe.
func (m *Metrics) ObserveRequest(route string, status int) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
}
