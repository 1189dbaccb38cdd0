// Package metrics expone las métricas Prometheus del servicio (HTTP, cálculos FIFO, circuit breaker).
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los colectores del servicio sobre un registry propio.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	FIFORunsTotal      *prometheus.CounterVec
	FIFORunDuration    *prometheus.HistogramVec
	FIFOUnmatchedUnits *prometheus.GaugeVec

	CircuitBreakerState *prometheus.GaugeVec
}

// New crea el registry y registra los colectores bajo el namespace dado (ej. "inventario").
func New(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de peticiones HTTP",
		},
		[]string{"method", "path", "status"},
	)
	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duración de las peticiones HTTP en segundos",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	m.FIFORunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fifo",
			Name:      "runs_total",
			Help:      "Cálculos FIFO ejecutados por fuente y resultado",
		},
		[]string{"source", "result"},
	)
	m.FIFORunDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "fifo",
			Name:      "run_duration_seconds",
			Help:      "Duración de fetch + cálculo FIFO en segundos",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"source"},
	)
	m.FIFOUnmatchedUnits = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "fifo",
			Name:      "unmatched_demand_units",
			Help:      "Unidades vendidas sin lote de compra en el último cálculo, por producto",
		},
		[]string{"product"},
	)

	m.CircuitBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Estado del circuit breaker (0=cerrado, 1=semiabierto, 2=abierto)",
		},
		[]string{"name"},
	)

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.FIFORunsTotal,
		m.FIFORunDuration,
		m.FIFOUnmatchedUnits,
		m.CircuitBreakerState,
	)
	return m
}

// Handler devuelve el handler HTTP de exposición de métricas.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Registry devuelve el registry subyacente.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordHTTPRequest registra una petición atendida.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveRun registra un cálculo FIFO (result: "ok", "fetch_error").
func (m *Metrics) ObserveRun(source, result string, elapsed time.Duration) {
	m.FIFORunsTotal.WithLabelValues(source, result).Inc()
	m.FIFORunDuration.WithLabelValues(source).Observe(elapsed.Seconds())
}

// SetUnmatchedDemand fija la demanda sin respaldo de compras de un producto.
func (m *Metrics) SetUnmatchedDemand(product string, qty float64) {
	m.FIFOUnmatchedUnits.WithLabelValues(product).Set(qty)
}

// SetCircuitBreakerState publica el estado de un circuit breaker.
func (m *Metrics) SetCircuitBreakerState(name string, state int) {
	m.CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
