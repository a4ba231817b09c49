// Package metrics expone las métricas Prometheus de la consola.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/inventory-console/internal/domain/inventory"
)

const namespace = "inventory_console"

// Metrics agrupa los collectors sobre un registry propio.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	upstreamDuration *prometheus.HistogramVec
	summaryLookups   *prometheus.CounterVec

	products      prometheus.Gauge
	lowStock      prometheus.Gauge
	todayIncoming prometheus.Gauge
	todayOutgoing prometheus.Gauge
}

// New registra todos los collectors (más los de Go y proceso).
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Peticiones HTTP atendidas por la consola.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duración de las peticiones HTTP atendidas.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Duración de las llamadas a la API de inventario (status 0 = error de red).",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		summaryLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dashboard_summary_total",
			Help:      "Resúmenes de dashboard servidos, por origen (computed, cached).",
		}, []string{"source"}),
		products: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "products",
			Help:      "Productos en el último resumen calculado.",
		}),
		lowStock: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "low_stock_products",
			Help:      "Productos en o por debajo de su stock mínimo.",
		}),
		todayIncoming: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "today_incoming_units",
			Help:      "Unidades ingresadas hoy.",
		}),
		todayOutgoing: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "today_outgoing_units",
			Help:      "Unidades despachadas hoy.",
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests, m.httpDuration, m.upstreamDuration, m.summaryLookups,
		m.products, m.lowStock, m.todayIncoming, m.todayOutgoing,
	)
	return m
}

// Handler sirve /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry expone el registry (tests).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTP registra una petición atendida.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveUpstream implementa api.Observer.
func (m *Metrics) ObserveUpstream(method, route string, status int, elapsed time.Duration) {
	m.upstreamDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// ObserveSummary actualiza los gauges con el resumen servido. cached indica si vino del memo.
func (m *Metrics) ObserveSummary(s *inventory.Summary, cached bool) {
	source := "computed"
	if cached {
		source = "cached"
	}
	m.summaryLookups.WithLabelValues(source).Inc()
	m.products.Set(float64(s.TotalProducts))
	m.lowStock.Set(float64(s.LowStockCount))
	m.todayIncoming.Set(float64(s.TodayIncoming))
	m.todayOutgoing.Set(float64(s.TodayOutgoing))
}
