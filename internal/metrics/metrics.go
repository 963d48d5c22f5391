package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the process counters exposed on /metrics.
type Collector struct {
	registry         *prometheus.Registry
	Signups          prometheus.Counter
	Logins           *prometheus.CounterVec
	LedgerOperations *prometheus.CounterVec
	MarketFailures   prometheus.Counter
}

// NewCollector builds a collector with its own registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	return &Collector{
		registry: registry,
		Signups: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "signups_total",
			Help: "Total number of successful signups",
		}),
		Logins: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Total number of login attempts by result",
		}, []string{"result"}),
		LedgerOperations: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_operations_total",
			Help: "Total number of ledger operations by kind and result",
		}, []string{"kind", "result"}),
		MarketFailures: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "market_upstream_failures_total",
			Help: "Total number of market data upstream failures",
		}),
	}
}

// Handler serves the registry for scraping.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
