// Package metrics exposes Prometheus collectors for the HTTP server and document store.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	HTTPRequests  *prometheus.CounterVec
	HTTPDuration  *prometheus.HistogramVec
	StoreOps      *prometheus.CounterVec
	StoreDuration *prometheus.HistogramVec
	OrdersCreated *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "code"})
	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	storeOps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "docstore_operations_total",
		Help: "Document store calls by operation, collection and outcome.",
	}, []string{"op", "collection", "outcome"})
	storeDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "docstore_operation_duration_seconds",
		Help:    "Document store call latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"op", "collection"})
	ordersCreated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Orders created by origin channel.",
	}, []string{"origen"})

	r.MustRegister(httpRequests, httpDuration, storeOps, storeDuration, ordersCreated)
	return &Registry{
		reg:           r,
		HTTPRequests:  httpRequests,
		HTTPDuration:  httpDuration,
		StoreOps:      storeOps,
		StoreDuration: storeDuration,
		OrdersCreated: ordersCreated,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

// Gatherer exposes the underlying registry for tests.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// ObserveHTTP records one served request.
func (r *Registry) ObserveHTTP(method, route string, code int, d time.Duration) {
	r.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	r.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveStoreOperation records one document store call.
func (r *Registry) ObserveStoreOperation(op, collection string, err error, d time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.StoreOps.WithLabelValues(op, collection, outcome).Inc()
	r.StoreDuration.WithLabelValues(op, collection).Observe(d.Seconds())
}

// ObserveOrderCreated counts a created order.
func (r *Registry) ObserveOrderCreated(origen string) {
	r.OrdersCreated.WithLabelValues(origen).Inc()
}
