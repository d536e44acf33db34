package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the dashboard.
type Metrics struct {
	FeedRequests        *prometheus.CounterVec // labels: severity, window, outcome={success,error}
	FeedRequestDuration prometheus.Histogram
	FeedCache           *prometheus.CounterVec // labels: result={hit,miss}

	DashboardRenders *prometheus.CounterVec // labels: outcome={ok,empty,feed_error,bad_request}
	EventsReturned   prometheus.Histogram
}

// NewMetrics creates and registers all dashboard metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FeedRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "terremoto",
			Name:      "feed_requests_total",
			Help:      "Upstream USGS feed requests by severity, window, and outcome.",
		}, []string{"severity", "window", "outcome"}),
		FeedRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "terremoto",
			Name:      "feed_request_duration_seconds",
			Help:      "Duration of upstream feed requests.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		FeedCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "terremoto",
			Name:      "feed_cache_total",
			Help:      "Feed cache lookups by result.",
		}, []string{"result"}),
		DashboardRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "terremoto",
			Name:      "dashboard_renders_total",
			Help:      "Dashboard rendering passes by outcome.",
		}, []string{"outcome"}),
		EventsReturned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "terremoto",
			Name:      "events_returned",
			Help:      "Events in the filtered set per rendering pass.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		}),
	}

	prometheus.MustRegister(
		m.FeedRequests,
		m.FeedRequestDuration,
		m.FeedCache,
		m.DashboardRenders,
		m.EventsReturned,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FeedRequests:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "terremoto", Name: "feed_requests_total"}, []string{"severity", "window", "outcome"}),
		FeedRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "terremoto", Name: "feed_request_duration_seconds"}),
		FeedCache:           prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "terremoto", Name: "feed_cache_total"}, []string{"result"}),
		DashboardRenders:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "terremoto", Name: "dashboard_renders_total"}, []string{"outcome"}),
		EventsReturned:      prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "terremoto", Name: "events_returned"}),
	}
}
