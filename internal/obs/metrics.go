// Package obs registers the service's prometheus collectors. Everything
// uses the default registry; the router exposes it at /metrics.
package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamRequests counts Ads API search calls by outcome ("ok",
	// "error", or the HTTP status code).
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ads_upstream_requests_total",
		Help: "Ads API search requests by outcome.",
	}, []string{"outcome"})

	// UpstreamLatency observes Ads API search round-trip time.
	UpstreamLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ads_upstream_request_seconds",
		Help:    "Ads API search latency.",
		Buckets: prometheus.DefBuckets,
	})

	// QueriesParsed counts parsed natural-language queries by intent.
	QueriesParsed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nlq_queries_total",
		Help: "Parsed natural-language queries by classified intent.",
	}, []string{"intent"})

	// HTTPRequests counts inbound API requests by route and status class.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Inbound HTTP requests by path and status.",
	}, []string{"path", "status"})
)
