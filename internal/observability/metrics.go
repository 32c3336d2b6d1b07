// Package observability provides metrics and tracing for the application.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "alcove_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// CacheRequests counts cache-aside lookups by result (hit, miss, bypass).
	CacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "alcove_cache_requests_total",
		Help: "Total number of cache lookups by result",
	}, []string{"result"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "alcove_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// VoteToggles counts upvote toggles by entity kind and resulting action.
	VoteToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "alcove_vote_toggles_total",
		Help: "Total number of upvote toggles by entity and action",
	}, []string{"entity", "action"})

	// CommentsCreated counts created comments by kind (top_level, reply).
	CommentsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "alcove_comments_created_total",
		Help: "Total number of comments created by kind",
	}, []string{"kind"})
)

// ObserveQuery records the latency of a database query.
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		ObserveQuery(operation, table, start)
	}
}
