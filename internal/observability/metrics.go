package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dead_poets_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dead_poets_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// AuthAttempts counts authentication attempts by outcome (success/failure).
	AuthAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dead_poets_auth_attempts_total",
		Help: "Total number of login attempts by outcome",
	}, []string{"outcome"})

	// PoemsCreated counts published poems.
	PoemsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dead_poets_poems_created_total",
		Help: "Total number of poems created",
	})

	// FollowMutations counts follow graph mutations by kind (follow/unfollow).
	FollowMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dead_poets_follow_mutations_total",
		Help: "Total number of follow graph mutations by kind",
	}, []string{"kind"})

	// ResetTokensIssued counts password reset tokens issued.
	ResetTokensIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dead_poets_reset_tokens_issued_total",
		Help: "Total number of password reset tokens issued",
	})
)

// ObserveQuery records the latency of a database query starting at start.
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
