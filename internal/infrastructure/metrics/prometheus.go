// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clipstream"

var (
	// CacheOperationsTotal tracks cache operations (get, set, delete).
	// Labels:
	//   - operation: get, set, delete
	//   - status: hit, miss, success, error
	//   - cache_type: redis
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_operations_total",
			Help:      "Total number of cache operations",
		},
		[]string{"operation", "status", "cache_type"},
	)

	// ReactionTransitionsTotal tracks reaction state transitions.
	// Labels:
	//   - action: like, dislike
	//   - outcome: set, cleared, switched
	ReactionTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reaction_transitions_total",
			Help:      "Total number of reaction state transitions",
		},
		[]string{"action", "outcome"},
	)

	// NotificationFanoutTotal tracks notification deliveries during fan-out.
	// Labels:
	//   - status: delivered, failed
	NotificationFanoutTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_fanout_total",
			Help:      "Total number of notifications delivered to subscriber inboxes",
		},
		[]string{"status"},
	)

	// BlobCleanupTotal tracks blob compensation outcomes.
	// Labels:
	//   - status: deleted, requeued, failed
	BlobCleanupTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blob_cleanup_total",
			Help:      "Total number of blob cleanup attempts",
		},
		[]string{"status"},
	)

	// SingleflightRequestsTotal tracks singleflight behavior.
	// Labels:
	//   - result: initiated (new execution), shared (reused result)
	SingleflightRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "singleflight_requests_total",
			Help:      "Total number of singleflight requests",
		},
		[]string{"result"},
	)
)

// Cache operation status constants.
const (
	CacheStatusHit     = "hit"
	CacheStatusMiss    = "miss"
	CacheStatusSuccess = "success"
	CacheStatusError   = "error"
)

// Cache operation type constants.
const (
	CacheOpGet    = "get"
	CacheOpSet    = "set"
	CacheOpDelete = "delete"
)

// Cache type constants.
const (
	CacheTypeRedis = "redis"
)

// Reaction action constants.
const (
	ReactionActionLike    = "like"
	ReactionActionDislike = "dislike"
)

// Reaction outcome constants.
const (
	ReactionOutcomeSet      = "set"
	ReactionOutcomeCleared  = "cleared"
	ReactionOutcomeSwitched = "switched"
)

// Notification fan-out status constants.
const (
	FanoutDelivered = "delivered"
	FanoutFailed    = "failed"
)

// Blob cleanup status constants.
const (
	CleanupDeleted  = "deleted"
	CleanupRequeued = "requeued"
	CleanupFailed   = "failed"
)

// Singleflight result constants.
const (
	SingleflightInitiated = "initiated"
	SingleflightShared    = "shared"
)
