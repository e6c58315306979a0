// Package metrics defines and registers all custom Prometheus metrics for
// the storefront gateway. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// CartMutationsTotal counts cart mutation attempts.
// Labels:
//   - op: "add", "remove", "update", "clear"
//   - result: "ok", "unauthorized", "invalid"
var CartMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_mutations_total",
		Help:      "Total number of cart mutation attempts, by operation and result.",
	},
	[]string{"op", "result"},
)

// SessionTransitionsTotal counts session state transitions.
// Label:
//   - event: "login" or "logout"
var SessionTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_transitions_total",
		Help:      "Total number of session login/logout transitions.",
	},
	[]string{"event"},
)

// CheckoutsTotal counts checkout attempts.
// Label:
//   - result: "ok", "rejected", "upstream_error"
var CheckoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkouts_total",
		Help:      "Total number of checkout attempts, by result.",
	},
	[]string{"result"},
)

// UpstreamRequestDuration measures round-trip time to the remote
// storefront API.
// Label:
//   - service: "catalog", "orders", or "auth"
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of requests to the remote storefront services.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"service"},
)
