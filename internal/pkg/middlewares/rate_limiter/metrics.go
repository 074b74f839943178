package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RejectedRequestsTotal считает запросы, отброшенные token bucket.
var RejectedRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "dispatch_rate_limit_rejected_total",
		Help: "Dashboard requests rejected with 429 by the token bucket limiter",
	},
	[]string{"method", "route"},
)
