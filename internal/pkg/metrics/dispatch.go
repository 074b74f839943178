package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_orders_created_total",
			Help: "Total number of orders created from the dashboard form",
		},
		[]string{"payment_method"},
	)

	OrdersCancelledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_orders_cancelled_total",
			Help: "Total number of orders removed after cancel confirmation",
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dispatch_active_sessions",
			Help: "Number of signed-in dashboard sessions",
		},
	)

	NotificationsShown = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_notifications_total",
			Help: "Total number of transient notifications raised",
		},
	)
)
