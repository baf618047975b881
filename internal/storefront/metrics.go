package storefront

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	checkoutsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "checkout",
			Name:      "attempts_total",
			Help:      "Total number of checkout attempts by outcome",
		},
		[]string{"outcome"},
	)

	checkoutAmount = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "storefront",
			Subsystem: "checkout",
			Name:      "order_total",
			Help:      "Histogram of placed order totals",
			Buckets:   []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
		},
	)

	cartRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "cart",
			Name:      "rejections_total",
			Help:      "Total number of rejected cart changes by reason",
		},
		[]string{"reason"},
	)

	transitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "orders",
			Name:      "transitions_total",
			Help:      "Total number of order status change requests by outcome",
		},
		[]string{"outcome"},
	)

	loginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "session",
			Name:      "logins_total",
			Help:      "Total number of login attempts by outcome",
		},
		[]string{"outcome"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		checkoutsTotal,
		checkoutAmount,
		cartRejections,
		transitionsTotal,
		loginsTotal,
	)
}

func outcome(code string) string {
	if code == "" {
		return "error"
	}
	return code
}
