package handler

import (
	"github.com/SergeyBogomolovv/techmarket/internal/contract"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace",
			Subsystem: "orders",
			Name:      "create_requests_total",
			Help:      "Total number of order creation requests by outcome",
		},
		[]string{"outcome"},
	)

	orderValue = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "marketplace",
			Subsystem: "orders",
			Name:      "total_amount",
			Help:      "Histogram of created order totals",
			Buckets:   []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
		},
	)

	statusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace",
			Subsystem: "orders",
			Name:      "status_changes_total",
			Help:      "Total number of order status change requests by target status and outcome",
		},
		[]string{"status", "outcome"},
	)

	registrations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace",
			Subsystem: "accounts",
			Name:      "registrations_total",
			Help:      "Total number of registrations by role",
		},
		[]string{"role"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersCreated,
		orderValue,
		statusChanges,
		registrations,
	)
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if code := contract.ErrorCode(err); code != "" {
		return code
	}
	return "error"
}
