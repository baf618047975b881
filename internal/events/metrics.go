package events

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	eventsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "kafka_consumer",
			Name:      "events_processed_total",
			Help:      "Total number of successfully processed order events",
		},
	)

	eventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "kafka_consumer",
			Name:      "events_failed_total",
			Help:      "Total number of failed order event processing attempts",
		},
	)

	eventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "kafka_consumer",
			Name:      "events_dlq_total",
			Help:      "Total number of order events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	eventProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "storefront",
			Subsystem: "kafka_consumer",
			Name:      "event_processing_duration_seconds",
			Help:      "Histogram of order event processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	eventsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "storefront",
			Subsystem: "kafka_consumer",
			Name:      "events_in_progress",
			Help:      "Number of order events currently being processed",
		},
	)
)

var eventsPublished = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "kafka_producer",
		Name:      "events_published_total",
		Help:      "Total number of published order events by type and outcome",
	},
	[]string{"type", "outcome"},
)

func RegisterConsumerMetrics() {
	prometheus.MustRegister(
		eventsProcessed,
		eventsFailed,
		eventsDLQ,
		commitErrors,
		eventProcessingDuration,
		eventsInProgress,
	)
}

func RegisterPublisherMetrics() {
	prometheus.MustRegister(eventsPublished)
}
