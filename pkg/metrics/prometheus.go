package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	DocumentsProcessed    prometheus.Counter
	ItinerariesFused      prometheus.Counter
	VenuesParsed          prometheus.Counter
	DestinationFallbacks  prometheus.Counter
	ScheduleParseFailures prometheus.Counter
	ProcessingTime        prometheus.Histogram
	ErrorsCount           *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		DocumentsProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_processed_total",
			Help:      "The total number of processed travel documents",
		}),
		ItinerariesFused: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "itineraries_fused_total",
			Help:      "The total number of fused itineraries",
		}),
		VenuesParsed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "venues_parsed_total",
			Help:      "The total number of venues parsed from content blocks",
		}),
		DestinationFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "destination_fallbacks_total",
			Help:      "Itineraries fused without a resolvable destination",
		}),
		ScheduleParseFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schedule_parse_failures_total",
			Help:      "Schedules degraded because the trip dates did not parse",
		}),
		ProcessingTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "trip_processing_time_seconds",
			Help:      "Time taken to process a trip",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
