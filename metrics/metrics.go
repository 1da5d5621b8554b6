package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters for the search fan-out and booking handoff. Exposed at /metrics.
var (
	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rushed_searches_total",
		Help: "Search requests issued per category.",
	}, []string{"category"})

	SearchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rushed_search_failures_total",
		Help: "Upstream search failures per category.",
	}, []string{"category"})

	BookingDispatches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rushed_booking_dispatches_total",
		Help: "Booking link handoffs dispatched.",
	})
)
