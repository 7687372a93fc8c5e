package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devteam_mutations_total",
		Help: "Mutations by collection, operation and outcome",
	}, []string{"collection", "op", "outcome"})

	PersistFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devteam_persist_failures_total",
		Help: "Failed writes of the state to the persistence backend",
	})

	PersistDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "devteam_persist_duration_seconds",
		Help:    "Duration of full state writes",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	})

	Records = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "devteam_records",
		Help: "Current number of records per collection",
	}, []string{"collection"})
)

const (
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
	OutcomeDeclined = "declined"
)
