package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	EntriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "budget_entries_total",
			Help: "Budget entries created, by type",
		},
		[]string{"type"}, // income|expense
	)
	EntriesFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "budget_entries_failed_total",
			Help: "Budget entry writes that failed at the store",
		},
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(EntriesTotal)
	prometheus.MustRegister(EntriesFailed)
}
