package search

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
)

const (
	modeSolo = "solo"
	modeDuo  = "duo"

	resultSuccess  = "success"
	resultError    = "error"
	resultCanceled = "canceled"
)

var tracer = otel.Tracer("valveflow.search")

var (
	// searchTotal counts finished searches by mode and outcome.
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "valveflow_search_total",
		Help: "Total searches by mode and result",
	}, []string{"mode", "result"})

	// searchNodes counts expanded (non-memoized) search states.
	searchNodes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "valveflow_search_nodes_total",
		Help: "Total expanded search states",
	}, []string{"mode"})

	// searchMemoHits counts states answered from the memo.
	searchMemoHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "valveflow_search_memo_hits_total",
		Help: "Total search states answered from the memo",
	}, []string{"mode"})

	// searchDuration tracks wall time per search.
	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "valveflow_search_duration_seconds",
		Help:    "Search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12), // 0.1ms to ~7min
	}, []string{"mode"})
)
