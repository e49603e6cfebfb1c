package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	indexerFetchHeightTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "fetch_height_total",
		Help:      "Count of per-height fetch attempts.",
	}, []string{"chain_id", "status"})

	indexerFetchHeightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "fetch_height_duration_seconds",
		Help:      "Duration of fetching everything for one height.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain_id", "status"})

	indexerNotYetAvailableTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "not_yet_available_total",
		Help:      "Count of fetches for heights above the chain head.",
	}, []string{"chain_id"})

	indexerCommitHeightTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "commit_height_total",
		Help:      "Count of per-height commit attempts.",
	}, []string{"chain_id", "status"})

	indexerCommitHeightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "commit_height_duration_seconds",
		Help:      "Duration of committing one height.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"chain_id", "status"})

	indexerCheckpoint = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "checkpoint_height",
		Help:      "Next height expected by the committer.",
	}, []string{"chain_id"})

	indexerJournalSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "journal_size",
		Help:      "Fetched heights waiting for in-order release.",
	}, []string{"chain_id"})
)

// Indexer tracks metrics of the fetch-reorder-commit pipeline.
type Indexer struct {
	chainID string
}

// NewIndexer constructs an Indexer collector for a chain.
func NewIndexer(chainID string) *Indexer {
	return &Indexer{chainID: orUnknown(chainID)}
}

func (m Indexer) ObserveFetchHeight(err error, _ int64, started time.Time) {
	status := statusOf(err)
	indexerFetchHeightTotal.WithLabelValues(m.chainID, status).Inc()
	indexerFetchHeightDuration.WithLabelValues(m.chainID, status).Observe(time.Since(started).Seconds())
}

func (m Indexer) ObserveNotYetAvailable(_ int64) {
	indexerNotYetAvailableTotal.WithLabelValues(m.chainID).Inc()
}

func (m Indexer) ObserveCommitHeight(err error, _ int64, started time.Time) {
	status := statusOf(err)
	indexerCommitHeightTotal.WithLabelValues(m.chainID, status).Inc()
	indexerCommitHeightDuration.WithLabelValues(m.chainID, status).Observe(time.Since(started).Seconds())
}

func (m Indexer) ObserveCheckpoint(height int64) {
	indexerCheckpoint.WithLabelValues(m.chainID).Set(float64(height))
}

func (m Indexer) ObserveJournalSize(size int) {
	indexerJournalSize.WithLabelValues(m.chainID).Set(float64(size))
}
