package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	exporterFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "exporter",
		Name:      "flush_total",
		Help:      "Count of analytics mirror flushes.",
	}, []string{"chain_id", "kind", "status"})

	exporterFlushSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "exporter",
		Name:      "flush_size",
		Help:      "Rows per analytics mirror flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 9), // 1..65536
	}, []string{"chain_id", "kind"})

	exporterFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "exporter",
		Name:      "flush_duration_seconds",
		Help:      "Duration of analytics mirror flushes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain_id", "kind", "status"})
)

type Exporter struct {
	chainID string
}

func NewExporter(chainID string) *Exporter {
	return &Exporter{chainID: orUnknown(chainID)}
}

func (m Exporter) ObserveFlush(kind string, size int, err error, started time.Time) {
	status := statusOf(err)
	exporterFlushTotal.WithLabelValues(m.chainID, kind, status).Inc()
	exporterFlushSize.WithLabelValues(m.chainID, kind).Observe(float64(size))
	exporterFlushDuration.WithLabelValues(m.chainID, kind, status).Observe(time.Since(started).Seconds())
}
