package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of node RPC and REST operations.",
	}, []string{"operation", "chain_id", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node RPC and REST operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "chain_id", "status"})
)

// RPCClient tracks metrics for calls to the chain node.
type RPCClient struct {
	chainID string
}

// NewRPCClient constructs a metrics collector for node calls.
func NewRPCClient(chainID string) *RPCClient {
	return &RPCClient{chainID: orUnknown(chainID)}
}

// Observe records a single call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	rpcRequestsTotal.WithLabelValues(operation, m.chainID, status).Inc()
	rpcRequestDuration.WithLabelValues(operation, m.chainID, status).Observe(time.Since(started).Seconds())
}
