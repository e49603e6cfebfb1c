package tendermint

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCMetrics records metrics for node calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
