package exporter

import "time"

const (
	defaultFlushSize     = 100
	defaultFlushInterval = 2 * time.Second

	// events are sent in chunks of this many rows
	eventFlushThreshold = 50_000
)
