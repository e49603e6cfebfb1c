package indexer

import "time"

const (
	defaultFetchConcurrency = 20
	defaultTxConcurrency    = 20
	defaultJournalLimit     = 1000
	defaultFetchAttempts    = 5
	defaultCommitAttempts   = 5

	blockChannelCapacity = 100
	drainInterval        = 200 * time.Millisecond

	notYetAvailableInitialWait = 200 * time.Millisecond
	notYetAvailableMaxWait     = 2 * time.Second

	retryInitialWait = 500 * time.Millisecond
	retryMaxWait     = 10 * time.Second
)
