package main

import (
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

type config struct {
	ConfigFile string `long:"config" env:"COSMOS_INDEXER_CONFIG" description:"optional INI file; flags and env override it"`

	ChainID      string `long:"chain-id" env:"COSMOS_INDEXER_CHAIN_ID" description:"chain id as reported by the node" required:"true"`
	ChainName    string `long:"chain-name" env:"COSMOS_INDEXER_CHAIN_NAME" description:"human readable chain name" required:"true"`
	ChainIconURL string `long:"chain-icon-url" env:"COSMOS_INDEXER_CHAIN_ICON_URL" description:"chain icon url"`
	ChainWebsite string `long:"chain-website" env:"COSMOS_INDEXER_CHAIN_WEBSITE" description:"chain website"`

	RPCURL          string        `long:"rpc-url" env:"COSMOS_INDEXER_RPC_URL" description:"Tendermint RPC URL" default:"http://127.0.0.1:26657"`
	RESTURL         string        `long:"rest-url" env:"COSMOS_INDEXER_REST_URL" description:"Cosmos REST API URL" default:"http://127.0.0.1:1317"`
	RPCTimeout      time.Duration `long:"rpc-timeout" env:"COSMOS_INDEXER_RPC_TIMEOUT" description:"HTTP timeout for node requests" default:"30s"`
	RPCRetries      int           `long:"rpc-retries" env:"COSMOS_INDEXER_RPC_RETRIES" description:"transport retries per node request" default:"3"`
	RPCRPS          int           `long:"rpc-rps" env:"COSMOS_INDEXER_RPC_RPS" description:"node requests per second, 0 for unlimited" default:"0"`
	Base64Attribute bool          `long:"event-attributes-base64" env:"COSMOS_INDEXER_EVENT_ATTRIBUTES_BASE64" description:"decode base64 event attributes (Tendermint 0.34)"`

	DBDriver    string `long:"db-driver" env:"COSMOS_INDEXER_DB_DRIVER" description:"relational store driver" choice:"postgres" choice:"sqlite" default:"postgres"`
	PostgresDSN string `long:"postgres-dsn" env:"COSMOS_INDEXER_POSTGRES_DSN" description:"database DSN (sqlite: file path)" required:"true"`
	AutoMigrate bool   `long:"auto-migrate" env:"COSMOS_INDEXER_AUTO_MIGRATE" description:"create tables from models on startup"`

	StartHeight      int64  `long:"start-height" env:"COSMOS_INDEXER_START_HEIGHT" description:"first height to index" default:"1"`
	Resume           string `long:"resume" env:"COSMOS_INDEXER_RESUME" description:"continue after the highest stored height" choice:"true" choice:"false" default:"true"`
	FetchConcurrency int    `long:"fetch-concurrency" env:"COSMOS_INDEXER_FETCH_CONCURRENCY" description:"heights fetched in parallel" default:"20"`
	TxConcurrency    int    `long:"tx-concurrency" env:"COSMOS_INDEXER_TX_CONCURRENCY" description:"transactions fetched in parallel per height" default:"20"`
	JournalLimit     int    `long:"journal-limit" env:"COSMOS_INDEXER_JOURNAL_LIMIT" description:"fetched heights held before dispatch pauses" default:"1000"`
	FetchAttempts    int    `long:"fetch-attempts" env:"COSMOS_INDEXER_FETCH_ATTEMPTS" description:"attempts per height on transient errors" default:"5"`
	CommitAttempts   int    `long:"commit-attempts" env:"COSMOS_INDEXER_COMMIT_ATTEMPTS" description:"attempts per commit on transient errors" default:"5"`

	ClickhouseDSN string `long:"clickhouse-dsn" env:"COSMOS_INDEXER_CLICKHOUSE_DSN" description:"optional ClickHouse DSN for the analytics mirror"`
	ExportRPS     int    `long:"export-rps" env:"COSMOS_INDEXER_EXPORT_RPS" description:"ClickHouse flushes per second, 0 for unlimited" default:"0"`

	MetricsAddr string `long:"metrics-addr" env:"COSMOS_INDEXER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

// parseConfig reads an optional INI file named by --config, then flags and
// environment on top of it.
func parseConfig(args []string) (config, error) {
	var pre struct {
		ConfigFile string `long:"config" env:"COSMOS_INDEXER_CONFIG"`
	}
	if _, err := flags.NewParser(&pre, flags.IgnoreUnknown).ParseArgs(args); err != nil {
		return config{}, err
	}

	cfg := config{}
	parser := flags.NewParser(&cfg, flags.Default)
	if pre.ConfigFile != "" {
		if err := flags.NewIniParser(parser).ParseFile(pre.ConfigFile); err != nil {
			return config{}, fmt.Errorf("read config file %s: %w", pre.ConfigFile, err)
		}
	}
	if _, err := parser.ParseArgs(args); err != nil {
		return config{}, err
	}

	if cfg.StartHeight <= 0 {
		return config{}, fmt.Errorf("start height must be positive, got %d", cfg.StartHeight)
	}
	return cfg, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
