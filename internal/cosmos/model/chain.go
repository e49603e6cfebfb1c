package model

import "time"

// Chain is a tracked blockchain registration row.
type Chain struct {
	ID         int64
	ChainID    string
	ChainName  string
	IconURL    *string
	Website    *string
	InsertedAt time.Time
	UpdatedAt  *time.Time
}

// NewChain describes a chain row to be created at bootstrap.
type NewChain struct {
	ChainID   string
	ChainName string
	IconURL   *string
	Website   *string
}
