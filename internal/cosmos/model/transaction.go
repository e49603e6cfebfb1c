package model

import (
	"encoding/json"
	"time"
)

// Transaction is an executed transaction with its decoded messages.
type Transaction struct {
	ID         int64
	ChainRowID int64
	Hash       string
	Height     int64
	Code       uint32
	CodeSpace  string
	Data       string
	RawLog     string
	Info       string
	Memo       *string
	GasWanted  int64
	GasUsed    int64
	Timestamp  string
	Messages   []Message
	InsertedAt time.Time
}

// Message is one message of a transaction body, kept as raw JSON.
type Message struct {
	ID            int64
	TransactionID int64
	Seq           int
	RawData       json.RawMessage
	InsertedAt    time.Time
}

// TransactionDetail is a stored transaction together with its events.
type TransactionDetail struct {
	Transaction
	Events []Event
}
