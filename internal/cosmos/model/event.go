package model

import "time"

// EventOrigin tells where an event was emitted.
type EventOrigin int16

const (
	EventOriginTransaction EventOrigin = 1
	EventOriginBeginBlock  EventOrigin = 2
	EventOriginEndBlock    EventOrigin = 3
)

func (o EventOrigin) String() string {
	switch o {
	case EventOriginTransaction:
		return "transaction"
	case EventOriginBeginBlock:
		return "begin_block"
	case EventOriginEndBlock:
		return "end_block"
	default:
		return "unknown"
	}
}

// Event is a single flattened event attribute.
type Event struct {
	ID          int64
	ChainRowID  int64
	Origin      EventOrigin
	TxHash      *string
	BlockHeight int64
	Seq         int
	Type        string
	Key         string
	Value       string
	Indexed     bool
	InsertedAt  time.Time
}
