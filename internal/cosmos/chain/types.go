package chain

import (
	"context"
	"encoding/json"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/model"
)

type (
	// Client is the node contract the pipeline fetches from. GetBlock and
	// GetBlockEvents report heights above the chain head with
	// ErrNotYetAvailable.
	Client interface {
		GetBlock(ctx context.Context, height int64) (*RawBlock, error)
		GetBlockEvents(ctx context.Context, height int64) (*BlockEvents, error)
		GetTransaction(ctx context.Context, hash string) (*TxResult, error)
		GetTransactionMessages(ctx context.Context, hash string) (*TxBody, error)
	}

	// BlockWriter inserts the rows of one committed height. Implementations
	// are bound to a single storage transaction.
	BlockWriter interface {
		InsertBlock(ctx context.Context, chainRowID int64, block model.Block) (int64, error)
		InsertTransaction(ctx context.Context, chainRowID int64, tx model.Transaction) (int64, error)
		InsertMessages(ctx context.Context, transactionID int64, messages []model.Message) error
		InsertEvents(ctx context.Context, chainRowID int64, events []model.Event) error
	}
)

// RawBlock is a block header plus the raw transaction bytes of its body.
type RawBlock struct {
	Header model.Block
	Txs    [][]byte
}

// BlockEvents holds the block-level events of a height.
type BlockEvents struct {
	BeginBlock []RawEvent
	EndBlock   []RawEvent
}

// RawEvent is an event as reported by the node, before flattening.
type RawEvent struct {
	Type       string
	Attributes []RawAttribute
}

// RawAttribute is a single key/value pair of an event.
type RawAttribute struct {
	Key   string
	Value string
	Index bool
}

// TxResult is the execution result of a transaction.
type TxResult struct {
	Hash      string
	Height    int64
	Code      uint32
	CodeSpace string
	Data      string
	Log       string
	Info      string
	GasWanted int64
	GasUsed   int64
	Events    []RawEvent
}

// TxBody is the decoded transaction body served by the REST API.
type TxBody struct {
	Messages []json.RawMessage
	Memo     string
}
