package model

import "time"

// Block holds block header metadata. ID, ChainRowID and InsertedAt are set
// only on rows read back from storage.
type Block struct {
	ID                 int64
	ChainRowID         int64
	Height             int64
	BlockHash          string
	PrevHash           string
	ProposerAddress    string
	LastCommitHash     string
	DataHash           string
	ValidatorsHash     string
	NextValidatorsHash string
	ConsensusHash      string
	AppHash            string
	LastResultHash     string
	EvidenceHash       string
	BlockTime          time.Time
	InsertedAt         time.Time
}

// CommittedBlock is everything fetched for one height, ready to be persisted
// as a single unit.
type CommittedBlock struct {
	Block  Block
	Txs    []Transaction
	Events []Event
}

// Height returns the block height of the committed block.
func (b *CommittedBlock) Height() int64 {
	return b.Block.Height
}
