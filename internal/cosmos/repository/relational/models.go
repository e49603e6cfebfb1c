package relational

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/model"
)

type chainRow struct {
	ID         int64      `gorm:"column:id;primaryKey;autoIncrement"`
	ChainID    string     `gorm:"column:chain_id;type:varchar(128);not null;uniqueIndex:chains_chain_id_key"`
	ChainName  string     `gorm:"column:chain_name;type:varchar(128);not null"`
	IconURL    *string    `gorm:"column:icon_url;type:text"`
	Website    *string    `gorm:"column:website;type:text"`
	InsertedAt time.Time  `gorm:"column:inserted_at;not null"`
	UpdatedAt  *time.Time `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (chainRow) TableName() string { return "chains" }

type blockRow struct {
	ID                 int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ChainRowID         int64     `gorm:"column:chain_id;not null;uniqueIndex:blocks_chain_id_height_key,priority:1"`
	Height             int64     `gorm:"column:height;not null;uniqueIndex:blocks_chain_id_height_key,priority:2"`
	BlockHash          string    `gorm:"column:block_hash;type:varchar(64);not null"`
	PrevHash           string    `gorm:"column:prev_hash;type:varchar(64);not null"`
	ProposerAddress    string    `gorm:"column:proposer_address;type:varchar(64);not null"`
	LastCommitHash     string    `gorm:"column:last_commit_hash;type:varchar(64);not null"`
	DataHash           string    `gorm:"column:data_hash;type:varchar(64);not null"`
	ValidatorsHash     string    `gorm:"column:validators_hash;type:varchar(64);not null"`
	NextValidatorsHash string    `gorm:"column:next_validators_hash;type:varchar(64);not null"`
	ConsensusHash      string    `gorm:"column:consensus_hash;type:varchar(64);not null"`
	AppHash            string    `gorm:"column:app_hash;type:varchar(64);not null"`
	LastResultHash     string    `gorm:"column:last_result_hash;type:varchar(64);not null"`
	EvidenceHash       string    `gorm:"column:evidence_hash;type:varchar(64);not null"`
	BlockTime          time.Time `gorm:"column:block_time;not null"`
	InsertedAt         time.Time `gorm:"column:inserted_at;not null"`
}

func (blockRow) TableName() string { return "blocks" }

type transactionRow struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ChainRowID int64     `gorm:"column:chain_id;not null;index:transactions_chain_id_height_idx,priority:1"`
	Hash       string    `gorm:"column:transaction_hash;type:varchar(64);not null;uniqueIndex:transactions_transaction_hash_key"`
	Height     int64     `gorm:"column:height;not null;index:transactions_chain_id_height_idx,priority:2"`
	Code       int32     `gorm:"column:code;not null"`
	CodeSpace  string    `gorm:"column:code_space;type:text;not null"`
	Data       string    `gorm:"column:data;type:text;not null"`
	RawLog     string    `gorm:"column:raw_log;type:text;not null"`
	Info       string    `gorm:"column:info;type:text;not null"`
	Memo       *string   `gorm:"column:memo;type:text"`
	GasWanted  int64     `gorm:"column:gas_wanted;not null"`
	GasUsed    int64     `gorm:"column:gas_used;not null"`
	Timestamp  string    `gorm:"column:tx_timestamp;type:varchar(64);not null"`
	InsertedAt time.Time `gorm:"column:inserted_at;not null"`
}

func (transactionRow) TableName() string { return "transactions" }

type messageRow struct {
	ID            int64          `gorm:"column:id;primaryKey;autoIncrement"`
	TransactionID int64          `gorm:"column:transaction_id;not null;index:messages_transaction_id_idx"`
	Seq           int32          `gorm:"column:seq;not null"`
	RawData       datatypes.JSON `gorm:"column:rawdata;type:jsonb;not null"`
	InsertedAt    time.Time      `gorm:"column:inserted_at;not null"`
}

func (messageRow) TableName() string { return "messages" }

type eventRow struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ChainRowID  int64     `gorm:"column:chain_id;not null;index:events_chain_id_block_height_idx,priority:1"`
	Origin      int16     `gorm:"column:tx_type;type:smallint;not null"`
	TxHash      *string   `gorm:"column:transaction_hash;type:varchar(64);index:events_transaction_hash_idx"`
	BlockHeight int64     `gorm:"column:block_height;not null;index:events_chain_id_block_height_idx,priority:2"`
	Seq         int32     `gorm:"column:event_seq;not null"`
	Type        string    `gorm:"column:event_type;type:text;not null"`
	Key         string    `gorm:"column:event_key;type:text;not null"`
	Value       string    `gorm:"column:event_value;type:text;not null"`
	Indexed     bool      `gorm:"column:indexed;not null"`
	InsertedAt  time.Time `gorm:"column:inserted_at;not null"`
}

func (eventRow) TableName() string { return "events" }

func (r chainRow) toModel() model.Chain {
	return model.Chain{
		ID:         r.ID,
		ChainID:    r.ChainID,
		ChainName:  r.ChainName,
		IconURL:    r.IconURL,
		Website:    r.Website,
		InsertedAt: r.InsertedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func newBlockRow(chainRowID int64, b model.Block, now time.Time) blockRow {
	return blockRow{
		ChainRowID:         chainRowID,
		Height:             b.Height,
		BlockHash:          b.BlockHash,
		PrevHash:           b.PrevHash,
		ProposerAddress:    b.ProposerAddress,
		LastCommitHash:     b.LastCommitHash,
		DataHash:           b.DataHash,
		ValidatorsHash:     b.ValidatorsHash,
		NextValidatorsHash: b.NextValidatorsHash,
		ConsensusHash:      b.ConsensusHash,
		AppHash:            b.AppHash,
		LastResultHash:     b.LastResultHash,
		EvidenceHash:       b.EvidenceHash,
		BlockTime:          b.BlockTime.UTC(),
		InsertedAt:         now,
	}
}

func (r blockRow) toModel() model.Block {
	return model.Block{
		ID:                 r.ID,
		ChainRowID:         r.ChainRowID,
		Height:             r.Height,
		BlockHash:          r.BlockHash,
		PrevHash:           r.PrevHash,
		ProposerAddress:    r.ProposerAddress,
		LastCommitHash:     r.LastCommitHash,
		DataHash:           r.DataHash,
		ValidatorsHash:     r.ValidatorsHash,
		NextValidatorsHash: r.NextValidatorsHash,
		ConsensusHash:      r.ConsensusHash,
		AppHash:            r.AppHash,
		LastResultHash:     r.LastResultHash,
		EvidenceHash:       r.EvidenceHash,
		BlockTime:          r.BlockTime.UTC(),
		InsertedAt:         r.InsertedAt,
	}
}

func (r transactionRow) toModel() model.Transaction {
	return model.Transaction{
		ID:         r.ID,
		ChainRowID: r.ChainRowID,
		Hash:       r.Hash,
		Height:     r.Height,
		Code:       uint32(r.Code), //nolint:gosec // stored from a uint32
		CodeSpace:  r.CodeSpace,
		Data:       r.Data,
		RawLog:     r.RawLog,
		Info:       r.Info,
		Memo:       r.Memo,
		GasWanted:  r.GasWanted,
		GasUsed:    r.GasUsed,
		Timestamp:  r.Timestamp,
		InsertedAt: r.InsertedAt,
	}
}

func (r messageRow) toModel() model.Message {
	return model.Message{
		ID:            r.ID,
		TransactionID: r.TransactionID,
		Seq:           int(r.Seq),
		RawData:       json.RawMessage(r.RawData),
		InsertedAt:    r.InsertedAt,
	}
}

func (r eventRow) toModel() model.Event {
	return model.Event{
		ID:          r.ID,
		ChainRowID:  r.ChainRowID,
		Origin:      model.EventOrigin(r.Origin),
		TxHash:      r.TxHash,
		BlockHeight: r.BlockHeight,
		Seq:         int(r.Seq),
		Type:        r.Type,
		Key:         r.Key,
		Value:       r.Value,
		Indexed:     r.Indexed,
		InsertedAt:  r.InsertedAt,
	}
}
