package transport

import (
	"encoding/json"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/model"
)

type chainResponse struct {
	ID         int64      `json:"id"`
	ChainID    string     `json:"chain_id"`
	ChainName  string     `json:"chain_name"`
	IconURL    *string    `json:"icon_url"`
	Website    *string    `json:"website_url"`
	InsertedAt time.Time  `json:"inserted_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

type blockResponse struct {
	ID                 int64     `json:"id"`
	ChainID            int64     `json:"chain_id"`
	Height             int64     `json:"height"`
	BlockHash          string    `json:"block_hash"`
	PrevHash           string    `json:"prev_hash"`
	ProposerAddress    string    `json:"proposer_address"`
	LastCommitHash     string    `json:"last_commit_hash"`
	DataHash           string    `json:"data_hash"`
	ValidatorsHash     string    `json:"validators_hash"`
	NextValidatorsHash string    `json:"next_validators_hash"`
	ConsensusHash      string    `json:"consensus_hash"`
	AppHash            string    `json:"app_hash"`
	LastResultHash     string    `json:"last_result_hash"`
	EvidenceHash       string    `json:"evidence_hash"`
	BlockTime          time.Time `json:"block_time"`
	InsertedAt         time.Time `json:"inserted_at"`
}

type transactionResponse struct {
	ChainID   int64             `json:"chain_id"`
	Hash      string            `json:"transaction_hash"`
	Height    int64             `json:"height"`
	Code      uint32            `json:"code"`
	CodeSpace string            `json:"code_space"`
	Data      string            `json:"tx_data"`
	RawLog    string            `json:"raw_log"`
	Info      string            `json:"info"`
	Memo      *string           `json:"memo"`
	GasWanted int64             `json:"gas_wanted"`
	GasUsed   int64             `json:"gas_used"`
	Timestamp string            `json:"tx_timestamp"`
	Messages  []json.RawMessage `json:"messages,omitempty"`
	Events    []eventResponse   `json:"events,omitempty"`
}

type eventResponse struct {
	Origin      string  `json:"tx_type"`
	TxHash      *string `json:"tx_hash"`
	BlockHeight int64   `json:"block_height"`
	Seq         int     `json:"event_seq"`
	Type        string  `json:"event_type"`
	Key         string  `json:"event_key"`
	Value       string  `json:"event_value"`
	Indexed     bool    `json:"indexed"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newChainResponses(chains []model.Chain) []chainResponse {
	out := make([]chainResponse, 0, len(chains))
	for _, c := range chains {
		out = append(out, chainResponse{
			ID:         c.ID,
			ChainID:    c.ChainID,
			ChainName:  c.ChainName,
			IconURL:    c.IconURL,
			Website:    c.Website,
			InsertedAt: c.InsertedAt,
			UpdatedAt:  c.UpdatedAt,
		})
	}
	return out
}

func newBlockResponse(b model.Block) blockResponse {
	return blockResponse{
		ID:                 b.ID,
		ChainID:            b.ChainRowID,
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
		BlockTime:          b.BlockTime,
		InsertedAt:         b.InsertedAt,
	}
}

func newBlockResponses(blocks []model.Block) []blockResponse {
	out := make([]blockResponse, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, newBlockResponse(b))
	}
	return out
}

func newTransactionResponse(tx model.Transaction, events []model.Event) transactionResponse {
	resp := transactionResponse{
		ChainID:   tx.ChainRowID,
		Hash:      tx.Hash,
		Height:    tx.Height,
		Code:      tx.Code,
		CodeSpace: tx.CodeSpace,
		Data:      tx.Data,
		RawLog:    tx.RawLog,
		Info:      tx.Info,
		Memo:      tx.Memo,
		GasWanted: tx.GasWanted,
		GasUsed:   tx.GasUsed,
		Timestamp: tx.Timestamp,
	}
	for _, m := range tx.Messages {
		resp.Messages = append(resp.Messages, m.RawData)
	}
	for _, e := range events {
		resp.Events = append(resp.Events, eventResponse{
			Origin:      e.Origin.String(),
			TxHash:      e.TxHash,
			BlockHeight: e.BlockHeight,
			Seq:         e.Seq,
			Type:        e.Type,
			Key:         e.Key,
			Value:       e.Value,
			Indexed:     e.Indexed,
		})
	}
	return resp
}
