package tendermint

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/chain"
	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/model"
)

type blockIDResponse struct {
	Hash string `json:"hash"`
}

type headerResponse struct {
	ChainID            string          `json:"chain_id"`
	Height             string          `json:"height"`
	Time               time.Time       `json:"time"`
	LastBlockID        blockIDResponse `json:"last_block_id"`
	LastCommitHash     string          `json:"last_commit_hash"`
	DataHash           string          `json:"data_hash"`
	ValidatorsHash     string          `json:"validators_hash"`
	NextValidatorsHash string          `json:"next_validators_hash"`
	ConsensusHash      string          `json:"consensus_hash"`
	AppHash            string          `json:"app_hash"`
	LastResultsHash    string          `json:"last_results_hash"`
	EvidenceHash       string          `json:"evidence_hash"`
	ProposerAddress    string          `json:"proposer_address"`
}

type blockResponse struct {
	BlockID blockIDResponse `json:"block_id"`
	Block   struct {
		Header headerResponse `json:"header"`
		Data   struct {
			Txs []string `json:"txs"`
		} `json:"data"`
	} `json:"block"`
}

type attributeResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Index bool   `json:"index"`
}

type eventResponse struct {
	Type       string              `json:"type"`
	Attributes []attributeResponse `json:"attributes"`
}

type blockResultsResponse struct {
	Height           string          `json:"height"`
	BeginBlockEvents []eventResponse `json:"begin_block_events"`
	EndBlockEvents   []eventResponse `json:"end_block_events"`
}

type txResponse struct {
	Hash     string `json:"hash"`
	Height   string `json:"height"`
	TxResult struct {
		Code      uint32          `json:"code"`
		Codespace string          `json:"codespace"`
		Data      string          `json:"data"`
		Log       string          `json:"log"`
		Info      string          `json:"info"`
		GasWanted string          `json:"gas_wanted"`
		GasUsed   string          `json:"gas_used"`
		Events    []eventResponse `json:"events"`
	} `json:"tx_result"`
}

func (r *blockResponse) toRawBlock() (*chain.RawBlock, error) {
	h := r.Block.Header
	height, err := parseInt64(h.Height)
	if err != nil {
		return nil, fmt.Errorf("parse header height: %w", err)
	}

	txs := make([][]byte, 0, len(r.Block.Data.Txs))
	for i, encoded := range r.Block.Data.Txs {
		raw, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("decode tx %d: %w", i, err)
		}
		txs = append(txs, raw)
	}

	return &chain.RawBlock{
		Header: model.Block{
			Height:             height,
			BlockHash:          r.BlockID.Hash,
			PrevHash:           h.LastBlockID.Hash,
			ProposerAddress:    h.ProposerAddress,
			LastCommitHash:     h.LastCommitHash,
			DataHash:           h.DataHash,
			ValidatorsHash:     h.ValidatorsHash,
			NextValidatorsHash: h.NextValidatorsHash,
			ConsensusHash:      h.ConsensusHash,
			AppHash:            h.AppHash,
			LastResultHash:     h.LastResultsHash,
			EvidenceHash:       h.EvidenceHash,
			BlockTime:          h.Time.UTC(),
		},
		Txs: txs,
	}, nil
}

func (r *txResponse) toTxResult(decodeAttributes bool) (*chain.TxResult, error) {
	height, err := parseInt64(r.Height)
	if err != nil {
		return nil, fmt.Errorf("parse tx height: %w", err)
	}
	gasWanted, err := parseInt64(r.TxResult.GasWanted)
	if err != nil {
		return nil, fmt.Errorf("parse gas wanted: %w", err)
	}
	gasUsed, err := parseInt64(r.TxResult.GasUsed)
	if err != nil {
		return nil, fmt.Errorf("parse gas used: %w", err)
	}
	events, err := convertEvents(r.TxResult.Events, decodeAttributes)
	if err != nil {
		return nil, err
	}

	return &chain.TxResult{
		Hash:      r.Hash,
		Height:    height,
		Code:      r.TxResult.Code,
		CodeSpace: r.TxResult.Codespace,
		Data:      r.TxResult.Data,
		Log:       r.TxResult.Log,
		Info:      r.TxResult.Info,
		GasWanted: gasWanted,
		GasUsed:   gasUsed,
		Events:    events,
	}, nil
}

func convertEvents(in []eventResponse, decodeAttributes bool) ([]chain.RawEvent, error) {
	out := make([]chain.RawEvent, 0, len(in))
	for _, e := range in {
		attrs := make([]chain.RawAttribute, 0, len(e.Attributes))
		for _, a := range e.Attributes {
			key, value := a.Key, a.Value
			if decodeAttributes {
				var err error
				if key, err = decodeAttribute(a.Key); err != nil {
					return nil, fmt.Errorf("decode %s attribute key: %w", e.Type, err)
				}
				if value, err = decodeAttribute(a.Value); err != nil {
					return nil, fmt.Errorf("decode %s attribute value: %w", e.Type, err)
				}
			}
			attrs = append(attrs, chain.RawAttribute{Key: key, Value: value, Index: a.Index})
		}
		out = append(out, chain.RawEvent{Type: e.Type, Attributes: attrs})
	}
	return out, nil
}

func decodeAttribute(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func parseInt64(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}
