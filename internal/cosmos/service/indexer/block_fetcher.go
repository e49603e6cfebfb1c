package indexer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/chain"
	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/model"
	"github.com/goodnatureofminers/blockinsight7000-cosmos/pkg/workerpool"
)

// blockFetcher assembles everything stored for one height. A failure of any
// sub-fetch fails the whole height; nothing is cached between attempts.
type blockFetcher struct {
	client      ChainClient
	workerCount int
}

func (f *blockFetcher) Fetch(ctx context.Context, height int64) (*model.CommittedBlock, error) {
	raw, err := f.client.GetBlock(ctx, height)
	if err != nil {
		return nil, err
	}
	if raw.Header.Height != height {
		return nil, chain.DataInconsistency("fetch block", height,
			fmt.Errorf("node returned height %d", raw.Header.Height))
	}

	blockEvents, err := f.client.GetBlockEvents(ctx, height)
	if err != nil {
		return nil, err
	}

	hashes := make([]string, len(raw.Txs))
	for i, tx := range raw.Txs {
		hashes[i] = txHash(tx)
	}

	results, err := workerpool.Map(ctx, f.workerCount, hashes, func(ctx context.Context, hash string) (*chain.TxResult, error) {
		res, err := f.client.GetTransaction(ctx, hash)
		if err != nil {
			return nil, fmt.Errorf("fetch transaction %s: %w", hash, err)
		}
		if !strings.EqualFold(res.Hash, hash) || res.Height != height {
			return nil, chain.DataInconsistency("fetch transaction "+hash, height,
				fmt.Errorf("node returned transaction %s at height %d", res.Hash, res.Height))
		}
		return res, nil
	})
	if err != nil {
		return nil, err
	}

	bodies, err := workerpool.Map(ctx, f.workerCount, hashes, func(ctx context.Context, hash string) (*chain.TxBody, error) {
		body, err := f.client.GetTransactionMessages(ctx, hash)
		if err != nil {
			return nil, fmt.Errorf("fetch messages of transaction %s: %w", hash, err)
		}
		return body, nil
	})
	if err != nil {
		return nil, err
	}

	return assembleBlock(raw.Header, blockEvents, hashes, results, bodies), nil
}

// assembleBlock orders events as begin-block, end-block, then each
// transaction's events in block-body order.
func assembleBlock(
	header model.Block,
	blockEvents *chain.BlockEvents,
	hashes []string,
	results []*chain.TxResult,
	bodies []*chain.TxBody,
) *model.CommittedBlock {
	height := header.Height
	timestamp := header.BlockTime.UTC().Format(time.RFC3339Nano)

	var events []model.Event
	if blockEvents != nil {
		events = flattenEvents(events, model.EventOriginBeginBlock, nil, height, blockEvents.BeginBlock)
		events = flattenEvents(events, model.EventOriginEndBlock, nil, height, blockEvents.EndBlock)
	}

	txs := make([]model.Transaction, 0, len(results))
	for i, res := range results {
		hash := hashes[i]
		body := bodies[i]

		messages := make([]model.Message, 0, len(body.Messages))
		for seq, msg := range body.Messages {
			messages = append(messages, model.Message{Seq: seq, RawData: msg})
		}

		var memo *string
		if body.Memo != "" {
			m := body.Memo
			memo = &m
		}

		txs = append(txs, model.Transaction{
			Hash:      hash,
			Height:    height,
			Code:      res.Code,
			CodeSpace: res.CodeSpace,
			Data:      res.Data,
			RawLog:    res.Log,
			Info:      res.Info,
			Memo:      memo,
			GasWanted: res.GasWanted,
			GasUsed:   res.GasUsed,
			Timestamp: timestamp,
			Messages:  messages,
		})
		events = flattenEvents(events, model.EventOriginTransaction, &hash, height, res.Events)
	}

	return &model.CommittedBlock{
		Block:  header,
		Txs:    txs,
		Events: events,
	}
}

// flattenEvents appends one row per attribute. Seq counts attribute rows
// within the container and starts at zero.
func flattenEvents(dst []model.Event, origin model.EventOrigin, txHash *string, height int64, raw []chain.RawEvent) []model.Event {
	seq := 0
	for _, e := range raw {
		for _, attr := range e.Attributes {
			dst = append(dst, model.Event{
				Origin:      origin,
				TxHash:      txHash,
				BlockHeight: height,
				Seq:         seq,
				Type:        e.Type,
				Key:         attr.Key,
				Value:       attr.Value,
				Indexed:     attr.Index,
			})
			seq++
		}
	}
	return dst
}
