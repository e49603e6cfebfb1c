package tendermint

import (
	"context"
	"strconv"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/chain"
)

// GetBlock returns the header and raw transactions of the block at height.
func (c *Client) GetBlock(ctx context.Context, height int64) (block *chain.RawBlock, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_block", err, started)
	}()

	var resp blockResponse
	if err = c.callRPC(ctx, "get block", height, "/block", heightParams(height), &resp); err != nil {
		return nil, err
	}
	block, err = resp.toRawBlock()
	if err != nil {
		return nil, chain.Fatal("decode block", height, err)
	}
	return block, nil
}

// GetBlockEvents returns the begin-block and end-block events at height.
func (c *Client) GetBlockEvents(ctx context.Context, height int64) (events *chain.BlockEvents, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_block_results", err, started)
	}()

	var resp blockResultsResponse
	if err = c.callRPC(ctx, "get block results", height, "/block_results", heightParams(height), &resp); err != nil {
		return nil, err
	}

	begin, err := convertEvents(resp.BeginBlockEvents, c.base64Attributes)
	if err != nil {
		return nil, chain.Fatal("decode begin block events", height, err)
	}
	end, err := convertEvents(resp.EndBlockEvents, c.base64Attributes)
	if err != nil {
		return nil, chain.Fatal("decode end block events", height, err)
	}
	return &chain.BlockEvents{BeginBlock: begin, EndBlock: end}, nil
}

// GetTransaction returns the execution result of the transaction with the
// given uppercase hex hash.
func (c *Client) GetTransaction(ctx context.Context, hash string) (tx *chain.TxResult, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_tx", err, started)
	}()

	var resp txResponse
	if err = c.callRPC(ctx, "get tx "+hash, 0, "/tx", map[string]string{"hash": "0x" + hash}, &resp); err != nil {
		return nil, err
	}
	tx, err = resp.toTxResult(c.base64Attributes)
	if err != nil {
		return nil, chain.Fatal("decode tx "+hash, 0, err)
	}
	return tx, nil
}

func heightParams(height int64) map[string]string {
	return map[string]string{"height": strconv.FormatInt(height, 10)}
}
