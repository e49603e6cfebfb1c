package tendermint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/chain"
)

const getTxPath = "/cosmos/tx/v1beta1/txs/{hash}"

type restTxResponse struct {
	Tx *struct {
		Body struct {
			Messages []json.RawMessage `json:"messages"`
			Memo     string            `json:"memo"`
		} `json:"body"`
	} `json:"tx"`
}

type restError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *restError) Error() string {
	return fmt.Sprintf("rest error %d: %s", e.Code, e.Message)
}

// GetTransactionMessages returns the JSON-decoded messages and memo of the
// transaction body. The RPC endpoint serves the body only as protobuf bytes.
func (c *Client) GetTransactionMessages(ctx context.Context, hash string) (body *chain.TxBody, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_tx_messages", err, started)
	}()

	op := "get tx messages " + hash
	c.limiter.Take()
	resp, err := c.rest.R().
		SetContext(ctx).
		SetPathParam("hash", hash).
		Get(getTxPath)
	if err != nil {
		return nil, transportError(ctx, op, 0, err)
	}

	if resp.IsError() {
		var restErr restError
		if jsonErr := json.Unmarshal(resp.Body(), &restErr); jsonErr != nil || restErr.Message == "" {
			return nil, statusError(op, 0, resp.StatusCode(), fmt.Errorf("unexpected status %s", resp.Status()))
		}
		return nil, statusError(op, 0, resp.StatusCode(), &restErr)
	}

	var payload restTxResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, chain.Fatal(op, 0, fmt.Errorf("decode rest response: %w", err))
	}
	if payload.Tx == nil {
		return nil, chain.DataInconsistency(op, 0, errors.New("response carries no tx"))
	}

	messages := payload.Tx.Body.Messages
	if messages == nil {
		messages = []json.RawMessage{}
	}
	return &chain.TxBody{Messages: messages, Memo: payload.Tx.Body.Memo}, nil
}
