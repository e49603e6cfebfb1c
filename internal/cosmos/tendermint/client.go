// Package tendermint implements the chain client on top of a Tendermint
// JSON-RPC endpoint and the Cosmos SDK REST gateway.
package tendermint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/chain"
	"go.uber.org/ratelimit"
)

const (
	defaultTimeout       = 30 * time.Second
	defaultRetryWait     = 200 * time.Millisecond
	defaultRetryMaxWait  = 2 * time.Second
	internalErrorCode    = -32603
	notYetProducedMarker = "must be less than or equal to the current blockchain height"
	noResultsMarker      = "could not find results for height"
)

// Config describes the node endpoints and the transport policy.
type Config struct {
	RPCURL  string
	RESTURL string
	Timeout time.Duration
	// Retries is the number of transport-level retries for connection
	// failures and 429/502/503/504 responses.
	Retries int
	// RPS caps outgoing requests per second. Zero disables the limit.
	RPS int
	// Base64Attributes decodes event attribute keys and values, as served by
	// Tendermint 0.34 nodes.
	Base64Attributes bool
}

var _ chain.Client = (*Client)(nil)

// Client fetches blocks, block results and transactions from a node.
// It is safe for concurrent use.
type Client struct {
	rpc              *resty.Client
	rest             *resty.Client
	limiter          ratelimit.Limiter
	metrics          RPCMetrics
	base64Attributes bool
}

// NewClient constructs an instrumented node client.
func NewClient(cfg Config, metrics RPCMetrics) (*Client, error) {
	if cfg.RPCURL == "" {
		return nil, errors.New("tendermint rpc url is required")
	}
	if cfg.RESTURL == "" {
		return nil, errors.New("cosmos rest url is required")
	}
	if metrics == nil {
		return nil, errors.New("rpc metrics is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}

	return &Client{
		rpc:              newHTTPClient(cfg.RPCURL, cfg.Timeout, cfg.Retries),
		rest:             newHTTPClient(cfg.RESTURL, cfg.Timeout, cfg.Retries),
		limiter:          limiter,
		metrics:          metrics,
		base64Attributes: cfg.Base64Attributes,
	}, nil
}

func newHTTPClient(baseURL string, timeout time.Duration, retries int) *resty.Client {
	return resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(retries).
		SetRetryWaitTime(defaultRetryWait).
		SetRetryMaxWaitTime(defaultRetryMaxWait).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil {
				return !errors.Is(err, context.Canceled)
			}
			switch resp.StatusCode() {
			case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
				return true
			default:
				return false
			}
		})
}

type rpcEnvelope struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

func (e *rpcError) Error() string {
	if e.Data == "" {
		return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("rpc error %d: %s: %s", e.Code, e.Message, e.Data)
}

func (c *Client) callRPC(ctx context.Context, op string, height int64, path string, params map[string]string, out any) error {
	c.limiter.Take()
	resp, err := c.rpc.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		return transportError(ctx, op, height, err)
	}

	var env rpcEnvelope
	if jsonErr := json.Unmarshal(resp.Body(), &env); jsonErr != nil {
		return statusError(op, height, resp.StatusCode(), fmt.Errorf("decode rpc envelope: %w", jsonErr))
	}
	if env.Error != nil {
		return classifyRPCError(op, height, env.Error)
	}
	if resp.IsError() {
		return statusError(op, height, resp.StatusCode(), fmt.Errorf("unexpected status %s", resp.Status()))
	}
	if len(env.Result) == 0 || string(env.Result) == "null" {
		return chain.Fatal(op, height, errors.New("empty rpc result"))
	}
	if err = json.Unmarshal(env.Result, out); err != nil {
		return chain.Fatal(op, height, fmt.Errorf("decode rpc result: %w", err))
	}
	return nil
}

func classifyRPCError(op string, height int64, e *rpcError) error {
	text := e.Message + " " + e.Data
	switch {
	case strings.Contains(text, notYetProducedMarker), strings.Contains(text, noResultsMarker):
		return fmt.Errorf("%s at height %d: %w: %v", op, height, chain.ErrNotYetAvailable, e)
	case strings.Contains(text, "not found"):
		return chain.DataInconsistency(op, height, e)
	case e.Code == internalErrorCode:
		return chain.Transient(op, height, e)
	default:
		return chain.Fatal(op, height, e)
	}
}

func transportError(ctx context.Context, op string, height int64, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s at height %d: %w", op, height, ctxErr)
	}
	return chain.Transient(op, height, err)
}

func statusError(op string, height int64, status int, err error) error {
	switch {
	case status == http.StatusTooManyRequests, status >= http.StatusInternalServerError:
		return chain.Transient(op, height, err)
	case status == http.StatusNotFound:
		return chain.DataInconsistency(op, height, err)
	default:
		return chain.Fatal(op, height, err)
	}
}
