// Package transport exposes the explorer read API over HTTP.
package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/chain"
	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/service/explorer"
)

// ExplorerHandler serves chain, block and transaction lookups.
type ExplorerHandler struct {
	service ExplorerService
	logger  *zap.Logger
}

// NewExplorerHandler returns an ExplorerHandler instance.
func NewExplorerHandler(service ExplorerService, logger *zap.Logger) *ExplorerHandler {
	return &ExplorerHandler{service: service, logger: logger}
}

// Register mounts the routes on mux. The mux tries the most recently added
// pattern first, so the generic block route goes in before latest_block.
func (h *ExplorerHandler) Register(mux *gwruntime.ServeMux) error {
	routes := []struct {
		pattern string
		handler gwruntime.HandlerFunc
	}{
		{"/api/block/{chain_id}/{block_height}", h.blockByHeight},
		{"/api/block/latest_block/{chain_id}", h.latestBlock},
		{"/api/block/list/{chain_id}", h.listBlocks},
		{"/api/chains/all", h.allChains},
		{"/api/tx/{tx_hash}", h.transactionByHash},
		{"/api/tx/list/{chain_id}/at/{block_height}", h.transactionsAtHeight},
	}
	for _, r := range routes {
		if err := mux.HandlePath(http.MethodGet, r.pattern, r.handler); err != nil {
			return err
		}
	}
	return nil
}

func (h *ExplorerHandler) allChains(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	chains, err := h.service.AllChains(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newChainResponses(chains))
}

func (h *ExplorerHandler) latestBlock(w http.ResponseWriter, r *http.Request, params map[string]string) {
	b, err := h.service.LatestBlock(r.Context(), params["chain_id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newBlockResponse(*b))
}

func (h *ExplorerHandler) listBlocks(w http.ResponseWriter, r *http.Request, params map[string]string) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	blocks, err := h.service.ListBlocks(r.Context(), params["chain_id"], limit, offset)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newBlockResponses(blocks))
}

func (h *ExplorerHandler) blockByHeight(w http.ResponseWriter, r *http.Request, params map[string]string) {
	height, err := pathHeight(params)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	b, err := h.service.BlockByHeight(r.Context(), params["chain_id"], height)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newBlockResponse(*b))
}

func (h *ExplorerHandler) transactionByHash(w http.ResponseWriter, r *http.Request, params map[string]string) {
	tx, err := h.service.TransactionByHash(r.Context(), params["tx_hash"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newTransactionResponse(tx.Transaction, tx.Events))
}

func (h *ExplorerHandler) transactionsAtHeight(w http.ResponseWriter, r *http.Request, params map[string]string) {
	height, err := pathHeight(params)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	txs, err := h.service.TransactionsAtHeight(r.Context(), params["chain_id"], height)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, newTransactionResponse(tx, nil))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func pathHeight(params map[string]string) (int64, error) {
	height, err := strconv.ParseInt(params["block_height"], 10, 64)
	if err != nil {
		return 0, errors.Join(explorer.ErrInvalidArgument, err)
	}
	return height, nil
}

func queryInt(r *http.Request, key string) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Join(explorer.ErrInvalidArgument, err)
	}
	return n, nil
}

func (h *ExplorerHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, chain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, explorer.ErrInvalidArgument):
		status = http.StatusBadRequest
	default:
		h.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (h *ExplorerHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("write response failed", zap.Error(err))
	}
}
