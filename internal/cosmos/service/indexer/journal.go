package indexer

import (
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-cosmos/internal/cosmos/model"
)

// journal holds fetched blocks until their height is released in order.
type journal struct {
	mu      sync.Mutex
	entries map[int64]*model.CommittedBlock
}

func newJournal() *journal {
	return &journal{entries: make(map[int64]*model.CommittedBlock)}
}

// put stores block under its height. It reports false and keeps the stored
// entry when the height is already present.
func (j *journal) put(block *model.CommittedBlock) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	if _, ok := j.entries[block.Height()]; ok {
		return false
	}
	j.entries[block.Height()] = block
	return true
}

// take removes and returns the block at height.
func (j *journal) take(height int64) (*model.CommittedBlock, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	block, ok := j.entries[height]
	if ok {
		delete(j.entries, height)
	}
	return block, ok
}

func (j *journal) len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}
