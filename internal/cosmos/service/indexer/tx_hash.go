package indexer

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// txHash returns the transaction identity used by Tendermint: the uppercase
// hex SHA-256 of the raw transaction bytes.
func txHash(raw []byte) string {
	sum := sha256.Sum256(raw)
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
