package utils

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// DocumentHash returns the Keccak-256 digest of content as 0x-prefixed hex,
// the integrity hash format recorded by the document registry.
func DocumentHash(content []byte) string {
	h := sha3.NewLegacyKeccak256()
	h.Write(content)
	return "0x" + hex.EncodeToString(h.Sum(nil))
}
