package domain

import "time"

// Document is the on-chain record of an off-chain document.
// Hash is the hex-encoded 32-byte integrity digest of the content.
type Document struct {
	Name      string    `json:"name"`
	URI       string    `json:"uri"`
	Hash      string    `json:"hash"`
	Timestamp time.Time `json:"timestamp"`
}
